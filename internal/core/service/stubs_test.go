package service

import (
	"context"
	"sync"
	"time"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Recording notifier
// ---------------------------------------------------------------------------

type recordingNotifier struct {
	mu    sync.Mutex
	notes []domain.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.notes...)
}

func (r *recordingNotifier) ofKind(kind domain.NotificationKind) []domain.Notification {
	var out []domain.Notification
	for _, n := range r.all() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (r *recordingNotifier) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = nil
}

// ---------------------------------------------------------------------------
// Stub collaborators
// ---------------------------------------------------------------------------

type stubRoutes struct {
	mu    sync.Mutex
	route *domain.Route
	err   error
	calls int
}

func (s *stubRoutes) ComputeRoute(_ context.Context, origin, destination domain.Coordinates) (*domain.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.route != nil {
		r := *s.route
		return &r, nil
	}
	return &domain.Route{
		Origin:          origin,
		Destination:     destination,
		DistanceMeters:  30000,
		DurationSeconds: 1800,
		Geometry:        []domain.Coordinates{origin, destination},
	}, nil
}

type stubPlaces struct {
	places   []domain.Place
	err      error
	lastBias *domain.Bounds
}

func (s *stubPlaces) SearchPlaces(_ context.Context, _ string, bounds *domain.Bounds) ([]domain.Place, error) {
	s.lastBias = bounds
	if s.err != nil {
		return nil, s.err
	}
	return s.places, nil
}

// stubPositionSource delivers fixes only when the test calls emit.
type stubPositionSource struct {
	mu       sync.Mutex
	current  *domain.Position
	watchErr error
	onUpdate func(domain.Position)
	onError  func(error)
	watches  int
	cleared  []ports.WatchHandle
}

func (s *stubPositionSource) CurrentPosition(context.Context) (domain.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Position{}, domain.ErrNoPosition
	}
	return *s.current, nil
}

func (s *stubPositionSource) WatchPosition(onUpdate func(domain.Position), onError func(error)) (ports.WatchHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchErr != nil {
		return "", s.watchErr
	}
	s.watches++
	s.onUpdate = onUpdate
	s.onError = onError
	return ports.WatchHandle("watch"), nil
}

func (s *stubPositionSource) ClearWatch(h ports.WatchHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = append(s.cleared, h)
	s.onUpdate = nil
	s.onError = nil
}

func (s *stubPositionSource) emit(pos domain.Position) {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn(pos)
	}
}

func (s *stubPositionSource) fail(err error) {
	s.mu.Lock()
	fn := s.onError
	s.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func (s *stubPositionSource) clearedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cleared)
}

// pushableSource also accepts externally published fixes.
type pushableSource struct {
	stubPositionSource
	published []domain.Position
}

func (p *pushableSource) Publish(pos domain.Position) error {
	p.published = append(p.published, pos)
	p.emit(pos)
	return nil
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return at }
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + string(rune('A'+n-1))
	}
}
