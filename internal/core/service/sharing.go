package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/metrics"
)

// Sharing streams the device position of a session onto its map view. At
// most one watch is held at a time and it is released exactly once.
type Sharing struct {
	mu sync.Mutex

	source ports.PositionSource
	label  string
	view   *MapView
	notify notifyFunc
	log    zerolog.Logger

	active   bool
	starting bool
	gen      uint64
	handle   ports.WatchHandle
	fixes    int
}

// NewSharing wires a position source to a map view. label tags metrics.
func NewSharing(source ports.PositionSource, label string, view *MapView, notify notifyFunc, log zerolog.Logger) *Sharing {
	if notify == nil {
		notify = func(context.Context, domain.NotificationKind, string) {}
	}
	return &Sharing{
		source: source,
		label:  label,
		view:   view,
		notify: notify,
		log:    log,
	}
}

// Active reports whether a watch is currently held.
func (s *Sharing) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Source returns the underlying position source.
func (s *Sharing) Source() ports.PositionSource { return s.source }

// Start takes an initial fix and begins watching. Starting twice is a no-op.
func (s *Sharing) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.active || s.starting {
		s.mu.Unlock()
		return nil
	}
	s.gen++
	gen := s.gen
	s.fixes = 0
	s.starting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.starting = false
		s.mu.Unlock()
	}()

	pos, err := s.source.CurrentPosition(ctx)
	switch {
	case err == nil:
		s.onUpdate(gen, pos)
	case errors.Is(err, domain.ErrNoPosition):
		s.log.Debug().Msg("no initial position fix, waiting for watch")
	default:
		s.notify(ctx, domain.NotifyError, "Could not get your location")
		return &domain.CollaboratorError{Collaborator: "position", Op: "current position", Err: err}
	}

	handle, err := s.source.WatchPosition(
		func(p domain.Position) { s.onUpdate(gen, p) },
		func(err error) { s.onError(gen, err) },
	)
	if err != nil {
		s.notify(ctx, domain.NotifyError, "Could not track your location")
		return &domain.CollaboratorError{Collaborator: "position", Op: "watch position", Err: err}
	}

	s.mu.Lock()
	if gen != s.gen {
		// stopped while the watch was being acquired
		s.mu.Unlock()
		s.source.ClearWatch(handle)
		return nil
	}
	s.active = true
	s.handle = handle
	s.mu.Unlock()

	s.view.SetSharing(true)
	s.log.Info().Str("source", s.label).Msg("location sharing started")
	s.notify(ctx, domain.NotifySuccess, "Sharing location in real time")
	return nil
}

// Stop releases the watch. It reports whether sharing was active.
func (s *Sharing) Stop(ctx context.Context) bool {
	if !s.release() {
		return false
	}
	s.log.Info().Str("source", s.label).Msg("location sharing stopped")
	s.notify(ctx, domain.NotifyInfo, "You stopped sharing your location")
	return true
}

func (s *Sharing) release() bool {
	s.mu.Lock()
	s.gen++
	if !s.active {
		s.mu.Unlock()
		return false
	}
	handle := s.handle
	s.active = false
	s.handle = ""
	s.mu.Unlock()

	s.source.ClearWatch(handle)
	s.view.SetSharing(false)
	return true
}

func (s *Sharing) onUpdate(gen uint64, pos domain.Position) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.fixes++
	first := s.fixes == 1
	s.mu.Unlock()

	metrics.PositionUpdatesTotal.WithLabelValues(s.label).Inc()
	s.view.ShowPosition(pos, first)
}

func (s *Sharing) onError(gen uint64, err error) {
	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	s.log.Warn().Err(err).Str("source", s.label).Msg("position watch failed")
	s.release()
	s.notify(context.Background(), domain.NotifyError, "Could not track your location")
}
