package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/metrics"
	"github.com/99minutos/tracking-demo/pkg/logger"
)

// RegistryOptions configures the sessions a Registry creates.
type RegistryOptions struct {
	TickInterval time.Duration
	MapCenter    domain.Coordinates
	MapZoom      int

	Routes  ports.RouteProvider
	Places  ports.PlaceSearcher
	Sources ports.PositionSourceFactory
	// SourceLabel names the position source in metrics and logs.
	SourceLabel string

	Notifier ports.Notifier
	// OnClose, when set, runs after a session is closed through Close.
	OnClose func(sessionID string)
	Logger  zerolog.Logger
}

type session struct {
	demo    *DemoSession
	view    *MapView
	sharing *Sharing
}

// Registry owns every live demo session and implements ports.DemoService.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session

	opts   RegistryOptions
	newID  func() string
	logger zerolog.Logger
}

var _ ports.DemoService = (*Registry)(nil)

func NewRegistry(opts RegistryOptions) *Registry {
	if opts.Notifier == nil {
		opts.Notifier = ports.NotifierFunc(func(context.Context, domain.Notification) {})
	}
	if opts.SourceLabel == "" {
		opts.SourceLabel = "unknown"
	}
	return &Registry{
		sessions: make(map[string]*session),
		opts:     opts,
		newID:    uuid.NewString,
		logger:   opts.Logger,
	}
}

// Create starts a new, idle demo session.
func (r *Registry) Create(ctx context.Context) (domain.DemoSnapshot, error) {
	id := r.newID()
	log := logger.ForSession(r.logger, id)

	demo := NewDemoSession(id, DemoSessionOptions{
		TickInterval: r.opts.TickInterval,
		Notifier:     r.opts.Notifier,
		Logger:       r.logger,
	})
	notify := r.notifyFor(demo)
	view := NewMapView(MapViewOptions{
		Center: r.opts.MapCenter,
		Zoom:   r.opts.MapZoom,
		Routes: r.opts.Routes,
		Places: r.opts.Places,
		Logger: log,
	}, notify)

	sess := &session{demo: demo, view: view}
	if r.opts.Sources != nil {
		sess.sharing = NewSharing(r.opts.Sources(id), r.opts.SourceLabel, view, notify, log)
	}

	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()

	metrics.SessionsActive.Inc()
	log.Info().Str("tracking_id", demo.Snapshot().TrackingID).Msg("demo session created")
	return demo.Snapshot(), nil
}

// notifyFor attributes map and sharing notifications to the demo's current
// tracking id and stage.
func (r *Registry) notifyFor(demo *DemoSession) notifyFunc {
	return func(ctx context.Context, kind domain.NotificationKind, message string) {
		snap := demo.Snapshot()
		r.opts.Notifier.Notify(ctx, domain.Notification{
			ID:         uuid.NewString(),
			SessionID:  snap.SessionID,
			TrackingID: snap.TrackingID,
			Kind:       kind,
			Message:    message,
			Stage:      snap.Config.Status,
			Progress:   snap.Progress,
			At:         time.Now().UTC(),
		})
	}
}

func (r *Registry) lookup(id string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Get returns the current snapshot of a session.
func (r *Registry) Get(_ context.Context, id string) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	return sess.demo.Snapshot(), nil
}

// Close tears a session down, releasing its timer and position watch.
func (r *Registry) Close(_ context.Context, id string) error {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	r.teardown(sess)
	if r.opts.OnClose != nil {
		r.opts.OnClose(id)
	}
	r.logger.Info().Str("session_id", id).Msg("demo session closed")
	return nil
}

// CloseAll tears down every session. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, sess := range sessions {
		r.teardown(sess)
	}
	if len(sessions) > 0 {
		r.logger.Info().Int("sessions", len(sessions)).Msg("demo sessions closed")
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) teardown(sess *session) {
	if sess.sharing != nil {
		sess.sharing.release()
	}
	sess.demo.Close()
	metrics.SessionsActive.Dec()
}

func (r *Registry) SelectLocation(ctx context.Context, id string, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	return r.selectLocation(ctx, sess, role, c)
}

func (r *Registry) selectLocation(ctx context.Context, sess *session, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error) {
	snap, err := sess.demo.SelectLocation(ctx, role, c)
	if err != nil {
		return snap, err
	}
	sess.view.DisarmSelection()
	r.redraw(ctx, sess, snap)
	return snap, nil
}

// redraw refreshes the map after a configuration change. Route failures are
// already reported to the user by the map view.
func (r *Registry) redraw(ctx context.Context, sess *session, snap domain.DemoSnapshot) {
	if err := sess.view.Refresh(ctx, snap.Config.StartCoordinates, snap.Config.EndCoordinates, snap.Config.EndLocation); err != nil {
		r.logger.Debug().Err(err).Str("session_id", snap.SessionID).Msg("map refresh failed")
	}
}

func (r *Registry) SetSpeed(ctx context.Context, id string, kph int) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	return sess.demo.SetSpeed(ctx, kph)
}

// Start begins the simulation. A selection armed beforehand is dropped since
// inputs are frozen while the demo runs.
func (r *Registry) Start(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	snap, err := sess.demo.Start(ctx)
	if err != nil {
		return snap, err
	}
	sess.view.DisarmSelection()
	return snap, nil
}

func (r *Registry) Tick(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	return sess.demo.Tick(ctx)
}

func (r *Registry) Reset(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return domain.DemoSnapshot{}, err
	}
	snap, err := sess.demo.Reset(ctx)
	if err != nil {
		return snap, err
	}
	sess.view.DisarmSelection()
	r.redraw(ctx, sess, snap)
	return snap, nil
}

func (r *Registry) MapView(_ context.Context, id string) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	return sess.view.State(), nil
}

// RefreshMap redraws markers and route from the current configuration.
func (r *Registry) RefreshMap(ctx context.Context, id string) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	cfg := sess.demo.Snapshot().Config
	err = sess.view.Refresh(ctx, cfg.StartCoordinates, cfg.EndCoordinates, cfg.EndLocation)
	return sess.view.State(), err
}

// ArmSelection makes the next click or search select the given role. Inputs
// are frozen while the simulation runs.
func (r *Registry) ArmSelection(_ context.Context, id string, role domain.Role) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	if sess.demo.Snapshot().Active {
		return sess.view.State(), domain.ErrSessionActive
	}
	if err := sess.view.ArmSelection(role); err != nil {
		return sess.view.State(), err
	}
	return sess.view.State(), nil
}

func (r *Registry) ClickMap(ctx context.Context, id string, c domain.Coordinates) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	if sess.demo.Snapshot().Active {
		return sess.view.State(), domain.ErrSessionActive
	}
	sel, err := sess.view.Click(c)
	if err != nil {
		return sess.view.State(), err
	}
	if _, err := r.selectLocation(ctx, sess, sel.Role, sel.Coordinates); err != nil {
		return sess.view.State(), err
	}
	return sess.view.State(), nil
}

// SearchPlaces shows matching places on the map. With a selection armed the
// first match is selected. Searching is rejected while the demo runs.
func (r *Registry) SearchPlaces(ctx context.Context, id, query string) ([]domain.Place, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if sess.demo.Snapshot().Active {
		return nil, domain.ErrSessionActive
	}
	places, sel, err := sess.view.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if sel != nil {
		if _, err := r.selectLocation(ctx, sess, sel.Role, sel.Coordinates); err != nil {
			return places, err
		}
	}
	return places, nil
}

func (r *Registry) StartSharing(ctx context.Context, id string) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	if sess.sharing == nil {
		return sess.view.State(), &domain.CollaboratorError{Collaborator: "position", Op: "start sharing", Err: errors.New("no position source configured")}
	}
	err = sess.sharing.Start(ctx)
	return sess.view.State(), err
}

func (r *Registry) StopSharing(ctx context.Context, id string) (ports.MapViewState, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return ports.MapViewState{}, err
	}
	if sess.sharing == nil || !sess.sharing.Stop(ctx) {
		return sess.view.State(), domain.ErrSharingInactive
	}
	return sess.view.State(), nil
}

// PushPosition feeds a fix into sources that accept pushed positions.
func (r *Registry) PushPosition(_ context.Context, id string, pos domain.Position) error {
	sess, err := r.lookup(id)
	if err != nil {
		return err
	}
	if sess.sharing == nil {
		return domain.ErrPushUnsupported
	}
	pub, ok := sess.sharing.Source().(ports.PositionPublisher)
	if !ok {
		return domain.ErrPushUnsupported
	}
	if pos.At.IsZero() {
		pos.At = time.Now().UTC()
	}
	return pub.Publish(pos)
}
