package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/geo"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/metrics"
	"github.com/99minutos/tracking-demo/pkg/logger"
)

// milestoneNotices are shown when a progress milestone is crossed.
var milestoneNotices = map[domain.Stage]struct {
	kind    domain.NotificationKind
	message string
}{
	domain.StagePreparing:         {domain.NotifyInfo, "The vehicle is being prepared"},
	domain.StageEnRouteToPickup:   {domain.NotifyInfo, "The vehicle is on its way to pick up the equipment"},
	domain.StageEnRouteToDelivery: {domain.NotifyInfo, "The vehicle is out for delivery"},
	domain.StageDelivered:         {domain.NotifySuccess, "Product delivered successfully!"},
}

// DemoSessionOptions configures a DemoSession.
type DemoSessionOptions struct {
	// TickInterval is the simulation timer period. Zero disables the timer;
	// progress then only advances through explicit Tick calls.
	TickInterval time.Duration
	Notifier     ports.Notifier
	Logger       zerolog.Logger
	// TrackingIDs overrides tracking id generation (tests).
	TrackingIDs func() string
	// Now overrides the clock (tests).
	Now func() time.Time
}

// DemoSession is the progress state machine of one demo. All mutations are
// serialised by mu; notifications are emitted after mu is released.
type DemoSession struct {
	mu sync.Mutex

	id         string
	trackingID string
	cfg        domain.DemoConfig
	progress   int
	active     bool
	etaMinutes *int
	startedAt  *time.Time
	closed     bool

	tickInterval time.Duration
	timerGen     uint64
	stopTimer    context.CancelFunc

	notifier      ports.Notifier
	newTrackingID func() string
	now           func() time.Time
	log           zerolog.Logger
}

// NewDemoSession creates a session in its initial, not-started state.
func NewDemoSession(id string, opts DemoSessionOptions) *DemoSession {
	s := &DemoSession{
		id:            id,
		cfg:           domain.NewDemoConfig(),
		tickInterval:  opts.TickInterval,
		notifier:      opts.Notifier,
		newTrackingID: opts.TrackingIDs,
		now:           opts.Now,
		log:           logger.ForSession(opts.Logger, id),
	}
	if s.newTrackingID == nil {
		s.newTrackingID = generateTrackingID
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.notifier == nil {
		s.notifier = ports.NotifierFunc(func(context.Context, domain.Notification) {})
	}
	s.trackingID = s.newTrackingID()
	return s
}

// ID returns the session identifier.
func (s *DemoSession) ID() string { return s.id }

// Snapshot returns a consistent copy of the session state.
func (s *DemoSession) Snapshot() domain.DemoSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start validates the configuration and begins the simulation.
func (s *DemoSession) Start(ctx context.Context) (domain.DemoSnapshot, error) {
	return s.mutate(ctx, s.startLocked)
}

// Tick advances progress by one. It is a no-op once the session is inactive
// and is rejected while the automatic timer drives the demo.
func (s *DemoSession) Tick(ctx context.Context) (domain.DemoSnapshot, error) {
	return s.mutate(ctx, func(pending *[]domain.Notification) error {
		if s.closed {
			return domain.ErrSessionNotFound
		}
		if s.stopTimer != nil {
			return domain.ErrTimerRunning
		}
		s.tickLocked(pending)
		return nil
	})
}

// Reset stops the simulation and restores the initial configuration under a
// fresh tracking id.
func (s *DemoSession) Reset(ctx context.Context) (domain.DemoSnapshot, error) {
	return s.mutate(ctx, func(pending *[]domain.Notification) error {
		if s.closed {
			return domain.ErrSessionNotFound
		}
		s.releaseTimerLocked()
		s.active = false
		s.progress = 0
		s.etaMinutes = nil
		s.startedAt = nil
		s.cfg = domain.NewDemoConfig()
		previous := s.trackingID
		s.trackingID = s.newTrackingID()
		s.log.Info().Str("previous_tracking_id", previous).Str("tracking_id", s.trackingID).Msg("demo reset")
		*pending = append(*pending, s.noticeLocked(domain.NotifyInfo, "Demo reset"))
		return nil
	})
}

// SelectLocation stores the start or end point. Inputs are frozen while the
// simulation runs.
func (s *DemoSession) SelectLocation(ctx context.Context, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error) {
	return s.mutate(ctx, func(pending *[]domain.Notification) error {
		if s.closed {
			return domain.ErrSessionNotFound
		}
		if !role.Valid() {
			metrics.ValidationFailuresTotal.WithLabelValues("select_location").Inc()
			return &domain.ValidationError{Field: "role", Reason: "must be start or end"}
		}
		if s.active {
			*pending = append(*pending, s.noticeLocked(domain.NotifyError, "Locations cannot be changed while the demo is running"))
			return domain.ErrSessionActive
		}

		label := geo.SelectionLabel(c)
		switch role {
		case domain.RoleStart:
			s.cfg.StartCoordinates = c.String()
			s.cfg.StartLocation = label
			*pending = append(*pending, s.noticeLocked(domain.NotifySuccess, "Start location selected"))
		case domain.RoleEnd:
			s.cfg.EndCoordinates = c.String()
			s.cfg.EndLocation = label
			*pending = append(*pending, s.noticeLocked(domain.NotifySuccess, "Destination location selected"))
		}
		return nil
	})
}

// SetSpeed changes the average speed used for the ETA.
func (s *DemoSession) SetSpeed(ctx context.Context, kph int) (domain.DemoSnapshot, error) {
	return s.mutate(ctx, func(pending *[]domain.Notification) error {
		if s.closed {
			return domain.ErrSessionNotFound
		}
		if s.active {
			return domain.ErrSessionActive
		}
		if kph < domain.MinSpeedKph || kph > domain.MaxSpeedKph {
			metrics.ValidationFailuresTotal.WithLabelValues("set_speed").Inc()
			return &domain.ValidationError{Field: "speed_kph", Reason: "must be between 10 and 120"}
		}
		s.cfg.SpeedKph = kph
		return nil
	})
}

// Close tears the session down. The timer is released and every later
// operation fails with ErrSessionNotFound.
func (s *DemoSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseTimerLocked()
	s.active = false
	s.closed = true
}

func (s *DemoSession) mutate(ctx context.Context, fn func(pending *[]domain.Notification) error) (domain.DemoSnapshot, error) {
	var pending []domain.Notification
	s.mu.Lock()
	err := fn(&pending)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(ctx, pending)
	return snap, err
}

func (s *DemoSession) startLocked(pending *[]domain.Notification) error {
	if s.closed {
		return domain.ErrSessionNotFound
	}
	if s.active {
		return domain.ErrSessionActive
	}
	if !geo.Parseable(s.cfg.StartCoordinates) || !geo.Parseable(s.cfg.EndCoordinates) {
		metrics.ValidationFailuresTotal.WithLabelValues("start").Inc()
		*pending = append(*pending, s.noticeLocked(domain.NotifyError, "Please select start and end locations"))
		return &domain.ValidationError{Field: "locations", Reason: "start and end locations are required"}
	}
	if s.cfg.SpeedKph <= 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("start").Inc()
		*pending = append(*pending, s.noticeLocked(domain.NotifyError, "Average speed must be greater than zero"))
		return &domain.ValidationError{Field: "speed_kph", Reason: "must be greater than zero"}
	}

	eta := estimateMinutes(s.cfg.SpeedKph)
	now := s.now()
	s.etaMinutes = &eta
	s.startedAt = &now
	s.progress = 0
	s.cfg.Status = domain.StageForProgress(0)
	s.active = true
	metrics.StageTransitionsTotal.WithLabelValues(string(s.cfg.Status)).Inc()
	s.acquireTimerLocked()

	s.log.Info().Str("tracking_id", s.trackingID).Int("speed_kph", s.cfg.SpeedKph).Int("eta_minutes", eta).Msg("demo started")
	*pending = append(*pending, s.noticeLocked(domain.NotifySuccess, "Demo started. Tracking in real time..."))
	return nil
}

// estimateMinutes is the synthetic ETA over the fixed demo distance.
func estimateMinutes(speedKph int) int {
	return int(math.Round(domain.DemoDistanceKm / float64(speedKph) * 60))
}

func (s *DemoSession) tickLocked(pending *[]domain.Notification) bool {
	if !s.active {
		return false
	}

	prev := s.progress
	next := min(prev+1, domain.MaxProgress)
	s.progress = next
	metrics.TicksTotal.Inc()

	// Status follows progress and only moves forward.
	if stage := domain.StageForProgress(next); s.cfg.Status.CanTransitionTo(stage) {
		s.cfg.Status = stage
		metrics.StageTransitionsTotal.WithLabelValues(string(stage)).Inc()
	}

	for _, m := range domain.Milestones {
		if prev < m.Progress && next >= m.Progress {
			notice := milestoneNotices[m.Stage]
			*pending = append(*pending, s.noticeLocked(notice.kind, notice.message))
			s.log.Debug().Str("tracking_id", s.trackingID).Int("progress", next).Str("stage", string(m.Stage)).Msg("milestone reached")
		}
	}

	if s.cfg.Status.Terminal() {
		s.active = false
		s.releaseTimerLocked()
		s.log.Info().Str("tracking_id", s.trackingID).Msg("demo delivered")
	}
	return true
}

// acquireTimerLocked starts the tick goroutine. Each acquisition gets a new
// generation; ticks from an older generation are discarded.
func (s *DemoSession) acquireTimerLocked() {
	s.releaseTimerLocked()
	if s.tickInterval <= 0 {
		return
	}
	s.timerGen++
	gen := s.timerGen
	ctx, cancel := context.WithCancel(context.Background())
	s.stopTimer = cancel
	metrics.SimulationsRunning.Inc()
	go s.runTimer(ctx, gen)
}

func (s *DemoSession) releaseTimerLocked() {
	if s.stopTimer == nil {
		return
	}
	s.stopTimer()
	s.stopTimer = nil
	s.timerGen++
	metrics.SimulationsRunning.Dec()
}

func (s *DemoSession) runTimer(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.timerTick(ctx, gen) {
				return
			}
		}
	}
}

func (s *DemoSession) timerTick(ctx context.Context, gen uint64) bool {
	var pending []domain.Notification
	s.mu.Lock()
	if gen != s.timerGen || s.closed {
		s.mu.Unlock()
		return false
	}
	s.tickLocked(&pending)
	running := s.active
	s.mu.Unlock()

	s.emit(context.WithoutCancel(ctx), pending)
	return running
}

func (s *DemoSession) noticeLocked(kind domain.NotificationKind, message string) domain.Notification {
	return domain.Notification{
		ID:         uuid.NewString(),
		SessionID:  s.id,
		TrackingID: s.trackingID,
		Kind:       kind,
		Message:    message,
		Stage:      s.cfg.Status,
		Progress:   s.progress,
		At:         s.now(),
	}
}

func (s *DemoSession) emit(ctx context.Context, pending []domain.Notification) {
	for _, n := range pending {
		s.notifier.Notify(ctx, n)
	}
}

func (s *DemoSession) snapshotLocked() domain.DemoSnapshot {
	snap := domain.DemoSnapshot{
		SessionID:  s.id,
		TrackingID: s.trackingID,
		Config:     s.cfg,
		Progress:   s.progress,
		Active:     s.active,
		Stages:     domain.Timeline(s.cfg.Status),
	}
	if s.etaMinutes != nil {
		eta := *s.etaMinutes
		snap.ETAMinutes = &eta
	}
	if s.startedAt != nil {
		at := *s.startedAt
		snap.StartedAt = &at
	}
	return snap
}
