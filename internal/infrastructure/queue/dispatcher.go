package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Sink receives notifications from the dispatcher workers.
type Sink interface {
	Deliver(ctx context.Context, n domain.Notification) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n domain.Notification) error

func (f SinkFunc) Deliver(ctx context.Context, n domain.Notification) error { return f(ctx, n) }

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the session id, guaranteeing per-session ordering. It implements
// ports.Notifier and never blocks the caller: when a worker queue is full the
// notification is dropped.
type Dispatcher struct {
	workers []chan domain.Notification
	sinks   []Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger, sinks ...Sink) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notification, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues n on the worker responsible for its session.
func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) {
	idx := d.shardIndex(n.SessionID)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().
			Str("session_id", n.SessionID).
			Int("worker_id", idx).
			Msg("notification queue full, dropping")
	}
}

// shardIndex maps a session id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	depth := metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.deliver(ctx, id, n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, n domain.Notification) {
	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, n); err != nil {
			d.log.Error().Err(err).
				Str("session_id", n.SessionID).
				Int("worker_id", id).
				Msg("notification delivery failed")
		}
	}
	metrics.NotificationsDispatchedTotal.WithLabelValues(string(n.Kind)).Inc()
}

// LogSink writes every notification to log.
func LogSink(log zerolog.Logger) Sink {
	return SinkFunc(func(_ context.Context, n domain.Notification) error {
		ev := log.Info()
		if n.Kind == domain.NotifyError {
			ev = log.Warn()
		}
		ev.Str("session_id", n.SessionID).
			Str("tracking_id", n.TrackingID).
			Str("kind", string(n.Kind)).
			Str("stage", string(n.Stage)).
			Int("progress", n.Progress).
			Msg(n.Message)
		return nil
	})
}
