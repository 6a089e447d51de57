// Package metrics defines and registers all custom Prometheus metrics for the
// delivery tracking demo. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking_demo"

// ── Demo session metrics ─────────────────────────────────────────────────────

// SessionsActive tracks the number of demo sessions currently held in memory.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of demo sessions currently registered.",
	},
)

// SimulationsRunning tracks sessions whose progress timer is running.
var SimulationsRunning = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "simulations_running",
		Help:      "Number of demo simulations with an active tick timer.",
	},
)

// TicksTotal counts progress ticks that advanced a simulation.
var TicksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticks_total",
		Help:      "Total number of simulation ticks that advanced progress.",
	},
)

// StageTransitionsTotal counts milestone crossings.
// Label:
//   - stage: the stage entered (e.g. "en_route_to_pickup")
var StageTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stage_transitions_total",
		Help:      "Total number of stage milestones crossed, by stage.",
	},
	[]string{"stage"},
)

// ValidationFailuresTotal counts rejected user input.
// Label:
//   - operation: "start", "select_location", "set_speed"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of demo operations rejected by validation.",
	},
	[]string{"operation"},
)

// ── Collaborator metrics ─────────────────────────────────────────────────────

// CollaboratorRequestsTotal counts calls into external collaborators.
// Labels:
//   - collaborator: "routing", "places", "position"
//   - result: "ok" or "error"
var CollaboratorRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collaborator_requests_total",
		Help:      "Total number of external collaborator calls, by collaborator and result.",
	},
	[]string{"collaborator", "result"},
)

// CollaboratorDuration measures collaborator call latency.
var CollaboratorDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collaborator_duration_seconds",
		Help:      "Duration of external collaborator calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"collaborator"},
)

// PositionUpdatesTotal counts fixes delivered to sharing sessions.
// Label:
//   - source: "simulated" or "device"
var PositionUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "position_updates_total",
		Help:      "Total number of position fixes delivered to sharing sessions.",
	},
	[]string{"source"},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notifications handed to sinks.
// Label:
//   - kind: "info", "success", "error"
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications delivered to sinks, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts notifications discarded because a worker
// queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped on a full dispatcher queue.",
	},
)

// NotificationQueueDepth tracks pending notifications per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// WebSocketClients tracks connected notification stream clients.
var WebSocketClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_clients",
		Help:      "Number of connected WebSocket notification clients.",
	},
)
