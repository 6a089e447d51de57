package domain

// Stage represents the lifecycle state of a demo shipment.
type Stage string

const (
	StageNotStarted        Stage = "not_started"
	StagePreparing         Stage = "preparing"
	StageEnRouteToPickup   Stage = "en_route_to_pickup"
	StageEnRouteToDelivery Stage = "en_route_to_delivery"
	StageDelivered         Stage = "delivered"
)

// stageRank gives the total order of stages.
var stageRank = map[Stage]int{
	StageNotStarted:        0,
	StagePreparing:         1,
	StageEnRouteToPickup:   2,
	StageEnRouteToDelivery: 3,
	StageDelivered:         4,
}

// validTransitions defines the forward-only state machine.
var validTransitions = map[Stage][]Stage{
	StageNotStarted:        {StagePreparing},
	StagePreparing:         {StageEnRouteToPickup},
	StageEnRouteToPickup:   {StageEnRouteToDelivery},
	StageEnRouteToDelivery: {StageDelivered},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s Stage) CanTransitionTo(next Stage) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reached reports whether s is at or past other.
func (s Stage) Reached(other Stage) bool {
	return stageRank[s] >= stageRank[other]
}

// Terminal reports whether no further transition exists.
func (s Stage) Terminal() bool {
	return s == StageDelivered
}

// Milestone binds a progress threshold to the stage entered when it is crossed.
type Milestone struct {
	Progress int
	Stage    Stage
}

// Milestones lists the progress thresholds in ascending order.
var Milestones = []Milestone{
	{Progress: 25, Stage: StagePreparing},
	{Progress: 50, Stage: StageEnRouteToPickup},
	{Progress: 75, Stage: StageEnRouteToDelivery},
	{Progress: MaxProgress, Stage: StageDelivered},
}

// MaxProgress is the progress value at which a demo is complete.
const MaxProgress = 100

// StageForProgress is the stage of a started demo at the given progress.
func StageForProgress(progress int) Stage {
	stage := StagePreparing
	for _, m := range Milestones {
		if progress >= m.Progress {
			stage = m.Stage
		}
	}
	return stage
}

// DisplayStages are the stages shown in the shipment timeline, in order.
var DisplayStages = []Stage{
	StagePreparing,
	StageEnRouteToPickup,
	StageEnRouteToDelivery,
	StageDelivered,
}

var stageLabels = map[Stage]string{
	StageNotStarted:        "Not started",
	StagePreparing:         "Preparing",
	StageEnRouteToPickup:   "En route to pick up equipment",
	StageEnRouteToDelivery: "Out for delivery",
	StageDelivered:         "Delivered",
}

// Label returns the human-readable stage name.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}
