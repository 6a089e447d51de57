package domain

import "time"

// DefaultSpeedKph is the average speed a fresh demo starts with.
const DefaultSpeedKph = 60

// Speed bounds accepted from the demo form.
const (
	MinSpeedKph = 10
	MaxSpeedKph = 120
)

// DemoDistanceKm is the fixed distance used for the synthetic ETA. It is
// deliberately independent of the selected points.
const DemoDistanceKm = 45.0

// TrackingIDPrefix prefixes every demo tracking identifier.
const TrackingIDPrefix = "DEMO"

// Role identifies which end of the trip a location selection applies to.
type Role string

const (
	RoleStart Role = "start"
	RoleEnd   Role = "end"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStart || r == RoleEnd
}

// DemoConfig is the user-editable form state of a demo session.
type DemoConfig struct {
	StartLocation    string `json:"start_location"`
	StartCoordinates string `json:"start_coordinates"`
	EndLocation      string `json:"end_location"`
	EndCoordinates   string `json:"end_coordinates"`
	SpeedKph         int    `json:"speed_kph"`
	Status           Stage  `json:"status"`
}

// NewDemoConfig returns the initial form state.
func NewDemoConfig() DemoConfig {
	return DemoConfig{
		SpeedKph: DefaultSpeedKph,
		Status:   StageNotStarted,
	}
}

// StageView is one row of the shipment timeline.
type StageView struct {
	Stage     Stage  `json:"stage"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// DemoSnapshot is a consistent read of a demo session.
type DemoSnapshot struct {
	SessionID  string      `json:"session_id"`
	TrackingID string      `json:"tracking_id"`
	Config     DemoConfig  `json:"config"`
	Progress   int         `json:"progress"`
	Active     bool        `json:"active"`
	ETAMinutes *int        `json:"eta_minutes,omitempty"`
	Stages     []StageView `json:"stages"`
	StartedAt  *time.Time  `json:"started_at,omitempty"`
}

// Timeline builds the stage rows for the given current stage.
func Timeline(current Stage) []StageView {
	views := make([]StageView, 0, len(DisplayStages))
	for _, s := range DisplayStages {
		views = append(views, StageView{
			Stage:     s,
			Label:     s.Label(),
			Active:    current == s,
			Completed: current.Reached(s),
		})
	}
	return views
}
