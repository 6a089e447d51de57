package domain

import "time"

// Position is a single location fix from a position source.
type Position struct {
	Coordinates Coordinates `json:"coordinates"`
	// SpeedKph is nil when the source did not report a speed.
	SpeedKph *int      `json:"speed_kph,omitempty"`
	Accuracy float64   `json:"accuracy,omitempty"`
	At       time.Time `json:"at"`
}

// Route is a computed driving route between two points.
type Route struct {
	Origin          Coordinates   `json:"origin"`
	Destination     Coordinates   `json:"destination"`
	DistanceMeters  float64       `json:"distance_meters"`
	DurationSeconds float64       `json:"duration_seconds"`
	Geometry        []Coordinates `json:"geometry"`
}

// AverageSpeedKph returns the route's mean speed, or 0 when duration is unknown.
func (r Route) AverageSpeedKph() float64 {
	if r.DurationSeconds <= 0 {
		return 0
	}
	return (r.DistanceMeters / 1000) / (r.DurationSeconds / 3600)
}

// MarkerStyle selects how a marker is drawn.
type MarkerStyle string

const (
	MarkerStart   MarkerStyle = "start"
	MarkerEnd     MarkerStyle = "end"
	MarkerCurrent MarkerStyle = "current"
	MarkerDrop    MarkerStyle = "drop"
)

// Marker is a placed map marker owned by a map view.
type Marker struct {
	Handle   string      `json:"handle"`
	Position Coordinates `json:"position"`
	Title    string      `json:"title,omitempty"`
	Style    MarkerStyle `json:"style"`
}

// Place is a candidate location returned by a place search.
type Place struct {
	Name     string       `json:"name"`
	Location *Coordinates `json:"location,omitempty"`
	Viewport *Bounds      `json:"viewport,omitempty"`
}

// MapLinks are deep links into external map apps.
type MapLinks struct {
	GoogleMaps string `json:"google_maps"`
	Waze       string `json:"waze"`
}
