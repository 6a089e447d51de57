package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/geo"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/metrics"
)

const (
	defaultZoom = 10
	focusZoom   = 15
)

// notifyFunc emits a notification on behalf of a session.
type notifyFunc func(ctx context.Context, kind domain.NotificationKind, message string)

// MapViewOptions configures a MapView.
type MapViewOptions struct {
	Center domain.Coordinates
	Zoom   int
	Routes ports.RouteProvider
	Places ports.PlaceSearcher
	Logger zerolog.Logger
	// Handles overrides marker handle generation (tests).
	Handles func() string
}

// MapView is the single owner of a session's markers and route. Every marker
// change goes through SetMarkers, which releases stale handles.
type MapView struct {
	mu sync.Mutex

	center    domain.Coordinates
	zoom      int
	bounds    *domain.Bounds
	markers   []domain.Marker
	route     *domain.Route
	links     *domain.MapLinks
	avgSpeed  int
	selection domain.Role
	sharing   bool

	refreshSeq uint64

	routes    ports.RouteProvider
	places    ports.PlaceSearcher
	notify    notifyFunc
	newHandle func() string
	log       zerolog.Logger
}

// NewMapView creates a map view centred on opts.Center.
func NewMapView(opts MapViewOptions, notify notifyFunc) *MapView {
	v := &MapView{
		center:    opts.Center,
		zoom:      opts.Zoom,
		routes:    opts.Routes,
		places:    opts.Places,
		notify:    notify,
		newHandle: opts.Handles,
		log:       opts.Logger,
	}
	if v.zoom <= 0 {
		v.zoom = defaultZoom
	}
	if v.newHandle == nil {
		v.newHandle = uuid.NewString
	}
	if v.notify == nil {
		v.notify = func(context.Context, domain.NotificationKind, string) {}
	}
	return v
}

// State returns the renderable view.
func (v *MapView) State() ports.MapViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

// SetMarkers replaces the marker set. Markers equal in position, title and
// style keep their handle; the handles of markers no longer wanted are
// returned as removed.
func (v *MapView) SetMarkers(wanted []domain.Marker) (added, removed []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.setMarkersLocked(wanted)
}

type markerKey struct {
	pos   domain.Coordinates
	title string
	style domain.MarkerStyle
}

func keyOf(m domain.Marker) markerKey {
	return markerKey{pos: m.Position, title: m.Title, style: m.Style}
}

func (v *MapView) setMarkersLocked(wanted []domain.Marker) (added, removed []string) {
	existing := make(map[markerKey][]string, len(v.markers))
	for _, m := range v.markers {
		k := keyOf(m)
		existing[k] = append(existing[k], m.Handle)
	}

	next := make([]domain.Marker, 0, len(wanted))
	for _, m := range wanted {
		k := keyOf(m)
		if handles := existing[k]; len(handles) > 0 {
			m.Handle = handles[0]
			existing[k] = handles[1:]
		} else {
			m.Handle = v.newHandle()
			added = append(added, m.Handle)
		}
		next = append(next, m)
	}

	for _, handles := range existing {
		removed = append(removed, handles...)
	}
	v.markers = next
	return added, removed
}

// Refresh redraws the view for the given start/end coordinate text. With
// both points a route is requested; a failed request leaves the view as it
// was. With one point a marker is shown and the view zooms onto it.
func (v *MapView) Refresh(ctx context.Context, startText, endText, destination string) error {
	start, hasStart := geo.Parse(startText)
	end, hasEnd := geo.Parse(endText)

	v.mu.Lock()
	v.refreshSeq++
	seq := v.refreshSeq
	v.mu.Unlock()

	if hasStart && hasEnd {
		route, err := v.computeRoute(ctx, start, end)
		if err != nil {
			v.log.Warn().Err(err).Msg("route calculation failed")
			v.notify(ctx, domain.NotifyError, "Could not calculate the route")
			return err
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		if seq != v.refreshSeq {
			return nil
		}
		v.route = route
		v.setMarkersLocked([]domain.Marker{
			{Position: start, Title: "Start point", Style: domain.MarkerStart},
			{Position: end, Title: destinationTitle(destination), Style: domain.MarkerEnd},
		})
		points := append([]domain.Coordinates{start, end}, route.Geometry...)
		v.fitLocked(points...)
		links := geo.Links(end)
		v.links = &links
		v.avgSpeed = int(math.Round(route.AverageSpeedKph()))
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.refreshSeq {
		return nil
	}
	v.route = nil
	var wanted []domain.Marker
	var points []domain.Coordinates
	if hasStart {
		wanted = append(wanted, domain.Marker{Position: start, Title: "Start point", Style: domain.MarkerStart})
		points = append(points, start)
	}
	if hasEnd {
		wanted = append(wanted, domain.Marker{Position: end, Title: destinationTitle(destination), Style: domain.MarkerEnd})
		points = append(points, end)
	}
	v.setMarkersLocked(wanted)
	if len(points) > 0 {
		v.fitLocked(points...)
		if len(points) == 1 {
			v.zoom = focusZoom
		}
	}
	return nil
}

func destinationTitle(destination string) string {
	if destination == "" {
		return "Destination"
	}
	return destination
}

func (v *MapView) computeRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error) {
	if v.routes == nil {
		return nil, &domain.CollaboratorError{Collaborator: "routing", Op: "compute route", Err: fmt.Errorf("no route provider configured")}
	}

	began := time.Now()
	route, err := v.routes.ComputeRoute(ctx, start, end)
	metrics.CollaboratorDuration.WithLabelValues("routing").Observe(time.Since(began).Seconds())
	if err != nil {
		metrics.CollaboratorRequestsTotal.WithLabelValues("routing", "error").Inc()
		return nil, &domain.CollaboratorError{Collaborator: "routing", Op: "compute route", Err: err}
	}
	metrics.CollaboratorRequestsTotal.WithLabelValues("routing", "ok").Inc()
	return route, nil
}

// Search runs a place search biased to the current bounds and shows every
// result with a location. When a selection is armed the first result is
// returned as the selected point.
func (v *MapView) Search(ctx context.Context, query string) ([]domain.Place, *Selection, error) {
	if v.places == nil {
		return nil, nil, &domain.CollaboratorError{Collaborator: "places", Op: "search", Err: fmt.Errorf("no place searcher configured")}
	}

	v.mu.Lock()
	var bias *domain.Bounds
	if v.bounds != nil {
		b := *v.bounds
		bias = &b
	}
	v.mu.Unlock()

	began := time.Now()
	places, err := v.places.SearchPlaces(ctx, query, bias)
	metrics.CollaboratorDuration.WithLabelValues("places").Observe(time.Since(began).Seconds())
	if err != nil {
		metrics.CollaboratorRequestsTotal.WithLabelValues("places", "error").Inc()
		v.notify(ctx, domain.NotifyError, "Place search failed")
		return nil, nil, &domain.CollaboratorError{Collaborator: "places", Op: "search", Err: err}
	}
	metrics.CollaboratorRequestsTotal.WithLabelValues("places", "ok").Inc()

	found := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if p.Location == nil {
			v.log.Debug().Str("place", p.Name).Msg("place has no location")
			continue
		}
		found = append(found, p)
	}
	if len(found) == 0 {
		return found, nil, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	wanted := make([]domain.Marker, 0, len(found))
	var bounds *domain.Bounds
	for _, p := range found {
		wanted = append(wanted, domain.Marker{Position: *p.Location, Title: p.Name, Style: domain.MarkerDrop})
		area := domain.BoundsAround(*p.Location)
		if p.Viewport != nil {
			area = *p.Viewport
		}
		if bounds == nil {
			bounds = &area
		} else {
			u := bounds.Union(area)
			bounds = &u
		}
	}
	v.setMarkersLocked(wanted)
	v.bounds = bounds
	v.center = bounds.Center()

	var sel *Selection
	if v.selection != "" {
		sel = &Selection{Role: v.selection, Coordinates: *found[0].Location}
	}
	return found, sel, nil
}

// Selection is a point picked for a demo role.
type Selection struct {
	Role        domain.Role
	Coordinates domain.Coordinates
}

// ArmSelection makes the next click or search pick the given role.
func (v *MapView) ArmSelection(role domain.Role) error {
	if !role.Valid() {
		return &domain.ValidationError{Field: "role", Reason: "must be start or end"}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = role
	return nil
}

// DisarmSelection leaves selection mode.
func (v *MapView) DisarmSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = ""
}

// Click places a single marker at c and returns the armed selection.
func (v *MapView) Click(c domain.Coordinates) (*Selection, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selection == "" {
		return nil, domain.ErrNoSelectionRole
	}
	v.setMarkersLocked([]domain.Marker{{Position: c, Style: domain.MarkerDrop}})
	return &Selection{Role: v.selection, Coordinates: c}, nil
}

// ShowPosition moves the current-position marker to pos. The first fix of a
// sharing run also zooms in.
func (v *MapView) ShowPosition(pos domain.Position, first bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setMarkersLocked([]domain.Marker{{Position: pos.Coordinates, Title: "My current location", Style: domain.MarkerCurrent}})
	v.center = pos.Coordinates
	if first {
		v.zoom = focusZoom
	}
	links := geo.Links(pos.Coordinates)
	v.links = &links
	if pos.SpeedKph != nil {
		v.avgSpeed = *pos.SpeedKph
	}
}

// SetSharing records whether location sharing is on.
func (v *MapView) SetSharing(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sharing = on
}

func (v *MapView) fitLocked(points ...domain.Coordinates) {
	b, ok := domain.FitBounds(points...)
	if !ok {
		return
	}
	v.bounds = &b
	v.center = b.Center()
}

func (v *MapView) stateLocked() ports.MapViewState {
	st := ports.MapViewState{
		Center:          v.center,
		Zoom:            v.zoom,
		Markers:         append([]domain.Marker(nil), v.markers...),
		AverageSpeedKph: v.avgSpeed,
		SelectionRole:   v.selection,
		Sharing:         v.sharing,
	}
	if st.Markers == nil {
		st.Markers = []domain.Marker{}
	}
	if v.bounds != nil {
		b := *v.bounds
		st.Bounds = &b
	}
	if v.route != nil {
		r := *v.route
		st.Route = &r
	}
	if v.links != nil {
		l := *v.links
		st.Links = &l
	}
	return st
}
