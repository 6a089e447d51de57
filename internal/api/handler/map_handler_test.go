package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

func TestMapHandler_View(t *testing.T) {
	stub := &stubDemoService{
		mapFn: func(ctx context.Context, id string) (ports.MapViewState, error) {
			return ports.MapViewState{Center: domain.Coordinates{Lat: 9.7489, Lng: -83.7534}, Zoom: 10, Markers: []domain.Marker{}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/v1/demos/s1/map", "", "id", "s1")

	if err := NewMapHandler(stub).View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp ports.MapViewState
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Zoom != 10 || resp.Center.Lat != 9.7489 {
		t.Fatalf("unexpected view: %+v", resp)
	}
}

func TestMapHandler_Refresh_CollaboratorFailure(t *testing.T) {
	stub := &stubDemoService{
		refreshFn: func(ctx context.Context, id string) (ports.MapViewState, error) {
			return ports.MapViewState{}, &domain.CollaboratorError{Collaborator: "routing", Op: "compute route", Err: errors.New("down")}
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/demos/s1/map/refresh", "", "id", "s1")

	var ce *domain.CollaboratorError
	if err := NewMapHandler(stub).Refresh(c); !errors.As(err, &ce) {
		t.Fatalf("expected CollaboratorError, got %v", err)
	}
}

func TestMapHandler_ArmSelection(t *testing.T) {
	var armed domain.Role
	stub := &stubDemoService{
		armFn: func(ctx context.Context, id string, role domain.Role) (ports.MapViewState, error) {
			armed = role
			return ports.MapViewState{SelectionRole: role}, nil
		},
	}
	h := NewMapHandler(stub)

	c, rec := newContext(http.MethodPut, "/v1/demos/s1/map/selection", `{"role":"start"}`, "id", "s1")
	if err := h.ArmSelection(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || armed != domain.RoleStart {
		t.Fatalf("expected start armed, got %d %q", rec.Code, armed)
	}

	c, _ = newContext(http.MethodPut, "/v1/demos/s1/map/selection", `{"role":"both"}`, "id", "s1")
	if err := h.ArmSelection(c); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMapHandler_Click(t *testing.T) {
	stub := &stubDemoService{
		clickFn: func(ctx context.Context, id string, c domain.Coordinates) (ports.MapViewState, error) {
			if c.Lat != 9.93 || c.Lng != -84.08 {
				t.Fatalf("unexpected point %+v", c)
			}
			return ports.MapViewState{}, domain.ErrNoSelectionRole
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/demos/s1/map/click", `{"lat":9.93,"lng":-84.08}`, "id", "s1")

	if err := NewMapHandler(stub).Click(c); !errors.Is(err, domain.ErrNoSelectionRole) {
		t.Fatalf("expected ErrNoSelectionRole, got %v", err)
	}
}

func TestMapHandler_Search(t *testing.T) {
	loc := domain.Coordinates{Lat: 9.8644, Lng: -83.9194}
	stub := &stubDemoService{
		searchFn: func(ctx context.Context, id, query string) ([]domain.Place, error) {
			if query != "cartago" {
				t.Fatalf("unexpected query %q", query)
			}
			return []domain.Place{{Name: "Cartago", Location: &loc}}, nil
		},
		mapFn: func(ctx context.Context, id string) (ports.MapViewState, error) {
			return ports.MapViewState{Center: loc}, nil
		},
	}
	h := NewMapHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/demos/s1/places?q=cartago", "", "id", "s1")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Places) != 1 || resp.Map == nil || resp.Map.Center != loc {
		t.Fatalf("unexpected response %+v", resp)
	}

	c, _ = newContext(http.MethodGet, "/v1/demos/s1/places", "", "id", "s1")
	if err := h.Search(c); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing q, got %v", err)
	}
}
