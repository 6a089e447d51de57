package ports

import (
	"context"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// RouteProvider computes driving routes between two points.
type RouteProvider interface {
	ComputeRoute(ctx context.Context, origin, destination domain.Coordinates) (*domain.Route, error)
}

// PlaceSearcher resolves free-text queries into candidate places, biased
// towards bounds when provided.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query string, bounds *domain.Bounds) ([]domain.Place, error)
}
