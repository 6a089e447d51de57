package ports

import (
	"context"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// MapViewState is the renderable state of a session's map.
type MapViewState struct {
	Center          domain.Coordinates `json:"center"`
	Zoom            int                `json:"zoom"`
	Bounds          *domain.Bounds     `json:"bounds,omitempty"`
	Markers         []domain.Marker    `json:"markers"`
	Route           *domain.Route      `json:"route,omitempty"`
	Links           *domain.MapLinks   `json:"links,omitempty"`
	AverageSpeedKph int                `json:"average_speed_kph"`
	SelectionRole   domain.Role        `json:"selection_role,omitempty"`
	Sharing         bool               `json:"sharing"`
}

// DemoService is the use-case surface the transport layer drives.
type DemoService interface {
	Create(ctx context.Context) (domain.DemoSnapshot, error)
	Get(ctx context.Context, id string) (domain.DemoSnapshot, error)
	Close(ctx context.Context, id string) error

	SelectLocation(ctx context.Context, id string, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error)
	SetSpeed(ctx context.Context, id string, kph int) (domain.DemoSnapshot, error)
	Start(ctx context.Context, id string) (domain.DemoSnapshot, error)
	Tick(ctx context.Context, id string) (domain.DemoSnapshot, error)
	Reset(ctx context.Context, id string) (domain.DemoSnapshot, error)

	MapView(ctx context.Context, id string) (MapViewState, error)
	RefreshMap(ctx context.Context, id string) (MapViewState, error)
	ArmSelection(ctx context.Context, id string, role domain.Role) (MapViewState, error)
	ClickMap(ctx context.Context, id string, c domain.Coordinates) (MapViewState, error)
	SearchPlaces(ctx context.Context, id, query string) ([]domain.Place, error)

	StartSharing(ctx context.Context, id string) (MapViewState, error)
	StopSharing(ctx context.Context, id string) (MapViewState, error)
	PushPosition(ctx context.Context, id string, pos domain.Position) error
}
