package ports

import (
	"context"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// WatchHandle identifies an active position watch.
type WatchHandle string

// PositionSource is the geolocation collaborator.
type PositionSource interface {
	// CurrentPosition returns a single fix.
	CurrentPosition(ctx context.Context) (domain.Position, error)
	// WatchPosition registers callbacks for every subsequent fix or failure
	// until ClearWatch is called with the returned handle.
	WatchPosition(onUpdate func(domain.Position), onError func(error)) (WatchHandle, error)
	// ClearWatch releases a watch. Clearing an unknown handle is a no-op.
	ClearWatch(h WatchHandle)
}

// PositionPublisher is implemented by sources that accept externally pushed
// fixes (e.g. a driver app).
type PositionPublisher interface {
	Publish(pos domain.Position) error
}

// PositionSourceFactory builds the position source of a new session.
type PositionSourceFactory func(sessionID string) PositionSource
