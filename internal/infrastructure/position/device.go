package position

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// Device is fed by an external client (a driver app) through Publish.
type Device struct {
	mu      sync.Mutex
	last    *domain.Position
	watches map[ports.WatchHandle]func(domain.Position)
}

var _ ports.PositionPublisher = (*Device)(nil)

func NewDevice() *Device {
	return &Device{watches: make(map[ports.WatchHandle]func(domain.Position))}
}

// CurrentPosition returns the last published fix, or domain.ErrNoPosition.
func (d *Device) CurrentPosition(context.Context) (domain.Position, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last == nil {
		return domain.Position{}, domain.ErrNoPosition
	}
	return *d.last, nil
}

func (d *Device) WatchPosition(onUpdate func(domain.Position), _ func(error)) (ports.WatchHandle, error) {
	h := ports.WatchHandle(uuid.NewString())
	d.mu.Lock()
	d.watches[h] = onUpdate
	d.mu.Unlock()
	return h, nil
}

func (d *Device) ClearWatch(h ports.WatchHandle) {
	d.mu.Lock()
	delete(d.watches, h)
	d.mu.Unlock()
}

// Publish records pos and delivers it to every watcher.
func (d *Device) Publish(pos domain.Position) error {
	if pos.Coordinates.Lat < -90 || pos.Coordinates.Lat > 90 || pos.Coordinates.Lng < -180 || pos.Coordinates.Lng > 180 {
		return &domain.ValidationError{Field: "position", Reason: "coordinates out of range"}
	}

	d.mu.Lock()
	d.last = &pos
	watchers := make([]func(domain.Position), 0, len(d.watches))
	for _, fn := range d.watches {
		watchers = append(watchers, fn)
	}
	d.mu.Unlock()

	for _, fn := range watchers {
		fn(pos)
	}
	return nil
}
