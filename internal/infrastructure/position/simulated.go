// Package position provides the position sources a session can share from.
package position

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// SimulatedCenter is the point simulated fixes scatter around.
var SimulatedCenter = domain.Coordinates{Lat: 9.9281, Lng: -84.0907}

const (
	simulatedSpread   = 0.05
	simulatedMaxSpeed = 60
	defaultInterval   = 5 * time.Second
)

// Simulated emits random fixes near SimulatedCenter on a fixed interval.
type Simulated struct {
	interval time.Duration
	rand     func() float64
	speed    func() int

	mu      sync.Mutex
	watches map[ports.WatchHandle]context.CancelFunc
}

func NewSimulated(interval time.Duration) *Simulated {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Simulated{
		interval: interval,
		rand:     rand.Float64,
		speed:    func() int { return rand.IntN(simulatedMaxSpeed) },
		watches:  make(map[ports.WatchHandle]context.CancelFunc),
	}
}

// CurrentPosition returns a fresh random fix.
func (s *Simulated) CurrentPosition(context.Context) (domain.Position, error) {
	return s.next(), nil
}

// WatchPosition emits a fix every interval until the watch is cleared.
func (s *Simulated) WatchPosition(onUpdate func(domain.Position), _ func(error)) (ports.WatchHandle, error) {
	ctx, cancel := context.WithCancel(context.Background())
	h := ports.WatchHandle(uuid.NewString())

	s.mu.Lock()
	s.watches[h] = cancel
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				onUpdate(s.next())
			}
		}
	}()
	return h, nil
}

func (s *Simulated) ClearWatch(h ports.WatchHandle) {
	s.mu.Lock()
	cancel, ok := s.watches[h]
	delete(s.watches, h)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// Watches returns the number of active watches.
func (s *Simulated) Watches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watches)
}

func (s *Simulated) next() domain.Position {
	speed := s.speed()
	return domain.Position{
		Coordinates: domain.Coordinates{
			Lat: SimulatedCenter.Lat + (s.rand()-0.5)*2*simulatedSpread,
			Lng: SimulatedCenter.Lng + (s.rand()-0.5)*2*simulatedSpread,
		},
		SpeedKph: &speed,
		At:       time.Now().UTC(),
	}
}
