package position

import (
	"fmt"
	"time"

	"github.com/99minutos/tracking-demo/internal/core/ports"
)

const (
	KindSimulated = "simulated"
	KindDevice    = "device"
)

// NewFactory returns a per-session source factory for kind.
func NewFactory(kind string, simInterval time.Duration) (ports.PositionSourceFactory, error) {
	switch kind {
	case KindSimulated:
		return func(string) ports.PositionSource { return NewSimulated(simInterval) }, nil
	case KindDevice:
		return func(string) ports.PositionSource { return NewDevice() }, nil
	default:
		return nil, fmt.Errorf("position: unknown source %q", kind)
	}
}
