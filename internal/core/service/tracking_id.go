package service

import (
	"math/rand/v2"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateTrackingID returns a demo tracking id in the format DEMOXXXX where
// X is an uppercase base-36 character. Ids are for display only.
func generateTrackingID() string {
	out := make([]byte, 4)
	for i := range out {
		out[i] = base36[rand.IntN(len(base36))]
	}
	return domain.TrackingIDPrefix + string(out)
}
