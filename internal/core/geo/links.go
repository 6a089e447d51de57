package geo

import (
	"fmt"
	"strconv"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// GoogleMapsLink returns a Google Maps URL centred on c.
func GoogleMapsLink(c domain.Coordinates) string {
	return "https://www.google.com/maps?q=" + latLng(c)
}

// WazeLink returns a Waze navigation URL towards c.
func WazeLink(c domain.Coordinates) string {
	return "https://waze.com/ul?ll=" + latLng(c) + "&navigate=yes"
}

// Links builds both deep links for c.
func Links(c domain.Coordinates) domain.MapLinks {
	return domain.MapLinks{
		GoogleMaps: GoogleMapsLink(c),
		Waze:       WazeLink(c),
	}
}

// SelectionLabel is the display text for a point picked on the map.
func SelectionLabel(c domain.Coordinates) string {
	return fmt.Sprintf("Selected location (%.4f, %.4f)", c.Lat, c.Lng)
}

func latLng(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
