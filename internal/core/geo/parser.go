// Package geo turns free-form location text into coordinates and builds deep
// links into external map apps.
package geo

import (
	"math"
	"regexp"
	"strconv"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

var (
	// decimalPair matches "9.7489,-83.7534" anywhere in the text.
	decimalPair = regexp.MustCompile(`(-?\d+\.\d+),\s*(-?\d+\.\d+)`)
	// dmsPair matches 9°44'56.0"N 83°45'12.2"W.
	dmsPair = regexp.MustCompile(`(\d+)°(\d+)'([\d.]+)"([NS])\s+(\d+)°(\d+)'([\d.]+)"([EW])`)
)

// Parse extracts a coordinate pair from text. Decimal pairs are tried first,
// then degrees-minutes-seconds. It reports false when the text is empty, no
// pattern matches, or a matched number cannot be converted. Values are not
// range-checked.
func Parse(text string) (domain.Coordinates, bool) {
	if text == "" {
		return domain.Coordinates{}, false
	}
	if m := decimalPair.FindStringSubmatch(text); m != nil {
		return parseDecimal(m[1], m[2])
	}
	if m := dmsPair.FindStringSubmatch(text); m != nil {
		return parseDMS(m[1:])
	}
	return domain.Coordinates{}, false
}

// Parseable reports whether Parse would succeed on text.
func Parseable(text string) bool {
	_, ok := Parse(text)
	return ok
}

func parseDecimal(latText, lngText string) (domain.Coordinates, bool) {
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngText, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Lat: lat, Lng: lng}, true
}

// parseDMS converts the eight DMS capture groups (deg, min, sec, hemisphere
// for latitude then longitude).
func parseDMS(g []string) (domain.Coordinates, bool) {
	lat, ok := dmsToDecimal(g[0], g[1], g[2])
	if !ok {
		return domain.Coordinates{}, false
	}
	lng, ok := dmsToDecimal(g[4], g[5], g[6])
	if !ok {
		return domain.Coordinates{}, false
	}
	if g[3] == "S" {
		lat = -lat
	}
	if g[7] == "W" {
		lng = -lng
	}
	return domain.Coordinates{Lat: lat, Lng: lng}, true
}

func dmsToDecimal(degText, minText, secText string) (float64, bool) {
	degrees, err := strconv.Atoi(degText)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(minText)
	if err != nil {
		return 0, false
	}
	sec, err := strconv.ParseFloat(secText, 64)
	if err != nil {
		return 0, false
	}
	v := float64(degrees) + float64(minutes)/60 + sec/3600
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
