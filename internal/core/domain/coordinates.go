package domain

import (
	"strconv"
	"strings"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the point as "lat,lng". Both numbers always carry a decimal
// point so the text round-trips through the decimal-pair parser.
func (c Coordinates) String() string {
	return formatDecimal(c.Lat) + "," + formatDecimal(c.Lng)
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Bounds is an axis-aligned lat/lng rectangle.
type Bounds struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

// BoundsAround returns the degenerate bounds containing only c.
func BoundsAround(c Coordinates) Bounds {
	return Bounds{SouthWest: c, NorthEast: c}
}

// Extend grows b so that it contains c.
func (b Bounds) Extend(c Coordinates) Bounds {
	if c.Lat < b.SouthWest.Lat {
		b.SouthWest.Lat = c.Lat
	}
	if c.Lng < b.SouthWest.Lng {
		b.SouthWest.Lng = c.Lng
	}
	if c.Lat > b.NorthEast.Lat {
		b.NorthEast.Lat = c.Lat
	}
	if c.Lng > b.NorthEast.Lng {
		b.NorthEast.Lng = c.Lng
	}
	return b
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return b.Extend(o.SouthWest).Extend(o.NorthEast)
}

// Center returns the midpoint of b.
func (b Bounds) Center() Coordinates {
	return Coordinates{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Contains reports whether c lies inside b (edges inclusive).
func (b Bounds) Contains(c Coordinates) bool {
	return c.Lat >= b.SouthWest.Lat && c.Lat <= b.NorthEast.Lat &&
		c.Lng >= b.SouthWest.Lng && c.Lng <= b.NorthEast.Lng
}

// FitBounds returns the bounds enclosing every point, and false when points is empty.
func FitBounds(points ...Coordinates) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := BoundsAround(points[0])
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b, true
}
