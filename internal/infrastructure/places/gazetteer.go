// Package places resolves free-text place queries.
package places

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

const maxResults = 5

// gazetteerEntry is one named place in the gazetteer file. Radius is the
// half-size of the place viewport in degrees.
type gazetteerEntry struct {
	Name    string   `yaml:"name"    validate:"required"`
	Aliases []string `yaml:"aliases"`
	Lat     float64  `yaml:"lat"     validate:"gte=-90,lte=90"`
	Lng     float64  `yaml:"lng"     validate:"gte=-180,lte=180"`
	Radius  float64  `yaml:"radius"  validate:"gte=0"`
}

type gazetteerFile struct {
	Places []gazetteerEntry `yaml:"places" validate:"dive"`
}

// Gazetteer is an offline PlaceSearcher over a fixed list of places.
type Gazetteer struct {
	entries []gazetteerEntry
}

// LoadGazetteer reads and validates a YAML gazetteer.
func LoadGazetteer(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: read %s: %w", path, err)
	}
	return ParseGazetteer(data)
}

// ParseGazetteer builds a Gazetteer from YAML.
func ParseGazetteer(data []byte) (*Gazetteer, error) {
	var f gazetteerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gazetteer: decode: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("gazetteer: invalid entry: %w", err)
	}
	return &Gazetteer{entries: f.Places}, nil
}

// SearchPlaces returns places whose name or alias contains query. Places
// inside bounds rank first.
func (g *Gazetteer) SearchPlaces(_ context.Context, query string, bounds *domain.Bounds) ([]domain.Place, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Place{}, nil
	}

	type hit struct {
		entry  gazetteerEntry
		inside bool
		exact  bool
	}
	var hits []hit
	for _, e := range g.entries {
		exact, ok := matches(e, q)
		if !ok {
			continue
		}
		c := domain.Coordinates{Lat: e.Lat, Lng: e.Lng}
		hits = append(hits, hit{entry: e, inside: bounds != nil && bounds.Contains(c), exact: exact})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].exact != hits[j].exact {
			return hits[i].exact
		}
		return hits[i].inside && !hits[j].inside
	})
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	out := make([]domain.Place, 0, len(hits))
	for _, h := range hits {
		c := domain.Coordinates{Lat: h.entry.Lat, Lng: h.entry.Lng}
		p := domain.Place{Name: h.entry.Name, Location: &c}
		if h.entry.Radius > 0 {
			p.Viewport = &domain.Bounds{
				SouthWest: domain.Coordinates{Lat: c.Lat - h.entry.Radius, Lng: c.Lng - h.entry.Radius},
				NorthEast: domain.Coordinates{Lat: c.Lat + h.entry.Radius, Lng: c.Lng + h.entry.Radius},
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func matches(e gazetteerEntry, q string) (exact, ok bool) {
	for _, name := range append([]string{e.Name}, e.Aliases...) {
		n := strings.ToLower(name)
		if n == q {
			return true, true
		}
		if strings.Contains(n, q) {
			ok = true
		}
	}
	return false, ok
}
