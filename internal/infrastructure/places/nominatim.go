package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/telemetry"
)

const defaultTimeout = 10 * time.Second

type nominatimResult struct {
	DisplayName string   `json:"display_name"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	BoundingBox []string `json:"boundingbox"` // south, north, west, east
}

// Nominatim is a PlaceSearcher backed by an OpenStreetMap Nominatim server.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatim(baseURL, userAgent string, timeout time.Duration) *Nominatim {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SearchPlaces queries /search, preferring results within bounds.
func (n *Nominatim) SearchPlaces(ctx context.Context, query string, bounds *domain.Bounds) ([]domain.Place, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "places.SearchPlaces")
	defer span.End()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", strconv.Itoa(maxResults))
	if bounds != nil {
		// viewbox is x1,y1,x2,y2 (lon,lat); bounded=0 only biases results.
		params.Set("viewbox", fmt.Sprintf("%s,%s,%s,%s",
			ftoa(bounds.SouthWest.Lng), ftoa(bounds.NorthEast.Lat),
			ftoa(bounds.NorthEast.Lng), ftoa(bounds.SouthWest.Lat)))
		params.Set("bounded", "0")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("nominatim: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("nominatim: returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim: decode response: %w", err)
	}

	out := make([]domain.Place, 0, len(results))
	for _, r := range results {
		p := domain.Place{Name: r.DisplayName}
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat == nil && errLng == nil {
			p.Location = &domain.Coordinates{Lat: lat, Lng: lng}
		}
		p.Viewport = parseBoundingBox(r.BoundingBox)
		out = append(out, p)
	}
	return out, nil
}

func parseBoundingBox(box []string) *domain.Bounds {
	if len(box) != 4 {
		return nil
	}
	var v [4]float64
	for i, s := range box {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		v[i] = f
	}
	return &domain.Bounds{
		SouthWest: domain.Coordinates{Lat: v[0], Lng: v[2]},
		NorthEast: domain.Coordinates{Lat: v[1], Lng: v[3]},
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
