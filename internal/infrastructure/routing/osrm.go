// Package routing computes driving routes against an OSRM server.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/telemetry"
)

const defaultTimeout = 10 * time.Second

// ErrNoRoute is returned when OSRM finds no route between the points.
var ErrNoRoute = errors.New("no route found")

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// OSRM is a RouteProvider backed by the OSRM HTTP API.
type OSRM struct {
	baseURL string
	client  *http.Client
}

// NewOSRM creates a client for the OSRM server at baseURL. Outbound requests
// are traced.
func NewOSRM(baseURL string, timeout time.Duration) *OSRM {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OSRM{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ComputeRoute requests the driving route from origin to destination.
func (o *OSRM) ComputeRoute(ctx context.Context, origin, destination domain.Coordinates) (*domain.Route, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "routing.ComputeRoute")
	defer span.End()

	// OSRM expects lon,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson",
		o.baseURL, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("osrm: build request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("osrm: request: %w", err)
	}
	defer resp.Body.Close()

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		span.SetStatus(codes.Error, "decode")
		return nil, fmt.Errorf("osrm: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || parsed.Code != "Ok" {
		if parsed.Code == "NoRoute" {
			return nil, ErrNoRoute
		}
		span.SetStatus(codes.Error, parsed.Code)
		return nil, fmt.Errorf("osrm: returned %d %s: %s", resp.StatusCode, parsed.Code, parsed.Message)
	}
	if len(parsed.Routes) == 0 {
		return nil, ErrNoRoute
	}

	best := parsed.Routes[0]
	route := &domain.Route{
		Origin:          origin,
		Destination:     destination,
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        make([]domain.Coordinates, 0, len(best.Geometry.Coordinates)),
	}
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		route.Geometry = append(route.Geometry, domain.Coordinates{Lat: pair[1], Lng: pair[0]})
	}

	span.SetAttributes(
		attribute.Float64("route.distance_m", route.DistanceMeters),
		attribute.Float64("route.duration_s", route.DurationSeconds),
	)
	return route, nil
}
