package handler

import (
	"time"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

type pointRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

func (p pointRequest) coordinates() domain.Coordinates {
	return domain.Coordinates{Lat: *p.Lat, Lng: *p.Lng}
}

type selectLocationRequest struct {
	Role string `param:"role" validate:"required,oneof=start end"`
	pointRequest
}

type speedRequest struct {
	SpeedKph int `json:"speed_kph" validate:"required"`
}

type selectionRequest struct {
	Role string `json:"role" validate:"required,oneof=start end"`
}

type searchRequest struct {
	Query string `query:"q" validate:"required"`
}

type positionRequest struct {
	pointRequest
	SpeedKph *int      `json:"speed_kph" validate:"omitempty,gte=0"`
	Accuracy float64   `json:"accuracy"  validate:"gte=0"`
	At       time.Time `json:"at"`
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Valid       bool                `json:"valid"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
}

type linksRequest struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lng float64 `validate:"gte=-180,lte=180"`
}

type demoLinks struct {
	Self string `json:"self"`
	Map  string `json:"map"`
	WS   string `json:"ws"`
}

type demoResponse struct {
	domain.DemoSnapshot
	Links demoLinks `json:"_links"`
}

type searchResponse struct {
	Places []domain.Place      `json:"places"`
	Map    *ports.MapViewState `json:"map,omitempty"`
}

func toDemoResponse(s domain.DemoSnapshot) demoResponse {
	return demoResponse{
		DemoSnapshot: s,
		Links: demoLinks{
			Self: "/v1/demos/" + s.SessionID,
			Map:  "/v1/demos/" + s.SessionID + "/map",
			WS:   "/ws?session=" + s.SessionID,
		},
	}
}
