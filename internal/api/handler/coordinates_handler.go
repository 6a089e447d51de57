package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/geo"
)

// CoordinatesHandler exposes the stateless coordinate helpers.
type CoordinatesHandler struct{}

func NewCoordinatesHandler() *CoordinatesHandler {
	return &CoordinatesHandler{}
}

// Parse handles POST /v1/coordinates/parse.
//
// @Summary      Parse decimal or DMS coordinate text
// @Tags         coordinates
// @Accept       json
// @Produce      json
// @Param        body  body      parseRequest  true  "Text to parse"
// @Success      200   {object}  parseResponse
// @Router       /v1/coordinates/parse [post]
func (h *CoordinatesHandler) Parse(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	coords, ok := geo.Parse(req.Text)
	if !ok {
		return c.JSON(http.StatusOK, parseResponse{Valid: false})
	}
	return c.JSON(http.StatusOK, parseResponse{Valid: true, Coordinates: &coords})
}

// Links handles GET /v1/links?lat=&lng=.
//
// @Summary      Deep links into external map apps
// @Tags         coordinates
// @Produce      json
// @Param        lat  query     number  true  "Latitude"
// @Param        lng  query     number  true  "Longitude"
// @Success      200  {object}  domain.MapLinks
// @Failure      422  {object}  map[string]string
// @Router       /v1/links [get]
func (h *CoordinatesHandler) Links(c echo.Context) error {
	var req linksRequest
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lng", &req.Lng).
		BindError()
	if err != nil {
		return &domain.ValidationError{Field: "lat,lng", Reason: "both query parameters must be numbers"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, geo.Links(domain.Coordinates{Lat: req.Lat, Lng: req.Lng}))
}
