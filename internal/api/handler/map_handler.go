package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// MapHandler exposes the map view of a demo session.
type MapHandler struct {
	service ports.DemoService
}

func NewMapHandler(service ports.DemoService) *MapHandler {
	return &MapHandler{service: service}
}

// View handles GET /v1/demos/:id/map.
//
// @Summary      Get the map view
// @Tags         map
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  ports.MapViewState
// @Failure      404  {object}  map[string]string
// @Router       /v1/demos/{id}/map [get]
func (h *MapHandler) View(c echo.Context) error {
	view, err := h.service.MapView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Refresh handles POST /v1/demos/:id/map/refresh.
//
// @Summary      Redraw markers and route
// @Tags         map
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  ports.MapViewState
// @Failure      502  {object}  map[string]string
// @Router       /v1/demos/{id}/map/refresh [post]
func (h *MapHandler) Refresh(c echo.Context) error {
	view, err := h.service.RefreshMap(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ArmSelection handles PUT /v1/demos/:id/map/selection.
//
// @Summary      Choose which location the next click selects
// @Tags         map
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Session id"
// @Param        body  body      selectionRequest  true  "Role"
// @Success      200   {object}  ports.MapViewState
// @Failure      409   {object}  map[string]string
// @Router       /v1/demos/{id}/map/selection [put]
func (h *MapHandler) ArmSelection(c echo.Context) error {
	var req selectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.ArmSelection(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Click handles POST /v1/demos/:id/map/click.
//
// @Summary      Select a location by clicking the map
// @Tags         map
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Session id"
// @Param        body  body      pointRequest  true  "Clicked point"
// @Success      200   {object}  ports.MapViewState
// @Failure      409   {object}  map[string]string
// @Router       /v1/demos/{id}/map/click [post]
func (h *MapHandler) Click(c echo.Context) error {
	var req pointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.ClickMap(c.Request().Context(), c.Param("id"), req.coordinates())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Search handles GET /v1/demos/:id/places?q=.
//
// @Summary      Search places near the current view
// @Tags         map
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Param        q    query     string  true  "Free-text query"
// @Success      200  {object}  searchResponse
// @Failure      502  {object}  map[string]string
// @Router       /v1/demos/{id}/places [get]
func (h *MapHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	places, err := h.service.SearchPlaces(ctx, id, req.Query)
	if err != nil {
		return err
	}
	view, err := h.service.MapView(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{Places: places, Map: &view})
}
