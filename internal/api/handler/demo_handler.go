package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// DemoHandler handles HTTP requests for the demo progress simulation.
type DemoHandler struct {
	service ports.DemoService
}

func NewDemoHandler(service ports.DemoService) *DemoHandler {
	return &DemoHandler{service: service}
}

// bindAndValidate binds the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// Create handles POST /v1/demos.
//
// @Summary      Create a demo session
// @Tags         demos
// @Produce      json
// @Success      201  {object}  demoResponse
// @Router       /v1/demos [post]
func (h *DemoHandler) Create(c echo.Context) error {
	snap, err := h.service.Create(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDemoResponse(snap))
}

// Get handles GET /v1/demos/:id.
//
// @Summary      Get a demo session
// @Tags         demos
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  demoResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/demos/{id} [get]
func (h *DemoHandler) Get(c echo.Context) error {
	snap, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}

// Close handles DELETE /v1/demos/:id.
//
// @Summary      Close a demo session
// @Tags         demos
// @Param        id   path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/demos/{id} [delete]
func (h *DemoHandler) Close(c echo.Context) error {
	if err := h.service.Close(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SelectLocation handles PUT /v1/demos/:id/locations/:role.
//
// @Summary      Select the start or end location
// @Tags         demos
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Session id"
// @Param        role  path      string        true  "start or end"
// @Param        body  body      pointRequest  true  "Coordinates"
// @Success      200   {object}  demoResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/demos/{id}/locations/{role} [put]
func (h *DemoHandler) SelectLocation(c echo.Context) error {
	var req selectLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	snap, err := h.service.SelectLocation(c.Request().Context(), c.Param("id"), domain.Role(req.Role), req.coordinates())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}

// SetSpeed handles PUT /v1/demos/:id/speed.
//
// @Summary      Set the average speed
// @Tags         demos
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Session id"
// @Param        body  body      speedRequest  true  "Speed in km/h (10-120)"
// @Success      200   {object}  demoResponse
// @Failure      422   {object}  map[string]string
// @Router       /v1/demos/{id}/speed [put]
func (h *DemoHandler) SetSpeed(c echo.Context) error {
	var req speedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	snap, err := h.service.SetSpeed(c.Request().Context(), c.Param("id"), req.SpeedKph)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}

// Start handles POST /v1/demos/:id/start.
//
// @Summary      Start the simulation
// @Tags         demos
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  demoResponse
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/demos/{id}/start [post]
func (h *DemoHandler) Start(c echo.Context) error {
	snap, err := h.service.Start(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}

// Tick handles POST /v1/demos/:id/tick.
//
// @Summary      Advance the simulation by one step
// @Tags         demos
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  demoResponse
// @Failure      409  {object}  map[string]string
// @Router       /v1/demos/{id}/tick [post]
func (h *DemoHandler) Tick(c echo.Context) error {
	snap, err := h.service.Tick(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}

// Reset handles POST /v1/demos/:id/reset.
//
// @Summary      Reset the demo under a new tracking id
// @Tags         demos
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  demoResponse
// @Router       /v1/demos/{id}/reset [post]
func (h *DemoHandler) Reset(c echo.Context) error {
	snap, err := h.service.Reset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDemoResponse(snap))
}
