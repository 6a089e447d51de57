package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// SharingHandler handles real-time location sharing.
type SharingHandler struct {
	service ports.DemoService
}

func NewSharingHandler(service ports.DemoService) *SharingHandler {
	return &SharingHandler{service: service}
}

// Start handles POST /v1/demos/:id/sharing.
//
// @Summary      Start sharing the device location
// @Tags         sharing
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  ports.MapViewState
// @Failure      502  {object}  map[string]string
// @Router       /v1/demos/{id}/sharing [post]
func (h *SharingHandler) Start(c echo.Context) error {
	view, err := h.service.StartSharing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Stop handles DELETE /v1/demos/:id/sharing.
//
// @Summary      Stop sharing the device location
// @Tags         sharing
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  ports.MapViewState
// @Failure      409  {object}  map[string]string
// @Router       /v1/demos/{id}/sharing [delete]
func (h *SharingHandler) Stop(c echo.Context) error {
	view, err := h.service.StopSharing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// PushPosition handles POST /v1/demos/:id/positions.
//
// @Summary      Push a device position fix
// @Tags         sharing
// @Accept       json
// @Param        id    path  string           true  "Session id"
// @Param        body  body  positionRequest  true  "Position fix"
// @Success      202
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/demos/{id}/positions [post]
func (h *SharingHandler) PushPosition(c echo.Context) error {
	var req positionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pos := domain.Position{
		Coordinates: req.coordinates(),
		SpeedKph:    req.SpeedKph,
		Accuracy:    req.Accuracy,
		At:          req.At,
	}
	if err := h.service.PushPosition(c.Request().Context(), c.Param("id"), pos); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}
