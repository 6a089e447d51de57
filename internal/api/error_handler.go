package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Error()
	}

	// Collaborator failures were already reported to the user as a
	// notification; the caller only learns which dependency failed.
	var ce *domain.CollaboratorError
	if errors.As(err, &ce) {
		log.Warn().
			Err(err).
			Str("collaborator", ce.Collaborator).
			Str("path", c.Path()).
			Msg("collaborator failure")
		return http.StatusBadGateway, ce.Collaborator + " unavailable"
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "demo session not found"
	case errors.Is(err, domain.ErrSessionActive):
		return http.StatusConflict, "demo is running; reset it first"
	case errors.Is(err, domain.ErrNoSelectionRole):
		return http.StatusConflict, "choose start or end before selecting on the map"
	case errors.Is(err, domain.ErrSharingInactive):
		return http.StatusConflict, "location sharing is not active"
	case errors.Is(err, domain.ErrTimerRunning):
		return http.StatusConflict, "demo advances on its own timer"
	case errors.Is(err, domain.ErrPushUnsupported):
		return http.StatusConflict, "this session's position source does not accept pushed positions"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
