package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/tracking-demo/internal/api/handler"
	"github.com/99minutos/tracking-demo/internal/api/ws"
	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Service ports.DemoService
	Hub     *ws.Hub
	// Checks are run by the readiness endpoint, keyed by dependency name.
	Checks map[string]handler.Check
	Logger zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. Defaults to the
	// global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))

	// --- Handlers ---
	demoHandler := handler.NewDemoHandler(deps.Service)
	mapHandler := handler.NewMapHandler(deps.Service)
	sharingHandler := handler.NewSharingHandler(deps.Service)
	coordinatesHandler := handler.NewCoordinatesHandler()

	// --- Demo sessions ---
	v1 := e.Group("/v1")
	demos := v1.Group("/demos")
	demos.POST("", demoHandler.Create)
	demos.GET("/:id", demoHandler.Get)
	demos.DELETE("/:id", demoHandler.Close)
	demos.PUT("/:id/locations/:role", demoHandler.SelectLocation)
	demos.PUT("/:id/speed", demoHandler.SetSpeed)
	demos.POST("/:id/start", demoHandler.Start)
	demos.POST("/:id/tick", demoHandler.Tick)
	demos.POST("/:id/reset", demoHandler.Reset)

	// --- Map view ---
	demos.GET("/:id/map", mapHandler.View)
	demos.POST("/:id/map/refresh", mapHandler.Refresh)
	demos.PUT("/:id/map/selection", mapHandler.ArmSelection)
	demos.POST("/:id/map/click", mapHandler.Click)
	demos.GET("/:id/places", mapHandler.Search)

	// --- Location sharing ---
	demos.POST("/:id/sharing", sharingHandler.Start)
	demos.DELETE("/:id/sharing", sharingHandler.Stop)
	demos.POST("/:id/positions", sharingHandler.PushPosition)

	// --- Stateless helpers ---
	v1.POST("/coordinates/parse", coordinatesHandler.Parse)
	v1.GET("/links", coordinatesHandler.Links)

	if deps.Hub != nil {
		e.GET("/ws", deps.Hub.Serve)
	}

	// --- Health ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case domain.IsValidation(v.Error):
				ev = log.Warn().Err(v.Error)
			case v.Error != nil || v.Status >= 500:
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "tracking_demo"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
