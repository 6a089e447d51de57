package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/99minutos/tracking-demo/docs"
	"github.com/99minutos/tracking-demo/internal/api"
	"github.com/99minutos/tracking-demo/internal/api/handler"
	"github.com/99minutos/tracking-demo/internal/api/ws"
	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/core/service"
	"github.com/99minutos/tracking-demo/internal/infrastructure/config"
	"github.com/99minutos/tracking-demo/internal/infrastructure/db/redis"
	"github.com/99minutos/tracking-demo/internal/infrastructure/places"
	"github.com/99minutos/tracking-demo/internal/infrastructure/position"
	"github.com/99minutos/tracking-demo/internal/infrastructure/queue"
	"github.com/99minutos/tracking-demo/internal/infrastructure/routing"
	"github.com/99minutos/tracking-demo/internal/telemetry"
	"github.com/99minutos/tracking-demo/pkg/logger"
)

const version = "1.0.0"

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go,json --exclude _examples

// @title        Tracking Demo API
// @version      1.0
// @description  Delivery tracking demo: progress simulation, map view and location sharing.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tracking-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: cfg.Tracing.ServiceName,
		Version: version,
	})

	if cfg.Tracing.Enabled {
		shutdown, err := telemetry.InitTracer(cfg.Tracing.ServiceName, version, os.Stdout)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				log.Error().Err(err).Msg("tracer shutdown failed")
			}
		}()
	}

	checks := map[string]handler.Check{}
	var sinks []queue.Sink
	sinks = append(sinks, queue.LogSink(log))

	if cfg.Redis.Enabled {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:       cfg.Redis.Addr,
			DB:         cfg.Redis.DB,
			Timeout:    cfg.Redis.Timeout,
			ClientName: cfg.Tracing.ServiceName,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		sinks = append(sinks, redis.NewPublisher(client))
		checks["redis"] = func(ctx context.Context) error {
			return redis.Ping(ctx, client, cfg.Redis.Timeout)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis notification fan-out enabled")
	}

	searcher, err := newPlaceSearcher(cfg.Places)
	if err != nil {
		return err
	}
	sources, err := position.NewFactory(cfg.Position.Source, cfg.Position.SimInterval)
	if err != nil {
		return err
	}

	var (
		dispatcher *queue.Dispatcher
		hub        *ws.Hub
	)
	registry := service.NewRegistry(service.RegistryOptions{
		TickInterval: cfg.Demo.TickInterval,
		MapCenter:    domain.Coordinates{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng},
		MapZoom:      cfg.Map.Zoom,
		Routes:       routing.NewOSRM(cfg.Routing.OSRMBaseURL, cfg.Routing.Timeout),
		Places:       searcher,
		Sources:      sources,
		SourceLabel:  cfg.Position.Source,
		Notifier: ports.NotifierFunc(func(ctx context.Context, n domain.Notification) {
			dispatcher.Notify(ctx, n)
		}),
		OnClose: func(sessionID string) { hub.Disconnect(sessionID) },
		Logger:  log,
	})
	defer registry.CloseAll()

	hub = ws.NewHub(registry, cfg.AllowedOrigins, log)
	defer hub.Close()

	dispatcher = queue.NewDispatcher(cfg.Notify.Workers, log, append(sinks, hub)...)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Service: registry,
		Hub:     hub,
		Checks:  checks,
		Logger:  log,
	})

	var h http.Handler = e
	if cfg.Tracing.Enabled {
		h = otelhttp.NewHandler(e, cfg.Tracing.ServiceName)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
	return nil
}

func newPlaceSearcher(cfg config.PlacesConfig) (ports.PlaceSearcher, error) {
	switch cfg.Provider {
	case "nominatim":
		return places.NewNominatim(cfg.NominatimURL, cfg.UserAgent, cfg.Timeout), nil
	default:
		g, err := places.LoadGazetteer(cfg.GazetteerPath)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
