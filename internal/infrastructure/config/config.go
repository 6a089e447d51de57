package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL, default=info"        validate:"oneof=trace debug info warn warning error"`

	// AllowedOrigins lists the browser origins accepted on /ws ("*" for any).
	AllowedOrigins []string `env:"WS_ALLOWED_ORIGINS, default=*"`

	Demo     DemoConfig
	Map      MapConfig
	Routing  RoutingConfig
	Places   PlacesConfig
	Position PositionConfig
	Notify   NotifyConfig
	Redis    RedisConfig
	Tracing  TracingConfig
}

type DemoConfig struct {
	// TickInterval of zero disables the simulation timer (manual ticks only).
	TickInterval time.Duration `env:"DEMO_TICK_INTERVAL, default=1s" validate:"gte=0"`
}

type MapConfig struct {
	CenterLat float64 `env:"MAP_CENTER_LAT, default=9.7489"  validate:"gte=-90,lte=90"`
	CenterLng float64 `env:"MAP_CENTER_LNG, default=-83.7534" validate:"gte=-180,lte=180"`
	Zoom      int     `env:"MAP_ZOOM,       default=10"       validate:"gte=1,lte=21"`
}

type RoutingConfig struct {
	OSRMBaseURL string        `env:"OSRM_BASE_URL, default=https://router.project-osrm.org" validate:"required,url"`
	Timeout     time.Duration `env:"ROUTING_TIMEOUT, default=10s"                            validate:"gt=0"`
}

type PlacesConfig struct {
	Provider      string        `env:"PLACES_PROVIDER, default=gazetteer" validate:"oneof=gazetteer nominatim"`
	NominatimURL  string        `env:"NOMINATIM_URL,   default=https://nominatim.openstreetmap.org" validate:"omitempty,url"`
	GazetteerPath string        `env:"GAZETTEER_PATH,  default=configs/gazetteer.yaml"              validate:"required_if=Provider gazetteer"`
	UserAgent     string        `env:"PLACES_USER_AGENT, default=tracking-demo/1.0"`
	Timeout       time.Duration `env:"PLACES_TIMEOUT,  default=10s" validate:"gt=0"`
}

type PositionConfig struct {
	Source      string        `env:"POSITION_SOURCE, default=simulated" validate:"oneof=simulated device"`
	SimInterval time.Duration `env:"SIM_INTERVAL,    default=5s"        validate:"gt=0"`
}

type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4" validate:"gte=1"`
}

type RedisConfig struct {
	Enabled bool          `env:"REDIS_ENABLED, default=false"`
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379" validate:"required_if=Enabled true"`
	DB      int           `env:"REDIS_DB,      default=0"              validate:"gte=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"             validate:"gt=0"`
}

type TracingConfig struct {
	Enabled     bool   `env:"TRACING_ENABLED, default=false"`
	ServiceName string `env:"OTEL_SERVICE_NAME, default=tracking-demo"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment. A .env file in the working
// directory, when present, is loaded first without overriding variables that
// are already set.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return Process(ctx, envconfig.OsLookuper())
}

// Process builds and validates a Config from lookuper.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}
