package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Ephemeral tier backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMinio  = "minio"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	API      API     `envPrefix:"API_"`
	Session  Session `envPrefix:"SESSION_"`
	Redis    Redis   `envPrefix:"REDIS_"`
	Preview  Preview `envPrefix:"PREVIEW_"`
	Storage  Storage `envPrefix:"MINIO_"`
	Metrics  Metrics `envPrefix:"METRICS_"`
}

// API contains backend connection parameters.
type API struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Session contains session persistence parameters.
type Session struct {
	DurablePath      string        `env:"DURABLE_PATH,expand" envDefault:"${HOME}/.repairctl/session.db"`
	EphemeralBackend string        `env:"EPHEMERAL_BACKEND" envDefault:"memory"`
	LogoutTimeout    time.Duration `env:"LOGOUT_TIMEOUT" envDefault:"5s"`
}

// Redis contains parameters of the session-scoped ephemeral tier.
type Redis struct {
	URL string        `env:"URL" envDefault:"redis://localhost:6379/0"`
	TTL time.Duration `env:"TTL" envDefault:"12h"`
}

// Preview selects where image previews are kept.
type Preview struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

// Storage contains object storage parameters.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"repairctl-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"repairctl-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"repairctl-previews"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Metrics contains metrics export parameters. An empty PushURL disables pushing.
type Metrics struct {
	PushURL string `env:"PUSH_URL"`
	Job     string `env:"JOB" envDefault:"repairctl"`
}

// NewConfig loads configuration from REPAIRCTL_-prefixed environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "REPAIRCTL_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.EphemeralBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unsupported ephemeral session backend %q", c.Session.EphemeralBackend)
	}

	switch c.Preview.Backend {
	case BackendMemory, BackendMinio:
	default:
		return fmt.Errorf("unsupported preview backend %q", c.Preview.Backend)
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("api base url is required")
	}

	return nil
}
