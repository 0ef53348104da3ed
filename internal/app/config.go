package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	CSRFSecret string `envconfig:"CSRF_SECRET" required:"true"`

	// DashboardPasswordHash is the bcrypt hash of the shared dashboard password.
	DashboardPasswordHash string `envconfig:"DASHBOARD_PASSWORD_HASH" required:"true"`
	LoginRateLimit        int    `envconfig:"LOGIN_RATE_LIMIT" default:"10"`

	RedisAddr  string        `envconfig:"REDIS_ADDR"`
	CacheTTL   time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	WarmupCron string        `envconfig:"WARMUP_CRON" default:"@every 10m"`

	CohortEarlier string `envconfig:"COHORT_EARLIER" default:"ACC-2025-Spring"`
	CohortLater   string `envconfig:"COHORT_LATER" default:"ACC-2025-Fall"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}
	if cfg.CSRFSecret == "" {
		return nil, errors.New("csrf secret must be provided")
	}
	if cfg.DashboardPasswordHash == "" {
		return nil, errors.New("dashboard password hash must be provided")
	}
	if cfg.CohortEarlier == cfg.CohortLater {
		return nil, errors.New("cohort comparison needs two distinct cycles")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// CacheEnabled reports whether a redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c != nil && c.RedisAddr != ""
}
