// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN. Empty runs the server against the
	// built-in in-memory development dataset instead of a database.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// ShutdownTimeout is the graceful shutdown budget (e.g. "10s").
	ShutdownTimeout string `mapstructure:"SHUTDOWN_TIMEOUT"`
	// UserCacheSize is the maximum number of entries in the user profile
	// cache; 0 disables the cache.
	UserCacheSize int `mapstructure:"USER_CACHE_SIZE"`
	// UserCacheTTL is the user cache entry lifetime (e.g. "30s").
	UserCacheTTL string `mapstructure:"USER_CACHE_TTL"`
	// OTLPEndpoint is the OTLP gRPC collector endpoint (e.g.
	// http://localhost:4317); empty disables telemetry export.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext export to https endpoints (standard
	// OTEL_EXPORTER_OTLP_INSECURE behavior).
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`
	// Env is the application environment (e.g. "development", "production");
	// selects the log encoder.
	Env string `mapstructure:"APP_ENV"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("USER_CACHE_SIZE", 1024)
	v.SetDefault("USER_CACHE_TTL", "30s")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.UserCacheSize < 0 {
		return nil, errors.New("config: USER_CACHE_SIZE must not be negative")
	}

	return &cfg, nil
}

// ShutdownTimeoutDuration parses ShutdownTimeout as a time.Duration. Returns 10s if unset or invalid.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// CacheTTL parses UserCacheTTL as a time.Duration. Returns 30s if unset or invalid.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.UserCacheTTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
