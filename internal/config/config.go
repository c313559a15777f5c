// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New(ctx) builds a Config populated with defaults.
// - Load(ctx) layers an optional YAML file and environment variables on top.
// - Failures wrap ErrLoadConfig or ErrInvalidConfig so callers can use errors.Is.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Failure kinds returned by Load and Validate.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// LandingPath is where GET / redirects to.
	LandingPath string `koanf:"landing_path"`

	// SeedFile optionally points at a YAML activity catalog. Empty means the built-in catalog.
	SeedFile string `koanf:"seed_file"`

	// ShutdownTimeoutMS bounds graceful HTTP shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`

	// SystemMetricsIntervalMS controls how often runtime gauges are refreshed.
	SystemMetricsIntervalMS int `koanf:"system_metrics_interval_ms"`
}

// New creates a Config holding the defaults. The context is reserved for
// future use and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                "info",
		LogFormat:               "text",
		Addr:                    ":8000",
		LandingPath:             "/static/index.html",
		SeedFile:                "",
		ShutdownTimeoutMS:       30_000,
		SystemMetricsIntervalMS: 10_000,
	}
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// SystemMetricsInterval returns SystemMetricsIntervalMS as a duration.
func (c *Config) SystemMetricsInterval() time.Duration {
	return time.Duration(c.SystemMetricsIntervalMS) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !strings.HasPrefix(c.LandingPath, "/"):
		return fmt.Errorf("%w: landing_path must start with /", ErrInvalidConfig)
	case c.ShutdownTimeoutMS <= 0:
		return fmt.Errorf("%w: shutdown_timeout_ms must be positive", ErrInvalidConfig)
	case c.SystemMetricsIntervalMS <= 0:
		return fmt.Errorf("%w: system_metrics_interval_ms must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
