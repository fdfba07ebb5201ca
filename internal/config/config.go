// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers a YAML file and PERFTRACK_ environment variables on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxSessions caps concurrently open analysis sessions.
	MaxSessions int `koanf:"max_sessions"`

	// SessionIdleTimeout closes sessions unused for this long. Zero disables expiry.
	SessionIdleTimeout time.Duration `koanf:"session_idle_timeout"`

	// SweepInterval is how often idle sessions are looked for.
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// MaxUploadBytes bounds the body of a week upload.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// RosterFile optionally replaces the built-in roster with a YAML file.
	RosterFile string `koanf:"roster_file"`

	// HTTP server timeouts.
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		MaxSessions:        64,
		SessionIdleTimeout: 2 * time.Hour,
		SweepInterval:      time.Minute,
		MaxUploadBytes:     1 << 20,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxSessions <= 0:
		return fmt.Errorf("%w: max_sessions must be positive, got %d", ErrInvalidConfig, c.MaxSessions)
	case c.SessionIdleTimeout < 0:
		return fmt.Errorf("%w: session_idle_timeout must not be negative", ErrInvalidConfig)
	case c.SweepInterval <= 0:
		return fmt.Errorf("%w: sweep_interval must be positive", ErrInvalidConfig)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: max_upload_bytes must be positive, got %d", ErrInvalidConfig, c.MaxUploadBytes)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
