package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/perftrack/internal/domain/athlete"
)

// Environment names.
const (
	EnvPrefix     = "PERFTRACK_"
	EnvConfigFile = "PERFTRACK_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if PERFTRACK_CONFIG is set
//  3. env (prefix PERFTRACK_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Map env keys like PERFTRACK_MAX_SESSIONS -> max_sessions (flat keys).
	// The delimiter is "." so underscores survive to match the koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	// PERFTRACK_CONFIG itself lands in the map as "config"; drop it.
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type rosterFile struct {
	Athletes []rosterEntry `koanf:"athletes"`
}

type rosterEntry struct {
	Name     string `koanf:"name"`
	Position string `koanf:"position"`
}

// LoadRoster reads a roster YAML file of the form
//
//	athletes:
//	  - name: "Ho, Bryant"
//	    position: Big Skill
//
// An empty path returns the built-in roster.
func LoadRoster(_ context.Context, path string) (*athlete.Roster, error) {
	if path == "" {
		return athlete.Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: roster %s: %w", ErrLoadConfig, path, err)
	}
	var rf rosterFile
	if err := k.UnmarshalWithConf("", &rf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: roster %s: %w", ErrLoadConfig, path, err)
	}

	entries := make([]athlete.Athlete, 0, len(rf.Athletes))
	for i, e := range rf.Athletes {
		pos, err := athlete.ParsePosition(e.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: roster entry %d (%q): %w", ErrInvalidConfig, i, e.Name, err)
		}
		entries = append(entries, athlete.Athlete{Name: e.Name, Position: pos})
	}
	r, err := athlete.NewRoster(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: roster %s: %w", ErrInvalidConfig, path, err)
	}
	return r, nil
}
