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
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if LADDER_CONFIG is set
//  3. env (prefix LADDER_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("LADDER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: LADDER_PLAYER_COUNT, LADDER_REPORTING_INTERVAL, ...
	// Map env keys like LADDER_PLAYER_COUNT -> player_count (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("LADDER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "ladder_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.PlayerCount < 0 {
		return nil, fmt.Errorf("%w: player_count must not be negative", ErrInvalidConfig)
	}
	if cfg.ReportingInterval <= 0 {
		return nil, fmt.Errorf("%w: reporting_interval must be positive", ErrInvalidConfig)
	}
	if cfg.MinLevel > cfg.MaxLevel {
		return nil, fmt.Errorf("%w: min_level must not exceed max_level", ErrInvalidConfig)
	}
	return &cfg, nil
}
