// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the metrics HTTP listen address, e.g. ":9090".
	// Empty disables the endpoint.
	Addr string `koanf:"addr"`

	// PlayerCount sets the number of players the simulator generates.
	PlayerCount int `koanf:"player_count"`

	// ReportingInterval sets the streaming engine's buffer size and the
	// spacing of cutoff checkpoints. Must be positive.
	ReportingInterval int `koanf:"reporting_interval"`

	// Seed makes roster generation reproducible. Zero derives a seed
	// from the clock.
	Seed uint64 `koanf:"seed"`

	// MinLevel and MaxLevel bound generated player levels.
	MinLevel int `koanf:"min_level"`
	MaxLevel int `koanf:"max_level"`

	// StreamBuffer bounds the channel feeding the streaming engine.
	StreamBuffer int `koanf:"stream_buffer"`

	// GeneratorWorkers sets the number of roster generation goroutines.
	GeneratorWorkers int `koanf:"generator_workers"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:          "info",
		Addr:              ":9090",
		PlayerCount:       100_000,
		ReportingInterval: 1_000,
		Seed:              0,
		MinLevel:          1,
		MaxLevel:          10_000,
		StreamBuffer:      1_024,
		GeneratorWorkers:  runtime.NumCPU(),
	}
	return c
}
