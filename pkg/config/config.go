// Package config loads the YAML runtime configuration: data location,
// solver limits, default solve parameters, server address, and telemetry.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks configuration that parsed but fails validation. Callers
// branch on it with errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full runtime configuration. Zero values are filled from
// Default before the file is applied, so a partial file is valid.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`

	Solver    Solver    `yaml:"solver"`
	Defaults  Defaults  `yaml:"defaults"`
	Server    Server    `yaml:"server"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Solver bounds a single optimization run.
type Solver struct {
	TimeLimitMs  int     `yaml:"time_limit_ms"`
	NoiseEpsilon float64 `yaml:"noise_epsilon"`
}

// TimeLimit returns the engine time limit as a duration.
func (s Solver) TimeLimit() time.Duration {
	return time.Duration(s.TimeLimitMs) * time.Millisecond
}

// Defaults supplies solve parameters when a request omits them.
type Defaults struct {
	CostWeight   float64 `yaml:"cost_weight"`
	TimeWeight   float64 `yaml:"time_weight"`
	RegionWeight float64 `yaml:"region_weight"`
	MinBatch     int64   `yaml:"min_batch"`
}

// Server configures the HTTP API listener.
type Server struct {
	Addr string `yaml:"addr"`
}

// Telemetry configures the solve-event collector. An empty DBPath disables
// collection entirely.
type Telemetry struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Solver: Solver{
			TimeLimitMs:  30000,
			NoiseEpsilon: 0.5,
		},
		Defaults: Defaults{
			CostWeight:   8,
			TimeWeight:   5,
			RegionWeight: 3,
			MinBatch:     500,
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations after loading.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn, or error, got %q", ErrInvalid, c.LogLevel)
	}
	if c.Solver.TimeLimitMs <= 0 {
		return fmt.Errorf("%w: solver time_limit_ms must be positive, got %d", ErrInvalid, c.Solver.TimeLimitMs)
	}
	if c.Solver.NoiseEpsilon < 0 {
		return fmt.Errorf("%w: solver noise_epsilon must be non-negative, got %g", ErrInvalid, c.Solver.NoiseEpsilon)
	}
	if c.Defaults.CostWeight < 0 || c.Defaults.TimeWeight < 0 || c.Defaults.RegionWeight < 0 {
		return fmt.Errorf("%w: default weights must be non-negative", ErrInvalid)
	}
	if c.Defaults.CostWeight+c.Defaults.TimeWeight+c.Defaults.RegionWeight <= 0 {
		return fmt.Errorf("%w: default weights must sum to a positive value", ErrInvalid)
	}
	if c.Defaults.MinBatch < 0 {
		return fmt.Errorf("%w: default min_batch must be non-negative, got %d", ErrInvalid, c.Defaults.MinBatch)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server addr is required", ErrInvalid)
	}
	return nil
}
