// SPDX-License-Identifier: MIT

// Package config loads the cellmul command configuration from YAML.
//
// Every field is optional; Validate fills defaults and rejects values the
// engine would refuse, so a loaded Config is always usable.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/cellmul/engine"
	"github.com/katalvlaran/cellmul/matrix"
	"github.com/katalvlaran/cellmul/sched"
	"gopkg.in/yaml.v3"
)

// ErrInvalid classifies every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete command configuration.
type Config struct {
	Seed    *int64        `yaml:"seed"`   // nil → seeded from the clock
	Dims    Range         `yaml:"dims"`   // random operand dimensions
	Values  Range         `yaml:"values"` // random operand values
	Engine  EngineConfig  `yaml:"engine"`
	Profile ProfileConfig `yaml:"profile"`
	Log     LogConfig     `yaml:"log"`
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// EngineConfig selects the worker layout.
type EngineConfig struct {
	Strategy        string `yaml:"strategy"`         // pool, per-cell
	Workers         int    `yaml:"workers"`          // 0 → GOMAXPROCS
	ExclusiveWrites *bool  `yaml:"exclusive_writes"` // nil → true
}

// ProfileConfig describes the worker scheduling profile.
type ProfileConfig struct {
	Realtime   bool   `yaml:"realtime"`    // round-robin at max priority; overrides the fields below
	Policy     string `yaml:"policy"`      // other, fifo, rr
	Priority   int    `yaml:"priority"`    // -1 → maximum for the policy
	Inherit    string `yaml:"inherit"`     // inherit, explicit
	BestEffort bool   `yaml:"best_effort"` // log refused profiles instead of failing
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	_ = Validate(cfg)

	return cfg
}

// Load reads and validates a YAML configuration file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults in place and checks every field.
func Validate(cfg *Config) error {
	if cfg.Dims == (Range{}) {
		cfg.Dims = Range{Min: matrix.DefaultMinDim, Max: matrix.DefaultMaxDim}
	}
	if cfg.Values == (Range{}) {
		cfg.Values = Range{Min: matrix.DefaultMinValue, Max: matrix.DefaultMaxValue}
	}
	if cfg.Engine.Strategy == "" {
		cfg.Engine.Strategy = engine.DefaultStrategy.String()
	}
	if cfg.Engine.ExclusiveWrites == nil {
		on := engine.DefaultExclusiveWrites
		cfg.Engine.ExclusiveWrites = &on
	}
	if cfg.Profile.Policy == "" {
		cfg.Profile.Policy = "other"
	}
	if cfg.Profile.Inherit == "" {
		cfg.Profile.Inherit = sched.InheritFromCreator.String()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	switch {
	case cfg.Dims.Min < 1 || cfg.Dims.Min > cfg.Dims.Max:
		return fmt.Errorf("%w: dims [%d,%d] must satisfy 1 <= min <= max", ErrInvalid, cfg.Dims.Min, cfg.Dims.Max)
	case cfg.Values.Min > cfg.Values.Max:
		return fmt.Errorf("%w: values [%d,%d] are inverted", ErrInvalid, cfg.Values.Min, cfg.Values.Max)
	case cfg.Engine.Workers < 0:
		return fmt.Errorf("%w: engine.workers cannot be negative (%d)", ErrInvalid, cfg.Engine.Workers)
	}
	if _, err := engine.ParseStrategy(cfg.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: engine.strategy: %v", ErrInvalid, err)
	}
	if _, err := sched.ParsePolicy(cfg.Profile.Policy); err != nil {
		return fmt.Errorf("%w: profile.policy: %v", ErrInvalid, err)
	}
	if _, err := parseInherit(cfg.Profile.Inherit); err != nil {
		return fmt.Errorf("%w: profile.inherit: %v", ErrInvalid, err)
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, cfg.Log.Format)
	}

	return nil
}

// Strategy returns the validated engine strategy.
func (c *Config) Strategy() engine.Strategy {
	s, _ := engine.ParseStrategy(c.Engine.Strategy)

	return s
}

// SchedProfile builds the scheduling profile; configuration step failures
// are returned as *sched.ConfigError.
func (c *Config) SchedProfile() (sched.Profile, error) {
	if c.Profile.Realtime {
		return sched.Realtime()
	}
	policy, err := sched.ParsePolicy(c.Profile.Policy)
	if err != nil {
		return sched.Profile{}, err
	}
	inherit, err := parseInherit(c.Profile.Inherit)
	if err != nil {
		return sched.Profile{}, err
	}

	return sched.NewProfile(
		sched.WithPolicy(policy),
		sched.WithPriority(c.Profile.Priority),
		sched.WithInheritance(inherit),
	)
}

// LogLevel returns the validated slog level.
func (c *Config) LogLevel() slog.Level {
	l, _ := parseLevel(c.Log.Level)

	return l
}

func parseInherit(s string) (sched.Inheritance, error) {
	switch s {
	case "inherit":
		return sched.InheritFromCreator, nil
	case "explicit":
		return sched.Explicit, nil
	default:
		return sched.InheritFromCreator, fmt.Errorf("unknown inheritance %q", s)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))

	return l, err
}
