// SPDX-License-Identifier: MIT

// Package config loads solver settings for the rootfind command: defaults,
// then an optional YAML file, then ROOTFIND_* environment overrides, then
// struct-tag validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

// Environment variables read by Load.
const (
	EnvMethod         = "ROOTFIND_METHOD"
	EnvMaxEvaluations = "ROOTFIND_MAX_EVALUATIONS"
	EnvAbsolute       = "ROOTFIND_ABSOLUTE_ACCURACY"
	EnvRelative       = "ROOTFIND_RELATIVE_ACCURACY"
	EnvFunctionValue  = "ROOTFIND_FUNCTION_VALUE_ACCURACY"
	EnvLogLevel       = "ROOTFIND_LOG_LEVEL"
)

// Supported methods.
const (
	MethodBrent     = "brent"
	MethodLaguerre  = "laguerre"
	MethodBisection = "bisection"
)

// DefaultMaxEvaluations is the budget used when none is configured.
const DefaultMaxEvaluations = 1000

// Config is the top-level configuration.
type Config struct {
	// Method selects the real solver.
	Method string `yaml:"method" validate:"oneof=brent laguerre bisection"`

	// MaxEvaluations is the evaluation budget of each solve call.
	MaxEvaluations int `yaml:"max_evaluations" validate:"gt=0"`

	// Side is the AllowedSolution name ("any-side", "left-side", ...).
	Side string `yaml:"side" validate:"oneof=any-side left-side right-side below-side above-side"`

	// Accuracy is the tolerance contract.
	Accuracy AccuracyConfig `yaml:"accuracy"`

	// Bracket configures bracket.Search when an interval has to be expanded.
	Bracket BracketConfig `yaml:"bracket"`

	// Log configures the CLI logger.
	Log LogConfig `yaml:"log"`
}

// AccuracyConfig mirrors core.Accuracy with validation tags.
type AccuracyConfig struct {
	Absolute      float64 `yaml:"absolute" validate:"gt=0"`
	Relative      float64 `yaml:"relative" validate:"gt=0"`
	FunctionValue float64 `yaml:"function_value" validate:"gte=0"`
}

// BracketConfig holds the growth policy δ_{k+1} = R·δ_k + Q.
type BracketConfig struct {
	Q             float64 `yaml:"q" validate:"gt=0"`
	R             float64 `yaml:"r" validate:"gte=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
}

// LogConfig configures the slog handler of the CLI.
type LogConfig struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Method:         MethodBrent,
		MaxEvaluations: DefaultMaxEvaluations,
		Side:           core.AnySide.String(),
		Accuracy: AccuracyConfig{
			Absolute:      core.DefaultAbsoluteAccuracy,
			Relative:      core.DefaultRelativeAccuracy,
			FunctionValue: core.DefaultFunctionValueAccuracy,
		},
		Bracket: BracketConfig{
			Q:             bracket.DefaultQ,
			R:             bracket.DefaultR,
			MaxIterations: 100,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load applies defaults, then the YAML file at path (if non-empty and
// present), then environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnv overrides cfg from lookup (os.LookupEnv in production).
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMethod); ok {
		cfg.Method = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvMaxEvaluations); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxEvaluations, err)
		}
		cfg.MaxEvaluations = n
	}
	for _, fv := range []struct {
		name string
		dst  *float64
	}{
		{EnvAbsolute, &cfg.Accuracy.Absolute},
		{EnvRelative, &cfg.Accuracy.Relative},
		{EnvFunctionValue, &cfg.Accuracy.FunctionValue},
	} {
		v, ok := lookup(fv.name)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", fv.name, err)
		}
		*fv.dst = f
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs the struct-tag rules and the core accuracy checks.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	return c.CoreAccuracy().Validate()
}

// CoreAccuracy converts the accuracy section.
func (c Config) CoreAccuracy() core.Accuracy {
	return core.Accuracy{
		Absolute:      c.Accuracy.Absolute,
		Relative:      c.Accuracy.Relative,
		FunctionValue: c.Accuracy.FunctionValue,
	}
}

// AllowedSolution parses the side name.
func (c Config) AllowedSolution() (core.AllowedSolution, error) {
	return core.ParseAllowedSolution(c.Side)
}

// Marshal renders c as YAML (used by `rootfind config`).
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }
