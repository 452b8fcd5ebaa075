// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gogyro/convection"
	"github.com/alexiusacademia/gogyro/gyro"
	"github.com/alexiusacademia/gogyro/internal/logger"
	"github.com/alexiusacademia/gogyro/photometry"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the defaults every command falls back to when a flag is not
// given explicitly.
type Config struct {
	Logg     float64 `yaml:"logg"`
	FeH      float64 `yaml:"feh"`
	Relation string  `yaml:"relation"`
	TauModel string  `yaml:"tau_model"`
	Log      Log     `yaml:"log"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns solar-like defaults.
func Default() Config {
	return Config{
		Logg:     photometry.DefaultLogg,
		FeH:      photometry.DefaultFeH,
		Relation: gyro.DefaultRelation,
		TauModel: convection.DefaultModel,
		Log:      Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w: %v", path, ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that named relations and models exist and that logging
// settings are recognised.
func (c Config) Validate() error {
	if _, err := gyro.LookupRelation(c.Relation); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := convection.LookupModel(c.TauModel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Params returns the photometric parameters carried by the config.
func (c Config) Params() photometry.Params {
	return photometry.Params{Logg: c.Logg, FeH: c.FeH}
}
