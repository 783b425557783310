// Package config loads world and session settings from defaults, an optional
// YAML file and BARRENLAND_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWorldSize = 10
	DefaultRadius    = 4
	DefaultLogLevel  = "info"

	envPrefix = "BARRENLAND_"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`
	// WorldSize bounds the grid to WorldSize x WorldSize cells.
	WorldSize int `yaml:"world_size"`
	// Radius is how far around the player cells are generated after each move.
	Radius   int    `yaml:"radius"`
	LogLevel string `yaml:"log_level"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig controls OTLP trace export.
type TelemetryConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Endpoint string            `yaml:"endpoint"`
	Headers  map[string]string `yaml:"headers"`
}

// Default returns the settings the original game shipped with.
func Default() Config {
	return Config{
		WorldSize: DefaultWorldSize,
		Radius:    DefaultRadius,
		LogLevel:  DefaultLogLevel,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate rejects settings the world cannot be built with.
func (c Config) Validate() error {
	if c.WorldSize <= 0 {
		return fmt.Errorf("world_size must be positive, got %d", c.WorldSize)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius must not be negative, got %d", c.Radius)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookupEnv("WORLD_SIZE"); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORLD_SIZE: %w", envPrefix, err)
		}
		c.WorldSize = size
	}
	if v, ok := lookupEnv("RADIUS"); ok {
		radius, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sRADIUS: %w", envPrefix, err)
		}
		c.Radius = radius
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("TELEMETRY_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTELEMETRY_ENABLED: %w", envPrefix, err)
		}
		c.Telemetry.Enabled = enabled
	}
	if v, ok := lookupEnv("OTLP_ENDPOINT"); ok {
		c.Telemetry.Endpoint = v
	}
	// Honeycomb-style key; expands into the OTLP headers
	if v, ok := lookupEnv("HONEYCOMB_API_KEY"); ok {
		if c.Telemetry.Headers == nil {
			c.Telemetry.Headers = make(map[string]string)
		}
		c.Telemetry.Headers["x-honeycomb-team"] = v
		dataset, _ := lookupEnv("HONEYCOMB_DATASET")
		if dataset == "" {
			dataset = "barrenland"
		}
		c.Telemetry.Headers["x-honeycomb-dataset"] = dataset
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
