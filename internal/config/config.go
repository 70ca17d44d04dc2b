// SPDX-License-Identifier: MIT

// Package config loads the matrixdemo settings from MATRIXDEMO_* environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. MATRIXDEMO_LOG_LEVEL.
const Prefix = "MATRIXDEMO"

// Config holds the demo configuration.
type Config struct {
	Log  LogConfig
	Demo DemoConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	NoColor    bool   `envconfig:"LOG_NO_COLOR" default:"false"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"15:04:05"`
}

// DemoConfig holds the value fed to the 1×1 inverse.
type DemoConfig struct {
	Value float64 `envconfig:"DEMO_VALUE" default:"69.420"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Demo); err != nil {
		return nil, fmt.Errorf("failed to load demo config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			NoColor:    false,
			TimeFormat: "15:04:05",
		},
		Demo: DemoConfig{
			Value: 69.420,
		},
	}
}
