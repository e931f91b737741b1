package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/ProtonMail/imapclient/limits"
)

// config is read from an optional TOML file; every field has a default.
type config struct {
	Limits struct {
		MaxLiteralSize    uint32 `toml:"max_literal_size"`
		MaxResponseLength int    `toml:"max_response_length"`
	} `toml:"limits"`

	Sink struct {
		Capacity int `toml:"capacity"`
	} `toml:"sink"`

	Metrics struct {
		// Listen is the address Prometheus metrics are served on. Metrics are off if empty.
		Listen string `toml:"listen"`
	} `toml:"metrics"`
}

func defaultConfig() *config {
	defaults := limits.DefaultResponseLimits()

	cfg := &config{}

	cfg.Limits.MaxLiteralSize = defaults.MaxLiteralSize()
	cfg.Limits.MaxResponseLength = defaults.MaxResponseLength()
	cfg.Sink.Capacity = 64

	return cfg
}

func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	if cfg.Sink.Capacity < 0 {
		return nil, fmt.Errorf("sink capacity must not be negative, got %v", cfg.Sink.Capacity)
	}

	return cfg, nil
}

func (cfg *config) responseLimits() limits.Response {
	return limits.NewResponseLimits(cfg.Limits.MaxLiteralSize, cfg.Limits.MaxResponseLength)
}
