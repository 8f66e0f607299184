package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPAddr          string `env:"HTTP_ADDR" envDefault:":8080"`
	PublicURL         string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultDifficulty int    `env:"DEFAULT_DIFFICULTY" envDefault:"4"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultDifficulty < 0 {
		return Config{}, fmt.Errorf("DEFAULT_DIFFICULTY must not be negative")
	}
	return cfg, nil
}
