package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the structgen process configuration.
type Config struct {
	OutputDir      string `env:"STRUCTGEN_OUTPUT_DIR"`
	DefaultVersion int    `env:"STRUCTGEN_DEFAULT_VERSION" envDefault:"13"`
	LogLevel       string `env:"STRUCTGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"STRUCTGEN_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DefaultVersion <= 0 {
		return Config{}, fmt.Errorf("STRUCTGEN_DEFAULT_VERSION must be positive, got %d", cfg.DefaultVersion)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
