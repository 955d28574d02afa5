// Package config loads the settings shared by the kingdom binaries from the
// environment. Command-line flags default to these values.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-backed configuration of the kingdom binaries.
type Config struct {
	KingdomFile string `env:"KINGDOM_FILE" envDefault:"kingdoms.yaml"`
	Port        string `env:"KINGDOM_PORT" envDefault:"9000"`
	WebPort     int    `env:"KINGDOM_WEB_PORT" envDefault:"8080"`
	Seed        int64  `env:"KINGDOM_SEED" envDefault:"0"`
	MaxTurns    int    `env:"KINGDOM_MAX_TURNS" envDefault:"0"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxTurns < 0 {
		return Config{}, fmt.Errorf("KINGDOM_MAX_TURNS must not be negative, got %d", cfg.MaxTurns)
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

// Exitf prints an error to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
