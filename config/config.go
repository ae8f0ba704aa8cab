// Package config loads runtime settings from .env and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the terminal and web hosts.
type Config struct {
	// LogPath is the rotating diagnostic log. $VARS are expanded.
	LogPath string `env:"FOLIO_LOG_PATH" envDefault:"$HOME/.local/share/folio/debug.log"`
	// Location stands in for the browser location in the terminal host; a
	// "#test" fragment turns on the self-test.
	Location  string `env:"FOLIO_LOCATION" envDefault:"folio://portfolio/"`
	Addr      string `env:"FOLIO_ADDR" envDefault:":8080"`
	AltScreen bool   `env:"FOLIO_ALT_SCREEN" envDefault:"true"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	// Load .env file (ignore error if not found)
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogPath = os.ExpandEnv(cfg.LogPath)
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
