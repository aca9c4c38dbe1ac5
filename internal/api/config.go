package api

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds waitlist server settings, read from the environment.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `env:"RETRO_LISTEN_ADDR" envDefault:":8787"`

	// Promo is the launch-price label recorded with each signup.
	Promo string `env:"RETRO_WAITLIST_PROMO" envDefault:"39,90"`

	// Source tags where signups came from.
	Source string `env:"RETRO_WAITLIST_SOURCE" envDefault:"landing"`
}

// LoadConfig reads configuration from a .env file (when present) and the
// process environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
