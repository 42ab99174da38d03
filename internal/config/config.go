// Package config holds the environment-driven server settings.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is parsed from the environment (after godotenv has loaded any
// .env file in development).
type Config struct {
	Addr          string `env:"ADDR" envDefault:":5000"`
	DBPath        string `env:"DB_PATH" envDefault:"./data/digits.db"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	CookieName    string `env:"COOKIE_NAME" envDefault:"digits_session"`
	Production    bool   `env:"PRODUCTION" envDefault:"false"`

	// Playable digit-count range; the maps index covers it on startup.
	MinDigits int `env:"MIN_DIGITS" envDefault:"3"`
	MaxDigits int `env:"MAX_DIGITS" envDefault:"6"`

	// BuildMaps controls whether startup indexes any missing clue maps.
	// Turn it off when pointing at a prebuilt database file.
	BuildMaps bool `env:"BUILD_MAPS" envDefault:"true"`
}

// Load parses the environment into a Config and validates the digit range.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinDigits < 1 || cfg.MaxDigits < cfg.MinDigits || cfg.MaxDigits > 9 {
		return cfg, fmt.Errorf("invalid digit range %d..%d", cfg.MinDigits, cfg.MaxDigits)
	}
	return cfg, nil
}
