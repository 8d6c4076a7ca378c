// Package config holds the env-driven server configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ServerConfig represents server configuration for the hubsite service.
// Content is loaded once at startup from SeedPath; PromoPath is optional
// and a missing or broken promo document never blocks startup.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	SeedPath  string `env:"SEED_PATH" env-default:"static/seed.json"`
	PromoPath string `env:"PROMO_PATH" env-default:"static/promo.json"`
	StaticDir string `env:"STATIC_DIR" env-default:"static"`

	// AllowedHosts is the virtual-host allow-list. Requests for other
	// hosts get the 404 page. localhost and 127.* loopback addresses are
	// always allowed.
	AllowedHosts []string `env:"ALLOWED_HOSTS" env-default:"localhost"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() (*ServerConfig, error) {
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.SeedPath == "" {
		return errors.New("seed path is required")
	}
	if c.Environment != "development" && c.Environment != "production" && c.Environment != "testing" {
		return fmt.Errorf("unknown environment: %s", c.Environment)
	}
	return nil
}
