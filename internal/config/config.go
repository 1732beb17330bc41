// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the app needs at startup.
type Config struct {
	ListenAddr    string        `env:"LISTEN_ADDR,default=:8080"`
	ShopAPIURL    string        `env:"SHOP_API_URL,default=http://localhost:5200/api"`
	APITimeout    time.Duration `env:"SHOP_API_TIMEOUT,default=30s"`
	SessionSecret string        `env:"SESSION_SECRET,default=storefront-dev-secret"`
	Environment   string        `env:"ENVIRONMENT,default=development"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
