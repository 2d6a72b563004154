package token

import (
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds the environment-driven token settings.
type Config struct {
	// TTL bounds the blast radius of a leaked token; there is no
	// revocation list, so keep it short.
	TTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h"`
}

// LoadConfig reads token settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TTL <= 0 {
		return Config{}, ErrInvalidTTL
	}
	return cfg, nil
}
