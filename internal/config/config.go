// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"4000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	SecretKey    string `env:"SECRET_KEY"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"true"`

	DatabasePath string `env:"DB_PATH" envDefault:"data/sondera.db"`

	// ProgressBackend selects the snapshot store: sqlite, redis or memory.
	ProgressBackend string `env:"PROGRESS_BACKEND" envDefault:"sqlite"`
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix     string `env:"REDIS_PREFIX" envDefault:"sondera"`

	// Empty URLs disable the corresponding collaborator.
	ProfileServiceURL string `env:"PROFILE_SERVICE_URL" envDefault:""`
	RegistrationURL   string `env:"REGISTRATION_URL" envDefault:""`

	EnforceSlotOrder bool `env:"ENFORCE_SLOT_ORDER" envDefault:"false"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config. A missing .env file is fine;
// a present but unreadable one is not reported either, matching dotenv
// convention.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return errors.New("SECRET_KEY is required")
	}
	switch cfg.ProgressBackend {
	case "sqlite", "redis", "memory":
	default:
		return errors.New("PROGRESS_BACKEND must be sqlite, redis or memory")
	}
	return nil
}

func (cfg Config) IsDevelopment() bool {
	return cfg.Environment == "development"
}

func (cfg Config) IsProduction() bool {
	return cfg.Environment == "production"
}
