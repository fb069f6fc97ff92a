package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config holds the full runtime configuration, loaded from the
	// environment with sane defaults for local development.
	Config struct {
		HTTP     HTTPConfig
		Database DatabaseConfig
		Auth     AuthConfig
		Log      LogConfig
		Seed     bool `env:"SEED_SAMPLE_DATA" env-default:"true"`
	}

	// HTTPConfig configures the HTTP listener.
	HTTPConfig struct {
		Host              string        `env:"HTTP_HOST" env-default:""`
		Port              int           `env:"HTTP_PORT" env-default:"8080"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
		ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	}

	// DatabaseConfig configures the SQLite store.
	DatabaseConfig struct {
		Path string `env:"DATABASE_PATH" env-default:"userdir.db"`
	}

	// AuthConfig holds the static credential pair guarding destructive
	// operations. Demo-grade on purpose; swap the verifier for anything
	// stronger without touching the handlers.
	AuthConfig struct {
		Username   string `env:"ADMIN_USERNAME" env-default:"admin"`
		Password   string `env:"ADMIN_PASSWORD" env-default:"admin123"`
		BcryptCost int    `env:"BCRYPT_COST" env-default:"10"`
	}

	// LogConfig configures structured logging.
	LogConfig struct {
		Level string `env:"LOG_LEVEL" env-default:"info"`
	}
)

// Addr returns the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.Auth.BcryptCost)
	}
	return cfg, nil
}
