package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	PageCacheTTL   time.Duration `env:"PAGE_CACHE_TTL" envDefault:"60m"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"500"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port == "" {
		return cfg, fmt.Errorf("PORT must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return cfg, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.PageCacheTTL <= 0 {
		return cfg, fmt.Errorf("PAGE_CACHE_TTL must be positive, got %s", cfg.PageCacheTTL)
	}
	if cfg.RequestTimeout <= 0 {
		return cfg, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
