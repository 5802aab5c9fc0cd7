// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Catalog CatalogConfig
	Pricing PricingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// CatalogConfig holds reference catalog settings.
type CatalogConfig struct {
	// Path to a catalog YAML file. Empty uses the embedded catalog.
	Path string `env:"CATALOG_PATH"`

	// Timezone in which the travel-month horizon starts.
	Timezone string `env:"CATALOG_TIMEZONE" envDefault:"America/New_York"`
	// LoadAttempts is how many times a missing catalog file is read before
	// startup fails.
	LoadAttempts int `env:"CATALOG_LOAD_ATTEMPTS" envDefault:"5"`
	// LoadBackoff is the wait before the first re-read; it doubles after each.
	LoadBackoff time.Duration `env:"CATALOG_LOAD_BACKOFF" envDefault:"500ms"`
}

// PricingConfig holds the flat rates applied by the estimator.
type PricingConfig struct {
	TaxRate              float64 `env:"PRICING_TAX_RATE" envDefault:"0.18"`
	GroupDiscountRate    float64 `env:"PRICING_GROUP_DISCOUNT_RATE" envDefault:"0.10"`
	GroupMinPassengers   int     `env:"PRICING_GROUP_MIN_PASSENGERS" envDefault:"4"`
	ResidentDiscountRate float64 `env:"PRICING_RESIDENT_DISCOUNT_RATE" envDefault:"0.05"`
}

// Rates converts the pricing settings into estimator rates.
func (p PricingConfig) Rates() domain.Rates {
	return domain.Rates{
		TaxRate:              p.TaxRate,
		GroupDiscountRate:    p.GroupDiscountRate,
		GroupMinPassengers:   p.GroupMinPassengers,
		ResidentDiscountRate: p.ResidentDiscountRate,
	}
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := timeutil.GetLocation(cfg.Catalog.Timezone); err != nil {
		return fmt.Errorf("CATALOG_TIMEZONE is not a known time zone: %q", cfg.Catalog.Timezone)
	}
	if cfg.Catalog.LoadAttempts < 1 {
		return fmt.Errorf("CATALOG_LOAD_ATTEMPTS must be at least 1, got %d", cfg.Catalog.LoadAttempts)
	}
	if cfg.Catalog.LoadBackoff < 0 {
		return fmt.Errorf("CATALOG_LOAD_BACKOFF must not be negative")
	}

	return validatePricing(cfg.Pricing)
}

// validatePricing requires every rate to be a fraction in [0, 1]. NaN fails
// every comparison, so it is rejected explicitly.
func validatePricing(p PricingConfig) error {
	rates := []struct {
		name  string
		value float64
	}{
		{"PRICING_TAX_RATE", p.TaxRate},
		{"PRICING_GROUP_DISCOUNT_RATE", p.GroupDiscountRate},
		{"PRICING_RESIDENT_DISCOUNT_RATE", p.ResidentDiscountRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", r.name, r.value)
		}
	}

	if p.GroupMinPassengers < 1 {
		return fmt.Errorf("PRICING_GROUP_MIN_PASSENGERS must be at least 1, got %d", p.GroupMinPassengers)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
