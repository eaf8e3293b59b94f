// Package config loads the service configuration from environment variables,
// reading a .env file first when one is present.
package config

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Search  SearchConfig
	Tracing TracingConfig
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
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig describes the running build. Version is stamped on every
// response and reported by /info.
type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"flightsearch-app"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	Version  string `env:"APP_VERSION" envDefault:"0.0.1"`
	CommitID string `env:"APP_COMMIT_ID" envDefault:"unknown"`
}

// SearchConfig holds flight search settings.
type SearchConfig struct {
	MaxResults int `env:"SEARCH_MAX_RESULTS" envDefault:"10"`
}

// TracingConfig selects the span exporter. "none" keeps spans in process,
// "disabled" turns tracing off entirely.
type TracingConfig struct {
	Exporter    string  `env:"TRACING_EXPORTER" envDefault:"none"`
	Endpoint    string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4317"`
	Insecure    bool    `env:"TRACING_INSECURE" envDefault:"true"`
	SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
// A missing .env file is not an error.
func Load() (*Config, error) {
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
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

var (
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats   = map[string]bool{"json": true, "console": true}
	validEnvs      = map[string]bool{"development": true, "staging": true, "production": true}
	validExporters = map[string]bool{"none": true, "disabled": true, "stdout": true, "otlp": true}
)

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("invalid %s: must be positive, got %s", t.name, t.value)
		}
	}

	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid LOG_LEVEL: must be one of debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid LOG_FORMAT: must be one of json, console; got %q", cfg.Logging.Format)
	}

	if cfg.App.Name == "" {
		return fmt.Errorf("invalid APP_NAME: must not be empty")
	}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("invalid APP_ENV: must be one of development, staging, production; got %q", cfg.App.Env)
	}
	if _, err := semver.NewVersion(cfg.App.Version); err != nil {
		return fmt.Errorf("invalid APP_VERSION %q: %w", cfg.App.Version, err)
	}

	if cfg.Search.MaxResults < 1 || cfg.Search.MaxResults > 100 {
		return fmt.Errorf("invalid SEARCH_MAX_RESULTS: must be between 1 and 100, got %d", cfg.Search.MaxResults)
	}

	if !validExporters[cfg.Tracing.Exporter] {
		return fmt.Errorf("invalid TRACING_EXPORTER: must be one of none, disabled, stdout, otlp; got %q", cfg.Tracing.Exporter)
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: must be between 0 and 1, got %v", cfg.Tracing.SampleRatio)
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

// Version returns the parsed application version. Load has already
// rejected versions that do not parse.
func (c *Config) Version() *semver.Version {
	v, err := semver.NewVersion(c.App.Version)
	if err != nil {
		return semver.MustParse("0.0.0")
	}
	return v
}
