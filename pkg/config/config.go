// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Places        PlacesConfig
	Gemini        GeminiConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port               string
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DatabaseConfig struct {
	URL string
}

// Enabled reports whether a database was configured. Without one the
// service keeps user state in memory.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

type PlacesConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	LogLevel       string
}

// Load reads configuration from environment variables, applying defaults
// for everything optional.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			RateLimitPerSecond: 0,
			RateLimitBurst:     0,
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Places: PlacesConfig{
			APIKey: getEnv("PLACES_API_KEY", os.Getenv("API_KEY")),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnv("METRICS_ENABLED", "true") == "true",
			LogLevel:       getEnv("LOG_LEVEL", "info"),
		},
	}

	var err error
	if cfg.Server.RateLimitPerSecond, err = getEnvInt("RATE_LIMIT_PER_SECOND", 50); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
