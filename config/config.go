package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	LogLevel     string
	LogFormat    string
	ChartEnabled bool
	ChartFile    string
	ChartWidth   float64
	ChartHeight  float64
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ChartFile: getEnv("CHART_FILE", "amortization.png"),
	}

	var err error
	if cfg.ChartEnabled, err = strconv.ParseBool(getEnv("CHART_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("CHART_ENABLED: %w", err)
	}
	if cfg.ChartWidth, err = strconv.ParseFloat(getEnv("CHART_WIDTH", "8"), 64); err != nil {
		return nil, fmt.Errorf("CHART_WIDTH: %w", err)
	}
	if cfg.ChartHeight, err = strconv.ParseFloat(getEnv("CHART_HEIGHT", "4"), 64); err != nil {
		return nil, fmt.Errorf("CHART_HEIGHT: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.ChartEnabled {
		if cfg.ChartFile == "" {
			return nil, fmt.Errorf("CHART_FILE is required when CHART_ENABLED is set")
		}
		if cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0 {
			return nil, fmt.Errorf("CHART_WIDTH and CHART_HEIGHT must be positive")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
