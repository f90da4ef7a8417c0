package config

import (
	"os"
	"strconv"

	"paygap/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	UIPort  string
	GinMode string
}

// DataConfig holds data source settings
type DataConfig struct {
	// SourceFile is the spreadsheet to load (.xlsx or .csv). When empty the
	// servers fall back to the testkit's generated dataset (demo mode).
	SourceFile string
	// TopN bounds the ranked compensation chart.
	TopN int
	// DetailN bounds the per-industry detail table.
	DetailN int
	// HistogramBins is the bin count for the pay-ratio histogram.
	HistogramBins int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			UIPort:  getEnvOrDefault("UI_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			SourceFile:    getEnvOrDefault("DATA_FILE", ""),
			TopN:          getEnvIntOrDefault("TOP_N", 20),
			DetailN:       getEnvIntOrDefault("DETAIL_N", 10),
			HistogramBins: getEnvIntOrDefault("HISTOGRAM_BINS", 20),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.TopN <= 0 {
		return errors.ConfigInvalid("TOP_N must be positive")
	}
	if config.Data.DetailN <= 0 {
		return errors.ConfigInvalid("DETAIL_N must be positive")
	}
	if config.Data.HistogramBins <= 0 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be positive")
	}
	if config.Data.SourceFile != "" {
		if _, err := os.Stat(config.Data.SourceFile); err != nil {
			return errors.ConfigInvalid("DATA_FILE does not exist: " + config.Data.SourceFile)
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
