package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Data   DataConfig
	App    AppConfig
	Logger LoggerConfig
}

// DataConfig holds flat-file storage configuration
type DataConfig struct {
	Dir string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Currency        string
	LogTransactions bool
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from environment variables with sensible defaults.
// A .env file in the working directory is read first, without overriding
// variables already present in the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		App: AppConfig{
			Currency:        getEnv("CURRENCY", "EUR"),
			LogTransactions: getEnvAsBool("LOG_TRANSACTIONS", true),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if len(c.App.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code, got %q", c.App.Currency)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
