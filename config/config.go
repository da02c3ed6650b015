package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	LogLevel  string
	LogDir    string
	LogPrefix string

	// Warnings collected while loading, logged once the logger exists.
	Warnings []string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	var warnings []string

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		warnings = append(warnings, fmt.Sprintf("could not read .env file: %v", err))
	}

	AppConfig = &Config{
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogDir:    getEnv("LOG_DIR", ""),
		LogPrefix: getEnv("LOG_PREFIX", "results"),
		Warnings:  warnings,
	}

	if !validLevels[AppConfig.LogLevel] {
		AppConfig.Warnings = append(AppConfig.Warnings, fmt.Sprintf("unknown LOG_LEVEL %q, falling back to warn", AppConfig.LogLevel))
		AppConfig.LogLevel = "warn"
	}

	return AppConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
