package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_DIR", "")
	t.Setenv("LOG_PREFIX", "")

	cfg := LoadConfig()

	assert.Same(t, AppConfig, cfg)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogDir)
	assert.Equal(t, "results", cfg.LogPrefix)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_DIR", "/tmp/results-logs")
	t.Setenv("LOG_PREFIX", "session")

	cfg := LoadConfig()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/results-logs", cfg.LogDir)
	assert.Equal(t, "session", cfg.LogPrefix)
}

func TestLoadConfigUnknownLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	cfg := LoadConfig()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], `unknown LOG_LEVEL "verbose"`)
}
