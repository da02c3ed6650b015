package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := NewLogger(LoggerOpts{Level: "warn", Output: &buf})
	require.NoError(t, err)
	defer closeLog()

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "ts=")
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	logger, closeLog, err := NewLogger(LoggerOpts{Prefix: "test", Dir: dir, Level: "debug", Output: &buf})
	require.NoError(t, err)

	level.Debug(logger).Log("msg", "to both")
	require.NoError(t, closeLog())

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=\"to both\"")
	assert.Contains(t, buf.String(), "msg=\"to both\"")
}

func TestLogWithTiming(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(LoggerOpts{Level: "info", Output: &buf})
	require.NoError(t, err)

	LogWithTiming(logger, time.Now(), "Finished %s", "session")
	assert.Contains(t, buf.String(), "msg=\"Finished session\"")
	assert.Contains(t, buf.String(), "took=")
}
