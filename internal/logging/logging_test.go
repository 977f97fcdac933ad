package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adstudio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToConfiguredFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := New(config.LoggingConfig{Level: "info", File: file}, false)
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hello")
}

func TestNewVerboseLowersLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(config.LoggingConfig{Level: "warn", File: file}, true)
	require.NoError(t, err)

	logger.Debug("debug line")
	require.NoError(t, logger.Sync())

	raw, _ := os.ReadFile(file)
	assert.True(t, strings.Contains(string(raw), "debug line"))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", File: filepath.Join(t.TempDir(), "a.log")}, false)
	assert.Error(t, err)
}
