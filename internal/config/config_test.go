package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adstudio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme: dark
export_dir: /tmp/out
brand:
  name: Test Brand
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
	assert.Equal(t, "Test Brand", cfg.Brand.Name)
	// Unset file fields keep their defaults.
	assert.Equal(t, "friendly-professional", cfg.Brand.Tone)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adstudio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	t.Setenv("ADSTUDIO_THEME", "dark")
	t.Setenv("ADSTUDIO_EXPORT_DIR", "elsewhere")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "elsewhere", cfg.ExportDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adstudio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: solarized\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: trace\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: [broken\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
