package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 200, cfg.Catalog.Size)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatchbook.yaml")
	content := `
server:
  listen_addr: ":9090"
catalog:
  size: 500
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 500, cfg.Catalog.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset fields keep their defaults.
	assert.Equal(t, 50.0, cfg.Server.RateLimit)
	assert.Equal(t, "swatchbook.db", cfg.Catalog.DBPath)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatchbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero catalog size", "catalog:\n  size: -5\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"zero rate limit", "server:\n  rate_limit: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "swatchbook.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("broken file is still an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "swatchbook.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

		_, err := LoadOrDefault(path)
		assert.Error(t, err)
	})
}
