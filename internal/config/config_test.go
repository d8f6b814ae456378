package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Empty(t, cfg.Risk.ConfigPath)
		assert.Empty(t, cfg.Analyzer.URL)
		assert.Equal(t, 30*time.Second, cfg.Analyzer.Timeout)
		assert.Equal(t, 2, cfg.Analyzer.RetryMax)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "netposture.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
log:
  level: debug
analyzer:
  url: http://analyzer.local/analyze
  timeout: 5s
`), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
		assert.Equal(t, "http://analyzer.local/analyze", cfg.Analyzer.URL)
		assert.Equal(t, 5*time.Second, cfg.Analyzer.Timeout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("NETPOSTURE_SERVER_PORT", "7070")
		t.Setenv("NETPOSTURE_CORS_ALLOWED_ORIGIN", "https://app.example.com")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Setenv("NETPOSTURE_LOG_LEVEL", "loud")

		_, err := Load("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Level")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
