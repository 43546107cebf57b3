package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_overrides_defaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
cacheTTL: 5m
logLevel: debug
crawler:
  maxPages: 20
  rps: 2.5
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Crawler.MaxPages)
	assert.Equal(t, 2.5, cfg.Crawler.RPS)

	// Keys the file omits keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Crawler.Timeout.Std())
}

func TestLoadConfig_missing_file(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_invalid_duration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cacheTTL: soon\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL.Std())
	assert.Equal(t, "info", cfg.LogLevel)
}
