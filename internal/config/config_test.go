package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults tests that the service is runnable with no config file
func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeoutSeconds)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.False(t, cfg.Log.JSON)
}

// TestLoadFromFile tests that file values override defaults
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  listen: ":9090"
  rate_limit: 50
  rate_burst: 10
log:
  json: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, float64(50), cfg.Server.RateLimit)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.True(t, cfg.Log.JSON)
	// Untouched settings keep their defaults
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeoutSeconds)
}

// TestLoadMissingExplicitFile tests that a named but absent file is an error
func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

// TestLoadMalformedFile tests that invalid YAML is reported
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}
