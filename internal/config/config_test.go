package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "https://www.google.com/search", cfg.Search.DefaultURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Coalesce.Window)
	assert.Equal(t, time.Minute, cfg.Coalesce.SweepInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "search.db", filepath.Base(cfg.Database.Path))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  path: /tmp/aliases.db
server:
  addr: 127.0.0.1:8080
search:
  default_url: https://duckduckgo.com/
coalesce:
  window: 2s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/aliases.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "https://duckduckgo.com/", cfg.Search.DefaultURL)
	assert.Equal(t, 2*time.Second, cfg.Coalesce.Window)
	assert.Equal(t, time.Minute, cfg.Coalesce.SweepInterval, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: :9000\n"), 0o644))
	t.Setenv("NICKURL_SERVER_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  default_url: google.com\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "search.default_url", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"empty database path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"empty search url", func(c *Config) { c.Search.DefaultURL = "" }, "search.default_url"},
		{"negative window", func(c *Config) { c.Coalesce.Window = -time.Second }, "coalesce.window"},
		{"negative sweep", func(c *Config) { c.Coalesce.SweepInterval = -time.Second }, "coalesce.sweep_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}
