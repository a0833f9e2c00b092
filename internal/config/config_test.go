package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mug212/ats-score-resume-builder/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 5s
  max_sessions: 50
logger:
  level: debug
  format: pretty
rate_limit:
  enabled: true
  edit_limit: 20
  edit_window: 1m
  whitelist: [127.0.0.1]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 50, cfg.Server.MaxSessions)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "pretty", cfg.Logger.Format)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20, cfg.RateLimit.EditLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.EditWindow)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.RateLimit.Whitelist)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [port")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative timeout", func(c *Config) { c.Server.WriteTimeout = -time.Second }, "timeouts"},
		{"negative sessions", func(c *Config) { c.Server.MaxSessions = -1 }, "max_sessions"},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
		{"negative limit", func(c *Config) { c.RateLimit.EditLimit = -1 }, "non-negative"},
		{"zero window", func(c *Config) { c.RateLimit.EditWindow = 0 }, "windows"},
		{"zero window disabled", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.EditWindow = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Server: ServerConfig{Port: 9000},
		Logger: logger.Config{Level: "warn"},
	}

	merged := partial.MergeWithDefaults(Default())

	assert.Equal(t, 9000, merged.Server.Port)
	assert.Equal(t, "warn", merged.Logger.Level)
	assert.Equal(t, "json", merged.Logger.Format)
	assert.Equal(t, 15*time.Second, merged.Server.ReadTimeout)
	assert.Equal(t, Default().RateLimit, merged.RateLimit)
}

func TestMergeWithDefaults_PartialRateLimit(t *testing.T) {
	partial := Config{RateLimit: RateLimitConfig{Enabled: true, EditLimit: 5}}

	merged := partial.MergeWithDefaults(Default())

	assert.True(t, merged.RateLimit.Enabled)
	assert.Equal(t, 5, merged.RateLimit.EditLimit)
	assert.Equal(t, time.Minute, merged.RateLimit.EditWindow)
	assert.Equal(t, 1000, merged.RateLimit.DefaultLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvRateLimitEnabled, "false")
	t.Setenv(EnvRateLimitWhitelist, "10.0.0.1, ,10.0.0.2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Logger.Level)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)
}

func TestLoad_IgnoresUnparseableEnv(t *testing.T) {
	t.Setenv(EnvPort, "eighty")
	t.Setenv(EnvRateLimitWindow, "soon")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
}

func TestLoad_InvalidFileValues(t *testing.T) {
	path := writeConfig(t, "logger:\n  format: xml\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger.format")
}
