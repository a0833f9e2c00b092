// Package config provides configuration loading and validation for the builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mug212/ats-score-resume-builder/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config represents the builder configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    logger.Config   `yaml:"logger"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxSessions     int           `yaml:"max_sessions"` // 0 means unbounded
	CORSOrigin      string        `yaml:"cors_origin"`
}

// RateLimitConfig configures per-client token buckets.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"`
	DefaultLimit    int           `yaml:"default_limit"`
	DefaultWindow   time.Duration `yaml:"default_window"`
	EditLimit       int           `yaml:"edit_limit"` // writes under /documents/
	EditWindow      time.Duration `yaml:"edit_window"`
	EditBurst       int           `yaml:"edit_burst"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Whitelist       []string      `yaml:"whitelist"`
	Blacklist       []string      `yaml:"blacklist"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigin:      "*",
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			EditLimit:       300,
			EditWindow:      time.Minute,
			EditBurst:       30,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Load reads path (when set), fills the gaps from Default, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		fromFile, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile.MergeWithDefaults(cfg)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 0 and 65535")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: server timeouts must be non-negative")
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("config error: 'server.max_sessions' must be non-negative")
	}

	switch c.Logger.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'logger.format' must be json or pretty, got %q", c.Logger.Format)
	}

	if c.RateLimit.DefaultLimit < 0 || c.RateLimit.EditLimit < 0 || c.RateLimit.EditBurst < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultWindow <= 0 || c.RateLimit.EditWindow <= 0) {
		return fmt.Errorf("config error: rate limit windows must be positive when enabled")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Server
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if result.Server.MaxSessions == 0 {
		result.Server.MaxSessions = defaults.Server.MaxSessions
	}
	if result.Server.CORSOrigin == "" {
		result.Server.CORSOrigin = defaults.Server.CORSOrigin
	}

	// Logger
	if result.Logger.Level == "" {
		result.Logger.Level = defaults.Logger.Level
	}
	if result.Logger.Format == "" {
		result.Logger.Format = defaults.Logger.Format
	}
	if result.Logger.TimeFormat == "" {
		result.Logger.TimeFormat = defaults.Logger.TimeFormat
	}

	// Rate limit. Enabled is a bool and cannot be told apart from unset, so a
	// file that omits the rate_limit block keeps the defaults wholesale.
	if isZeroRateLimit(c.RateLimit) {
		result.RateLimit = defaults.RateLimit
		return result
	}
	if result.RateLimit.DefaultLimit == 0 {
		result.RateLimit.DefaultLimit = defaults.RateLimit.DefaultLimit
	}
	if result.RateLimit.DefaultWindow == 0 {
		result.RateLimit.DefaultWindow = defaults.RateLimit.DefaultWindow
	}
	if result.RateLimit.EditLimit == 0 {
		result.RateLimit.EditLimit = defaults.RateLimit.EditLimit
	}
	if result.RateLimit.EditWindow == 0 {
		result.RateLimit.EditWindow = defaults.RateLimit.EditWindow
	}
	if result.RateLimit.EditBurst == 0 {
		result.RateLimit.EditBurst = defaults.RateLimit.EditBurst
	}
	if result.RateLimit.CleanupInterval == 0 {
		result.RateLimit.CleanupInterval = defaults.RateLimit.CleanupInterval
	}

	return result
}

func isZeroRateLimit(r RateLimitConfig) bool {
	return !r.Enabled && r.DefaultLimit == 0 && r.DefaultWindow == 0 &&
		r.EditLimit == 0 && r.EditWindow == 0 && r.EditBurst == 0 &&
		r.CleanupInterval == 0 && len(r.Whitelist) == 0 && len(r.Blacklist) == 0
}
