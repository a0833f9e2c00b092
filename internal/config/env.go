package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables that override file and default values.
const (
	EnvPort               = "RESUME_BUILDER_PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvRateLimitEnabled   = "RATE_LIMIT_ENABLED"
	EnvRateLimitDefault   = "RATE_LIMIT_DEFAULT_LIMIT"
	EnvRateLimitWindow    = "RATE_LIMIT_DEFAULT_WINDOW"
	EnvRateLimitEditLimit = "RATE_LIMIT_EDIT_LIMIT"
	EnvRateLimitCleanup   = "RATE_LIMIT_CLEANUP_INTERVAL"
	EnvRateLimitWhitelist = "RATE_LIMIT_WHITELIST"
	EnvRateLimitBlacklist = "RATE_LIMIT_BLACKLIST"
)

// ApplyEnv overrides fields from the environment. Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	c.Server.Port = getEnvInt(EnvPort, c.Server.Port)
	c.Logger.Level = getEnvString(EnvLogLevel, c.Logger.Level)
	c.Logger.Format = getEnvString(EnvLogFormat, c.Logger.Format)

	c.RateLimit.Enabled = getEnvBool(EnvRateLimitEnabled, c.RateLimit.Enabled)
	c.RateLimit.DefaultLimit = getEnvInt(EnvRateLimitDefault, c.RateLimit.DefaultLimit)
	c.RateLimit.DefaultWindow = getEnvDuration(EnvRateLimitWindow, c.RateLimit.DefaultWindow)
	c.RateLimit.EditLimit = getEnvInt(EnvRateLimitEditLimit, c.RateLimit.EditLimit)
	c.RateLimit.CleanupInterval = getEnvDuration(EnvRateLimitCleanup, c.RateLimit.CleanupInterval)
	if list := parseList(os.Getenv(EnvRateLimitWhitelist)); len(list) > 0 {
		c.RateLimit.Whitelist = list
	}
	if list := parseList(os.Getenv(EnvRateLimitBlacklist)); len(list) > 0 {
		c.RateLimit.Blacklist = list
	}
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseList splits a comma-separated list, dropping blanks.
func parseList(list string) []string {
	if list == "" {
		return nil
	}

	var result []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
