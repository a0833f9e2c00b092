package ratelimit

import (
	"net/http"
	"time"

	"github.com/Mug212/ats-score-resume-builder/internal/config"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets idle this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // maximum requests per window, 0 means unlimited
	Window time.Duration // time window
	Burst  int           // burst capacity, defaults to Limit
}

// FromConfig builds the limiter configuration from the loaded settings.
func FromConfig(rl config.RateLimitConfig) *Config {
	return &Config{
		Enabled:         rl.Enabled,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.DefaultWindow,
		CleanupInterval: rl.CleanupInterval,
		IdleTTL:         time.Hour,
		Whitelist:       toSet(rl.Whitelist),
		Blacklist:       toSet(rl.Blacklist),
		EndpointConfigs: EditEndpointConfigs(rl.EditLimit, rl.EditWindow, rl.EditBurst),
	}
}

// EditEndpointConfigs limits every document write with the same budget.
// Reads fall through to the default limit.
func EditEndpointConfigs(limit int, window time.Duration, burst int) []EndpointConfig {
	var out []EndpointConfig
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		out = append(out,
			EndpointConfig{Path: "/documents", Method: method, Limit: limit, Window: window, Burst: burst},
			EndpointConfig{Path: "/documents/", Method: method, Limit: limit, Window: window, Burst: burst},
		)
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
