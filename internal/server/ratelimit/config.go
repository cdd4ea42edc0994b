package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. Paths ending in "/" are matched by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific
// configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: recommendation queries hit the AI provider, so they get
		// the strictest budget.
		{Path: "/api/pathways/query", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		// Tier 2: batch recategorization touches every program row.
		{Path: "/api/programs/categorize", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		// Tier 3: write operations on the directory.
		{Path: "/api/organizations", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/organizations/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/organizations/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/programs", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/programs/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/programs/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/events", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/events/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/events/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/pathways", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/pathways/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/pathways/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Tier 4: auth endpoints, limited to slow credential guessing.
		{Path: "/api/auth/login", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/auth/register", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Reads fall through to the default limit; /health is unlimited via
		// a special case in the matcher.
	}
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

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
