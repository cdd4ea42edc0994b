// Package config provides configuration loading and validation for the API
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents server configuration that can be loaded from a JSON file
// or the environment. All fields are optional; missing values use defaults.
type Config struct {
	Port               int    `json:"port,omitempty"`                  // HTTP listen port
	DatabaseURL        string `json:"database_url,omitempty"`          // PostgreSQL connection URL
	GeminiAPIKey       string `json:"gemini_api_key,omitempty"`        // Gemini API key; empty disables AI recommendations
	AllowedOrigin      string `json:"allowed_origin,omitempty"`        // CORS origin, "*" by default
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty"` // per-client request budget
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// the zero value so the result can be merged over file-based defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if limitStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %v", err)
		}
		cfg.RateLimitPerMinute = limit
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8000
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.AllowedOrigin == "" {
		if defaults.AllowedOrigin != "" {
			result.AllowedOrigin = defaults.AllowedOrigin
		} else {
			result.AllowedOrigin = "*"
		}
	}
	if result.RateLimitPerMinute == 0 {
		if defaults.RateLimitPerMinute != 0 {
			result.RateLimitPerMinute = defaults.RateLimitPerMinute
		} else {
			result.RateLimitPerMinute = 120
		}
	}

	return result
}
