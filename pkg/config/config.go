// Package config handles configuration loading from environment variables.
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for SysMon.
// Category selection comes from flags, not from here.
type Config struct {
	// Log sink
	LogPath string

	// Public IP lookup
	PublicIPURL     string
	PublicIPTimeout time.Duration

	// Optional Redis mirror of the log sink
	RedisURL string
	RedisKey string

	// Diagnostics
	Debug bool
}

// DefaultConfig returns a config with the stock defaults
func DefaultConfig() *Config {
	return &Config{
		LogPath:         "logs/sysmon.log",
		PublicIPURL:     "https://api.ipify.org",
		PublicIPTimeout: 5 * time.Second,
		RedisKey:        "sysmon:log",
	}
}

// Load creates a Config from environment variables
func Load() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SYSMON_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	if v := os.Getenv("SYSMON_PUBLIC_IP_URL"); v != "" {
		cfg.PublicIPURL = v
	}

	// Timeout in seconds
	if v := os.Getenv("SYSMON_PUBLIC_IP_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.PublicIPTimeout = time.Duration(seconds) * time.Second
		}
	}

	// REDIS_URL is deliberately ignored; it belongs to applications on the host
	if v := os.Getenv("SYSMON_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}

	if v := os.Getenv("SYSMON_REDIS_KEY"); v != "" {
		cfg.RedisKey = v
	}

	cfg.Debug = parseBool(os.Getenv("SYSMON_DEBUG"))

	return cfg
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogPath == "" {
		return &ConfigError{Field: "LogPath", Message: "log path must not be empty (set SYSMON_LOG_PATH)"}
	}
	if c.PublicIPTimeout <= 0 {
		return &ConfigError{Field: "PublicIPTimeout", Message: "timeout must be a positive number of seconds"}
	}
	u, err := url.Parse(c.PublicIPURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return &ConfigError{Field: "PublicIPURL", Message: "must be an absolute http(s) URL"}
	}
	if c.RedisURL != "" && c.RedisKey == "" {
		return &ConfigError{Field: "RedisKey", Message: "redis key is required when SYSMON_REDIS_URL is set"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + ": " + e.Message
}
