package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Pipeline
	DefaultYear int
	DefaultTopN int

	// Sessions
	SessionLimit    int
	SessionTTL      time.Duration
	JanitorInterval time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8082"),

		DefaultYear: getEnvInt("DEFAULT_YEAR", 2024),
		DefaultTopN: getEnvInt("DEFAULT_TOP_N", 4),

		SessionLimit:    getEnvInt("SESSION_LIMIT", 256),
		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		JanitorInterval: getEnvDuration("SESSION_JANITOR_INTERVAL", time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DefaultYear < 1 {
		errors = append(errors, fmt.Sprintf("invalid default year %d: must be positive", c.DefaultYear))
	}

	if c.DefaultTopN < 1 {
		errors = append(errors, fmt.Sprintf("invalid default top_n %d: must be at least 1", c.DefaultTopN))
	}

	if c.SessionLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid session limit %d: must be at least 1", c.SessionLimit))
	}

	if c.SessionTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 second", c.SessionTTL))
	} else if c.SessionTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at most 24 hours", c.SessionTTL))
	}

	if c.JanitorInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid janitor interval %v: must be at least 1 second", c.JanitorInterval))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
