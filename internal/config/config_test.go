package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:            "8082",
		DefaultYear:     2024,
		DefaultTopN:     4,
		SessionLimit:    256,
		SessionTTL:      30 * time.Minute,
		JanitorInterval: time.Minute,
		LogLevel:        "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid default year",
			mutate:      func(c *Config) { c.DefaultYear = 0 },
			wantErr:     true,
			errorString: "invalid default year",
		},
		{
			name:        "invalid top_n",
			mutate:      func(c *Config) { c.DefaultTopN = 0 },
			wantErr:     true,
			errorString: "invalid default top_n 0: must be at least 1",
		},
		{
			name:        "invalid session limit",
			mutate:      func(c *Config) { c.SessionLimit = 0 },
			wantErr:     true,
			errorString: "invalid session limit",
		},
		{
			name:        "session TTL too short",
			mutate:      func(c *Config) { c.SessionTTL = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "session TTL too long",
			mutate:      func(c *Config) { c.SessionTTL = 48 * time.Hour },
			wantErr:     true,
			errorString: "must be at most 24 hours",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.DefaultTopN = -1
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"invalid port", "invalid default top_n", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("combined error missing %q: %v", want, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEFAULT_YEAR", "DEFAULT_TOP_N", "SESSION_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8082" {
		t.Fatalf("default port = %s, want 8082", cfg.Port)
	}
	if cfg.DefaultYear != 2024 {
		t.Fatalf("default year = %d, want 2024", cfg.DefaultYear)
	}
	if cfg.DefaultTopN != 4 {
		t.Fatalf("default top_n = %d, want 4", cfg.DefaultTopN)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_TOP_N", "6")
	t.Setenv("SESSION_TTL", "5m")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port = %s, want 9000", cfg.Port)
	}
	if cfg.DefaultTopN != 6 {
		t.Fatalf("top_n = %d, want 6", cfg.DefaultTopN)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("session TTL = %v, want 5m", cfg.SessionTTL)
	}
}
