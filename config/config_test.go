package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {

	for _, key := range []string{"PORT", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT", "RATE_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected empty redis addr, got %s", cfg.RedisAddr)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("expected default cache ttl 1h, got %s", cfg.CacheTTL)
	}
	if cfg.RateLimit != 5 || cfg.RateWindow != time.Minute {
		t.Errorf("unexpected rate limit defaults: %d per %s", cfg.RateLimit, cfg.RateWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {

	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("RATE_LIMIT", "20")
	t.Setenv("RATE_WINDOW", "30s")

	cfg := Load()

	if cfg.Port != "9090" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
	if cfg.CacheTTL != 15*time.Minute || cfg.RateLimit != 20 || cfg.RateWindow != 30*time.Second {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
}

func TestValidate_Errors(t *testing.T) {

	cases := []struct {
		name string
		cfg  Config
	}{
		{"non-numeric port", Config{Port: "http", RateLimit: 5, RateWindow: time.Minute}},
		{"port out of range", Config{Port: "70000", RateLimit: 5, RateWindow: time.Minute}},
		{"zero rate limit", Config{Port: "8080", RateLimit: 0, RateWindow: time.Minute}},
		{"zero rate window", Config{Port: "8080", RateLimit: 5}},
		{"negative cache ttl", Config{Port: "8080", RateLimit: 5, RateWindow: time.Minute, CacheTTL: -time.Second}},
	}

	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
