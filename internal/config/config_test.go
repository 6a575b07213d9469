package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.UserCacheSize != 1024 {
		t.Errorf("UserCacheSize = %d, want 1024", cfg.UserCacheSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/usip")
	t.Setenv("USER_CACHE_SIZE", "7")
	t.Setenv("OTLP_INSECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9999")
	}
	if cfg.DatabaseURL != "postgres://localhost/usip" {
		t.Errorf("DatabaseURL = %q, want override", cfg.DatabaseURL)
	}
	if cfg.UserCacheSize != 7 {
		t.Errorf("UserCacheSize = %d, want 7", cfg.UserCacheSize)
	}
	if !cfg.OTLPInsecure {
		t.Error("OTLPInsecure = false, want true")
	}
}

func TestLoad_RejectsNegativeCacheSize(t *testing.T) {
	t.Setenv("USER_CACHE_SIZE", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load should reject a negative USER_CACHE_SIZE")
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"5s", 5 * time.Second},
		{"2m", 2 * time.Minute},
		{"", 10 * time.Second},
		{"bogus", 10 * time.Second},
		{"-1s", 10 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{ShutdownTimeout: tt.raw}
		if got := cfg.ShutdownTimeoutDuration(); got != tt.want {
			t.Errorf("ShutdownTimeoutDuration(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCacheTTL(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"45s", 45 * time.Second},
		{"", 30 * time.Second},
		{"bogus", 30 * time.Second},
		{"0s", 30 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{UserCacheTTL: tt.raw}
		if got := cfg.CacheTTL(); got != tt.want {
			t.Errorf("CacheTTL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
