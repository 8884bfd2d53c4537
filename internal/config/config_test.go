package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://necdetsanli-guestbook.sanlinecdet97.workers.dev" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GUESTBOOK_API_URL", "https://necdetsanli-guestbook-staging.sanlinecdet97.workers.dev")
	t.Setenv("GUESTBOOK_ADMIN_TOKEN", "AbCdEfGhIj0123456789")
	t.Setenv("GUESTBOOK_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://necdetsanli-guestbook-staging.sanlinecdet97.workers.dev" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Token != "AbCdEfGhIj0123456789" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("GUESTBOOK_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Error("Load accepted an unparsable timeout")
	}
}
