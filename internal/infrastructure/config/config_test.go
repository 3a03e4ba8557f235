package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg = applyDefaults(cfg)

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.HTTP.Addr)
	}
	if cfg.Auth.TokenTTL.Minutes() != 30 {
		t.Errorf("expected 30m, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.RefreshTTL != 30*24*time.Hour {
		t.Errorf("expected 720h refresh ttl, got %v", cfg.Auth.RefreshTTL)
	}
	if cfg.Notifier.Telegram.Interval != 24*time.Hour {
		t.Errorf("expected 24h telegram interval, got %v", cfg.Notifier.Telegram.Interval)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("TELEGRAM_CHAT_ID", "12345")
	defer os.Unsetenv("HTTP_ADDR")
	defer os.Unsetenv("TELEGRAM_CHAT_ID")

	cfg := Config{}
	cfg = applyEnv(cfg)

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.HTTP.Addr)
	}
	if cfg.Notifier.Telegram.ChatID != 12345 {
		t.Errorf("expected chat id 12345, got %d", cfg.Notifier.Telegram.ChatID)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("http:\n  addr: \":7070\"\nauth:\n  secret: test-secret\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("expected :7070, got %s", cfg.HTTP.Addr)
	}
	if cfg.Auth.Secret != "test-secret" {
		t.Errorf("expected test-secret, got %s", cfg.Auth.Secret)
	}
	// Defaults still fill the rest.
	if cfg.DB.MaxOpenConns != 5 {
		t.Errorf("expected default max open conns, got %d", cfg.DB.MaxOpenConns)
	}
}

func TestConfig_LoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected defaults for missing file, got %s", cfg.HTTP.Addr)
	}
}
