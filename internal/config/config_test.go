package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"BACKEND_BASE_URL", "SAVED_LIMIT", "BACKEND_TIMEOUT", "HTTP_ADDR", "CRON_LIVE",
		"CRON_SAVED", "SQLITE_PATH", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "HTTPS_PROXY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.SavedLimit != 100 || cfg.Backend.Timeout != 30*time.Second || cfg.HTTP.Addr != ":8080" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Schedule.LiveCron != "*/30 * * * * *" || cfg.Schedule.SavedCron != "0 */5 * * * *" {
		t.Errorf("unexpected cron defaults %+v", cfg.Schedule)
	}
	if cfg.Database.SQLitePath != "" {
		t.Error("recorder is off unless a path is configured")
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("backend url has no default, got %v", err)
	}
	cfg.Backend.BaseURL = "http://localhost:9000"
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
backend:
  base_url: http://backend:9000
  saved_limit: 50
  timeout: 5s
http:
  addr: ":9090"
database:
  sqlite_path: data/altradar.db
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("SAVED_LIMIT", "25")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://backend:9000" || cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("file values not applied: %+v", cfg.Backend)
	}
	if cfg.HTTP.Addr != ":7070" || cfg.Backend.SavedLimit != 25 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Database.SQLitePath != "data/altradar.db" {
		t.Errorf("unexpected sqlite path %q", cfg.Database.SQLitePath)
	}
}

func TestLoad_BadInput(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("backend: [unclosed"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	t.Setenv("SAVED_LIMIT", "lots")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected SAVED_LIMIT error")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		cfg.Backend.BaseURL = "http://localhost:9000"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative limit", func(c *Config) { c.Backend.SavedLimit = -1 }, "saved_limit"},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "t" }, "together"},
		{"bad cron", func(c *Config) { c.Schedule.LiveCron = "every second" }, "live_cron"},
		{"five field cron", func(c *Config) { c.Schedule.SavedCron = "*/5 * * * *" }, "saved_cron"},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if Path() != DefaultPath {
		t.Errorf("expected default path, got %s", Path())
	}
	t.Setenv("CONFIG_PATH", "/etc/altradar.yaml")
	if Path() != "/etc/altradar.yaml" {
		t.Errorf("expected CONFIG_PATH, got %s", Path())
	}
}
