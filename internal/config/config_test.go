package config

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Parse()
		if err != nil {
			t.Fatalf("Parse() returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected addr localhost:5001, got %s", cfg.Server.Addr)
		}
		if cfg.Database.Path != "./data/tradelog.db" {
			t.Errorf("Expected default db path, got %s", cfg.Database.Path)
		}
		if cfg.Server.ShutdownTimeout != 30*time.Second {
			t.Errorf("Expected 30s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 {
			t.Errorf("Expected 2 default origins, got %v", cfg.CORS.AllowedOrigins)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
			t.Errorf("Unexpected log defaults: %+v", cfg.Log)
		}
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("DB_PATH", "/tmp/trades.db")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example,https://c.example")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("SHUTDOWN_TIMEOUT", "5s")

		cfg, err := Parse()
		if err != nil {
			t.Fatalf("Parse() returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Expected addr 0.0.0.0:8080, got %s", cfg.Server.Addr)
		}
		if cfg.Database.Path != "/tmp/trades.db" {
			t.Errorf("Expected /tmp/trades.db, got %s", cfg.Database.Path)
		}
		if len(cfg.CORS.AllowedOrigins) != 3 || cfg.CORS.AllowedOrigins[2] != "https://c.example" {
			t.Errorf("Unexpected origins: %v", cfg.CORS.AllowedOrigins)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Expected json log format, got %s", cfg.Log.Format)
		}
		if cfg.Server.ShutdownTimeout != 5*time.Second {
			t.Errorf("Expected 5s, got %s", cfg.Server.ShutdownTimeout)
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		if _, err := Parse(); err == nil {
			t.Error("Expected error for invalid LOG_FORMAT, got nil")
		}
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		if _, err := Parse(); err == nil {
			t.Error("Expected error for invalid SHUTDOWN_TIMEOUT, got nil")
		}
	})
}
