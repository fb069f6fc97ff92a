package config_test

import (
	"testing"

	"github.com/msomdec/userdir/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.Path != "userdir.db" {
		t.Fatalf("expected default database path userdir.db, got %s", cfg.Database.Path)
	}
	if cfg.Auth.Username != "admin" || cfg.Auth.Password != "admin123" {
		t.Fatal("expected default demo credentials")
	}
	if !cfg.Seed {
		t.Fatal("expected seeding enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Auth.Username != "root" {
		t.Fatalf("expected username root, got %s", cfg.Auth.Username)
	}
	if cfg.Seed {
		t.Fatal("expected seeding disabled")
	}
}

func TestLoad_RejectsBadBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "20")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected out-of-range BCRYPT_COST to be rejected")
	}
}

func TestAddr(t *testing.T) {
	h := config.HTTPConfig{Host: "127.0.0.1", Port: 8080}
	if h.Addr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr %s", h.Addr())
	}
}
