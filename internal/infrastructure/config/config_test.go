package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("ADMIN_PASSWORD", "initial-password")
}

func TestLoad_Valid(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected default token TTL: %v", cfg.TokenTTL)
	}
	if cfg.AdminEmail != "admin@itsyourradio.com" {
		t.Fatalf("unexpected default admin email: %s", cfg.AdminEmail)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "initial-password")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected startup failure without JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "tooshort")
	t.Setenv("ADMIN_PASSWORD", "initial-password")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected startup failure for short JWT_SECRET")
	}
}

func TestLoad_MissingAdminPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected startup failure without ADMIN_PASSWORD")
	}
}

func TestLoad_CustomTTL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "15m")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("unexpected token TTL: %v", cfg.TokenTTL)
	}
}
