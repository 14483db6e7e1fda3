package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "4000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.ProgressBackend != "sqlite" {
		t.Fatalf("progress backend = %q", cfg.ProgressBackend)
	}
	if cfg.EnforceSlotOrder {
		t.Fatal("slot order rule must default to off")
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("environment = %q", cfg.Environment)
	}
}

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without SECRET_KEY")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PROGRESS_BACKEND", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PROGRESS_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("ENFORCE_SLOT_ORDER", "true")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ProgressBackend != "redis" || cfg.RedisAddr != "redis.internal:6380" {
		t.Fatalf("redis config = %q %q", cfg.ProgressBackend, cfg.RedisAddr)
	}
	if !cfg.EnforceSlotOrder || !cfg.IsProduction() {
		t.Fatalf("cfg = %+v", cfg)
	}
}
