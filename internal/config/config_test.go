package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "DATABASE_NAME", "PORT", "CORS_ORIGIN", "LOG_FILE", "DEBUG"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.DatabaseName != "selfmastery" {
		t.Fatalf("expected default database name, got %q", cfg.DatabaseName)
	}
	if cfg.DatabaseNameSet {
		t.Fatalf("default name should not count as set")
	}
	if cfg.DatabaseURL != "" || cfg.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("DATABASE_NAME", "custom")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.DatabaseURL != "postgres://localhost/app" {
		t.Fatalf("unexpected url %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "custom" || !cfg.DatabaseNameSet {
		t.Fatalf("unexpected name: %+v", cfg)
	}
	if cfg.Port != "9000" || cfg.CORSOrigin != "https://app.example.com" || !cfg.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
