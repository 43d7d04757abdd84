package config

import (
	"testing"
)

func TestLoadRejectsInvalidAppMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	if err == nil {
		t.Fatalf("expected Load to fail for invalid APP_MODE")
	}
}

func TestLoadRejectsDefaultSecretInProd(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_JWT_SECRET", "")
	_, err := Load()
	if err == nil {
		t.Fatalf("expected Load to fail with default JWT secret in prod")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if !cfg.IsDev() || cfg.IsProd() {
		t.Fatalf("expected dev mode")
	}
	if cfg.GetAllowedOrigins() != "*" {
		t.Fatalf("expected dev CORS to allow all origins")
	}
	if cfg.SMTP.Enabled() {
		t.Fatalf("expected mail to be disabled without SMTP_HOST")
	}
}

func TestLoadSMTPEnabled(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("SMTP_HOST", "smtp.studesk.ma")
	t.Setenv("SMTP_FROM", "noreply@studesk.ma")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.SMTP.Enabled() {
		t.Fatalf("expected mail to be enabled")
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("expected default SMTP port 587, got %d", cfg.SMTP.Port)
	}
}
