package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.BudgetAlertCron != "0 8 * * *" {
		t.Fatalf("expected default cron, got %q", cfg.BudgetAlertCron)
	}
	if cfg.BudgetAlertsEnabled() {
		t.Fatalf("alerts should be disabled without SMTP_HOST")
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if !cfg.BudgetAlertsEnabled() {
		t.Fatalf("alerts should be enabled with SMTP_HOST")
	}
}

func TestNewConfigRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error with SMTP_HOST but no SENDER_EMAIL")
	}
}
