package config

import (
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/listing")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("EMAIL_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
}

func TestFromEnvRequiresDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := fromEnv(); err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.EmailEnabled {
		t.Fatal("expected email disabled")
	}
	if cfg.DuplicateWindow != 10*time.Minute {
		t.Fatalf("expected 10m duplicate window, got %s", cfg.DuplicateWindow)
	}
	if cfg.GetPublicRateBurst() != 5 {
		t.Fatalf("expected burst 5, got %d", cfg.GetPublicRateBurst())
	}
	if cfg.IsMinIOEnabled() {
		t.Fatal("expected MinIO disabled without endpoint")
	}
}

func TestFromEnvEmailNeedsProviderCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("EMAIL_PROVIDER", "brevo")
	t.Setenv("BREVO_API_KEY", "")

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EmailEnabled {
		t.Fatal("expected email to stay disabled without a Brevo key")
	}
}

func TestFromEnvEmailRequiresAgentAddress(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("EMAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_FROM_ADDRESS", "leads@example.com")
	t.Setenv("AGENT_NOTIFY_EMAIL", "")

	if _, err := fromEnv(); err == nil {
		t.Fatal("expected error when AGENT_NOTIFY_EMAIL is missing")
	}
}

func TestFromEnvRejectsUnknownProvider(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")

	if _, err := fromEnv(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestFromEnvWildcardOriginRejectsCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := fromEnv(); err == nil {
		t.Fatal("expected error when wildcard CORS is combined with credentials")
	}
}

func TestFromEnvRejectsMalformedNumbers(t *testing.T) {
	cases := map[string]string{
		"JWT_ACCESS_TTL":         "12 hours",
		"PUBLIC_RATE_BURST":      "five",
		"PUBLIC_RATE_PER_MINUTE": "0",
		"ASYNQ_CONCURRENCY":      "-1",
		"DUPLICATE_WINDOW":       "10",
		"SMTP_PORT":              "",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(key, value)

			_, err := fromEnv()
			if err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error to name %s, got %v", key, err)
			}
		})
	}
}

func TestFromEnvParsesNumbers(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("PUBLIC_RATE_BURST", " 8 ")

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.PublicRateBurst != 8 {
		t.Fatalf("expected burst 8, got %d", cfg.PublicRateBurst)
	}
}
