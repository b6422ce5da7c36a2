package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "DATABASE_URL", "DATABASE_PUBLIC_URL", "DB_AUTO_MIGRATE",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "FROM_EMAIL", "NOTIFY_EMAIL",
		"CORS_ALLOWED_ORIGINS", "REVIEWS_PAGE_SIZE", "REVIEWS_MAX_PAGE_SIZE", "DIAGNOSTICS_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 6, cfg.ReviewsPageSize)
	assert.Equal(t, 50, cfg.ReviewsMaxPage)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Diagnostics)
	assert.False(t, cfg.MailConfigured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://svc@db/portfolio")
	t.Setenv("DATABASE_PUBLIC_URL", "postgres://anon@db/portfolio")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("NOTIFY_EMAIL", "owner@example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REVIEWS_MAX_PAGE_SIZE", "20")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://anon@db/portfolio", cfg.DatabasePublicURL)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.MailConfigured())
	assert.False(t, cfg.Diagnostics)
	assert.Equal(t, 20, cfg.ReviewsMaxPage)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_MaxPageNeverBelowPageSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("REVIEWS_PAGE_SIZE", "10")
	t.Setenv("REVIEWS_MAX_PAGE_SIZE", "4")

	cfg := Load()

	assert.Equal(t, 10, cfg.ReviewsPageSize)
	assert.Equal(t, 10, cfg.ReviewsMaxPage)
}

func TestLoad_DiagnosticsOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DIAGNOSTICS_ENABLED", "true")

	assert.True(t, Load().Diagnostics)
}
