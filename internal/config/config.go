package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment       string
	Port              string
	DatabaseURL       string // privileged (service) credential, used for writes
	DatabasePublicURL string // row-restricted credential, used for public reads when set
	AutoMigrate       bool
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	FromEmail         string
	NotifyEmail       string
	AllowedOrigins    []string
	ReviewsPageSize   int
	ReviewsMaxPage    int
	Diagnostics       bool
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	pageSize, _ := strconv.Atoi(getEnv("REVIEWS_PAGE_SIZE", "6"))
	maxPage, _ := strconv.Atoi(getEnv("REVIEWS_MAX_PAGE_SIZE", "50"))
	environment := getEnv("ENVIRONMENT", "development")

	if pageSize < 1 {
		pageSize = 6
	}
	if maxPage < pageSize {
		maxPage = pageSize
	}

	return &Config{
		Environment:       environment,
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DatabasePublicURL: getEnv("DATABASE_PUBLIC_URL", ""),
		AutoMigrate:       getBool("DB_AUTO_MIGRATE", false),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          smtpPort,
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		FromEmail:         getEnv("FROM_EMAIL", "noreply@yourdomain.com"),
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		ReviewsPageSize:   pageSize,
		ReviewsMaxPage:    maxPage,
		Diagnostics:       getBool("DIAGNOSTICS_ENABLED", environment != "production"),
	}
}

// MailConfigured reports whether outbound notification mail can be sent.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != "" && c.NotifyEmail != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
