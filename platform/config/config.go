// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthConfig provides settings for the agent login.
type AuthConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetAgentEmail() string
	GetAgentPasswordHash() string
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetBrevoAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// NotificationConfig provides settings for the notification module.
type NotificationConfig interface {
	GetAgentNotifyEmail() string
	GetBookingURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for public endpoint throttling.
type RateLimitConfig interface {
	GetPublicRatePerMinute() float64
	GetPublicRateBurst() int
}

// SchedulerConfig provides settings for the asynq task queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// DuplicateGuardConfig provides settings for repeated submission detection.
type DuplicateGuardConfig interface {
	GetRedisURL() string
	GetDuplicateWindow() time.Duration
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketPropertyPhotos() string
	IsMinIOEnabled() bool
}

// ListingConfig provides settings for the property listing module.
type ListingConfig interface {
	GetPropertyFile() string
	GetPhotoBaseURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	HTTPAddr                 string
	DatabaseURL              string
	MigrationsEnabled        bool
	JWTAccessSecret          string
	AccessTokenTTL           time.Duration
	AgentEmail               string
	AgentPasswordHash        string
	CORSAllowAll             bool
	CORSOrigins              []string
	CORSAllowCreds           bool
	EmailEnabled             bool
	EmailProvider            string
	BrevoAPIKey              string
	SMTPHost                 string
	SMTPPort                 int
	SMTPUsername             string
	SMTPPassword             string
	EmailFromName            string
	EmailFromAddress         string
	AgentNotifyEmail         string
	BookingURL               string
	PublicRatePerMinute      float64
	PublicRateBurst          int
	RedisURL                 string
	RedisTLSInsecure         bool
	AsynqQueueName           string
	AsynqConcurrency         int
	DuplicateWindow          time.Duration
	MinIOEndpoint            string
	MinIOAccessKey           string
	MinIOSecretKey           string
	MinIOUseSSL              bool
	MinioBucketPropertyPhoto string
	PropertyFile             string
	PhotoBaseURL             string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// AuthConfig implementation
func (c *Config) GetJWTAccessSecret() string       { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }
func (c *Config) GetAgentEmail() string            { return c.AgentEmail }
func (c *Config) GetAgentPasswordHash() string     { return c.AgentPasswordHash }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// NotificationConfig implementation
func (c *Config) GetAgentNotifyEmail() string { return c.AgentNotifyEmail }
func (c *Config) GetBookingURL() string       { return c.BookingURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetPublicRatePerMinute() float64 { return c.PublicRatePerMinute }
func (c *Config) GetPublicRateBurst() int         { return c.PublicRateBurst }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// DuplicateGuardConfig implementation
func (c *Config) GetDuplicateWindow() time.Duration { return c.DuplicateWindow }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string  { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool      { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketPropertyPhotos() string {
	return c.MinioBucketPropertyPhoto
}
func (c *Config) IsMinIOEnabled() bool { return c.MinIOEndpoint != "" }

// ListingConfig implementation
func (c *Config) GetPropertyFile() string { return c.PropertyFile }
func (c *Config) GetPhotoBaseURL() string { return c.PhotoBaseURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")
	provider := strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "brevo")))
	brevoAPIKey := getEnv("BREVO_API_KEY", "")
	smtpHost := getEnv("SMTP_HOST", "")

	providerConfigured := (provider == "brevo" && brevoAPIKey != "") || (provider == "smtp" && smtpHost != "")

	var num numericEnv

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		MigrationsEnabled:        strings.EqualFold(getEnv("MIGRATIONS_ENABLED", "true"), "true"),
		JWTAccessSecret:          getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:           num.duration("JWT_ACCESS_TTL", "12h"),
		AgentEmail:               strings.ToLower(strings.TrimSpace(getEnv("AGENT_EMAIL", ""))),
		AgentPasswordHash:        getEnv("AGENT_PASSWORD_HASH", ""),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		CORSAllowCreds:           strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		EmailEnabled:             emailEnabled && providerConfigured,
		EmailProvider:            provider,
		BrevoAPIKey:              brevoAPIKey,
		SMTPHost:                 smtpHost,
		SMTPPort:                 num.integer("SMTP_PORT", "587"),
		SMTPUsername:             getEnv("SMTP_USERNAME", ""),
		SMTPPassword:             getEnv("SMTP_PASSWORD", ""),
		EmailFromName:            getEnv("EMAIL_FROM_NAME", "Property Leads"),
		EmailFromAddress:         getEnv("EMAIL_FROM_ADDRESS", ""),
		AgentNotifyEmail:         getEnv("AGENT_NOTIFY_EMAIL", ""),
		BookingURL:               getEnv("BOOKING_URL", "https://calendly.com"),
		PublicRatePerMinute:      num.number("PUBLIC_RATE_PER_MINUTE", "10"),
		PublicRateBurst:          num.integer("PUBLIC_RATE_BURST", "5"),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisTLSInsecure:         strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:           getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:         num.integer("ASYNQ_CONCURRENCY", "5"),
		DuplicateWindow:          num.duration("DUPLICATE_WINDOW", "10m"),
		MinIOEndpoint:            getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:           getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:           getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:              strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketPropertyPhoto: getEnv("MINIO_BUCKET_PROPERTY_PHOTOS", "property-photos"),
		PropertyFile:             getEnv("PROPERTY_FILE", ""),
		PhotoBaseURL:             getEnv("PHOTO_BASE_URL", "/photos"),
	}

	if err := num.err(); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if emailEnabled && provider != "brevo" && provider != "smtp" {
		return nil, fmt.Errorf("EMAIL_PROVIDER must be brevo or smtp, got %q", provider)
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.EmailEnabled && cfg.AgentNotifyEmail == "" {
		return nil, fmt.Errorf("AGENT_NOTIFY_EMAIL is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// numericEnv parses numeric settings and collects every malformed or
// non-positive value so one load reports them all.
type numericEnv struct {
	errs []error
}

func (n *numericEnv) duration(key, fallback string) time.Duration {
	raw := strings.TrimSpace(getEnv(key, fallback))
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		n.errs = append(n.errs, fmt.Errorf("%s must be a positive duration such as %q, got %q", key, fallback, raw))
	}
	return d
}

func (n *numericEnv) integer(key, fallback string) int {
	raw := strings.TrimSpace(getEnv(key, fallback))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		n.errs = append(n.errs, fmt.Errorf("%s must be a positive integer, got %q", key, raw))
	}
	return v
}

func (n *numericEnv) number(key, fallback string) float64 {
	raw := strings.TrimSpace(getEnv(key, fallback))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		n.errs = append(n.errs, fmt.Errorf("%s must be a positive number, got %q", key, raw))
	}
	return v
}

func (n *numericEnv) err() error {
	return errors.Join(n.errs...)
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
