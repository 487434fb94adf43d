// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
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

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetBrevoAPIKey() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetOfficeEmail() string
	GetOfficeName() string
	GetBusinessPhone() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// RedisConfig provides settings for the Redis-backed rate limit store.
type RedisConfig interface {
	GetRedisURL() string
}

// MapsConfig provides settings for the address lookup service.
type MapsConfig interface {
	IsAddressLookupEnabled() bool
}

// BookingConfig provides settings for the booking module.
type BookingConfig interface {
	GetResetDraftAfterSubmit() bool
	GetDraftTTL() time.Duration
	GetNoticeTTL() time.Duration
	GetSubmitMinInterval() time.Duration
	GetSubmitWindow() time.Duration
	GetSubmitMaxPerWindow() int
	GetBusinessPhone() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	EmailEnabled          bool
	BrevoAPIKey           string
	EmailFromName         string
	EmailFromAddress      string
	OfficeEmail           string
	OfficeName            string
	BusinessPhone         string
	SMTPHost              string
	SMTPPort              int
	SMTPUsername          string
	SMTPPassword          string
	RedisURL              string
	AddressLookupEnabled  bool
	ResetDraftAfterSubmit bool
	DraftTTL              time.Duration
	NoticeTTL             time.Duration
	SubmitMinInterval     time.Duration
	SubmitWindow          time.Duration
	SubmitMaxPerWindow    int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetOfficeEmail() string      { return c.OfficeEmail }
func (c *Config) GetOfficeName() string       { return c.OfficeName }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }

// RedisConfig implementation
func (c *Config) GetRedisURL() string { return c.RedisURL }

// MapsConfig implementation
func (c *Config) IsAddressLookupEnabled() bool { return c.AddressLookupEnabled }

// BookingConfig implementation
func (c *Config) GetResetDraftAfterSubmit() bool      { return c.ResetDraftAfterSubmit }
func (c *Config) GetDraftTTL() time.Duration          { return c.DraftTTL }
func (c *Config) GetNoticeTTL() time.Duration         { return c.NoticeTTL }
func (c *Config) GetSubmitMinInterval() time.Duration { return c.SubmitMinInterval }
func (c *Config) GetSubmitWindow() time.Duration      { return c.SubmitWindow }
func (c *Config) GetSubmitMaxPerWindow() int          { return c.SubmitMaxPerWindow }
func (c *Config) GetBusinessPhone() string            { return c.BusinessPhone }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	brevoAPIKey := getEnv("BREVO_API_KEY", "")
	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		EmailEnabled:          emailEnabled && (brevoAPIKey != "" || smtpHost != ""),
		BrevoAPIKey:           brevoAPIKey,
		EmailFromName:         getEnv("EMAIL_FROM_NAME", "Presidential Dumpsters"),
		EmailFromAddress:      getEnv("EMAIL_FROM_ADDRESS", ""),
		OfficeEmail:           getEnv("OFFICE_EMAIL", "office@presidentialmgmt.com"),
		OfficeName:            getEnv("OFFICE_NAME", "Presidential Management"),
		BusinessPhone:         getEnv("BUSINESS_PHONE", "(347) 299-0482"),
		SMTPHost:              smtpHost,
		SMTPPort:              mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:          getEnv("SMTP_USERNAME", ""),
		SMTPPassword:          getEnv("SMTP_PASSWORD", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		AddressLookupEnabled:  strings.EqualFold(getEnv("ADDRESS_LOOKUP_ENABLED", "true"), "true"),
		ResetDraftAfterSubmit: strings.EqualFold(getEnv("BOOKING_RESET_AFTER_SUBMIT", "true"), "true"),
		DraftTTL:              mustDuration(getEnv("BOOKING_DRAFT_TTL", "2h")),
		NoticeTTL:             mustDuration(getEnv("NOTICE_TTL", "6s")),
		SubmitMinInterval:     mustDuration(getEnv("SUBMIT_MIN_INTERVAL", "3s")),
		SubmitWindow:          mustDuration(getEnv("SUBMIT_WINDOW", "5m")),
		SubmitMaxPerWindow:    mustInt(getEnv("SUBMIT_MAX_PER_WINDOW", "10")),
	}

	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.SubmitMaxPerWindow < 1 {
		return nil, fmt.Errorf("SUBMIT_MAX_PER_WINDOW must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
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
