package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabasePath    string
	Port            string
	AdminToken      string
	CronSecret      string
	AutomationCron  string
	DefaultTimezone string
	NATSURL         string
	GinMode         string
	AllowedOrigins  []string

	WebhookTimeout       time.Duration
	WebhookRatePerSecond float64
	WebhookBurst         int

	LogLevel  string
	LogFormat string

	// LogFile enables a rotated log file next to stdout.
	LogFile           string
	LogFileMaxSizeMB  int
	LogFileMaxBackups int
	LogFileMaxAgeDays int
}

// Load reads the configuration from the environment. Malformed numeric or
// duration values are reported rather than replaced by their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath:    getEnv("DATABASE_PATH", "./automation.db"),
		Port:            getEnv("PORT", "3000"),
		AdminToken:      getEnv("ADMIN_TOKEN", ""),
		CronSecret:      getEnv("CRON_SECRET", ""),
		AutomationCron:  getEnv("AUTOMATION_CRON", ""),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Europe/Berlin"),
		NATSURL:         getEnv("NATS_URL", ""),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		LogFile:         getEnv("LOG_FILE", ""),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	var err error
	if cfg.WebhookTimeout, err = time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT: %w", err)
	}
	if cfg.WebhookRatePerSecond, err = strconv.ParseFloat(getEnv("WEBHOOK_RATE_PER_SECOND", "2.5"), 64); err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_RATE_PER_SECOND: %w", err)
	}
	if cfg.WebhookBurst, err = strconv.Atoi(getEnv("WEBHOOK_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_BURST: %w", err)
	}
	if cfg.LogFileMaxSizeMB, err = strconv.Atoi(getEnv("LOG_FILE_MAX_SIZE_MB", "50")); err != nil {
		return nil, fmt.Errorf("invalid LOG_FILE_MAX_SIZE_MB: %w", err)
	}
	if cfg.LogFileMaxBackups, err = strconv.Atoi(getEnv("LOG_FILE_MAX_BACKUPS", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOG_FILE_MAX_BACKUPS: %w", err)
	}
	if cfg.LogFileMaxAgeDays, err = strconv.Atoi(getEnv("LOG_FILE_MAX_AGE_DAYS", "30")); err != nil {
		return nil, fmt.Errorf("invalid LOG_FILE_MAX_AGE_DAYS: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
