package config

import (
	"os"
	"strconv"
	"time"

	"rentsmart-service/internal/pkg/token"
	"rentsmart-service/internal/service/sheets"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Redis
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Tokens and sessions
	Token      token.Config
	SessionTTL time.Duration

	// Spreadsheet API
	SheetsBaseURL string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		Token: token.Config{
			Secret: getEnv("JWT_SECRET", "rent-smart-dev-secret"),
			Issuer: "rent-smart",
			TTL:    getEnvDuration("SESSION_TTL", 720*time.Hour),
		},
		SessionTTL: getEnvDuration("SESSION_TTL", 720*time.Hour),

		SheetsBaseURL: getEnv("SHEETS_BASE_URL", sheets.DefaultBaseURL),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
