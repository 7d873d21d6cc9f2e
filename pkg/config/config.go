package config

import (
	"os"
	"strconv"
	"strings"
)

// App holds runtime configuration derived from environment variables.
type App struct {
	Environment string
	LogLevel    string
	APIPort     string
	DatabaseURL string
	CORSOrigins []string

	// APIReadKeys lists keys granted read access to the audit log, as
	// "principal:key" pairs or bare keys.
	APIReadKeys []string

	// DefaultPageLimit is used when a listing request omits limit;
	// MaxPageLimit silently caps oversized requests.
	DefaultPageLimit int
	MaxPageLimit     int
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() App {
	return App{
		Environment:      getEnv("ENVIRONMENT", "production"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		APIPort:          getEnv("API_PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		APIReadKeys:      splitList(os.Getenv("API_READ_KEYS")),
		DefaultPageLimit: getEnvInt("DEFAULT_PAGE_LIMIT", 100),
		MaxPageLimit:     getEnvInt("MAX_PAGE_LIMIT", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
