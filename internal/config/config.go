// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database file.
	DBPath string

	// APIBase is the path prefix all API routes are mounted under.
	APIBase string

	// StaticPath optionally points at the built client assets; empty
	// disables static serving.
	StaticPath string

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// LogFormat is "text" (colored, for terminals) or "json".
	LogFormat string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:       getEnvInt("PORT", 8080),
		DBPath:     getEnv("DB_PATH", "./data/billing.db"),
		APIBase:    getEnv("API_BASE", "/api"),
		StaticPath: getEnv("STATIC_PATH", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
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
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
