// Package config loads application configuration from the environment.
// A local .env file is loaded first when present, real environment
// variables take precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// HTTP
	Port            string
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL      string
	StatementTimeout time.Duration

	// Logging
	LogLevel       string
	LogDevelopment bool

	// Tokens
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTExpiry   time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except the values that have no safe default.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("APP_PORT", "8080"),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StatementTimeout: getEnvDuration("DB_STATEMENT_TIMEOUT_SECONDS", 30*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogDevelopment:   getEnvBool("LOG_DEVELOPMENT", false),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        getEnv("JWT_ISSUER", "shopapi"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "shopapi-clients"),
		JWTExpiry:        getEnvMinutes("JWT_EXPIRY_MINUTES", time.Hour),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func getEnvMinutes(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	mins, err := strconv.Atoi(v)
	if err != nil || mins <= 0 {
		return fallback
	}
	return time.Duration(mins) * time.Minute
}
