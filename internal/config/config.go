// Package config loads runtime settings from the environment, with
// development defaults matching the reference deployment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. It is built once at startup and
// treated as read-only afterwards; the signing key in particular is shared
// by every request without synchronization.
type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	SigningKey    string
	TokenTTL      time.Duration
	Issuer        string
	AdminUsername string
	AdminPassword string
}

// Load reads a .env file when present, then resolves every setting from
// the environment. Missing variables fall back to development defaults;
// these are insecure and should be overridden in production.
func Load() *Config {
	// Ignore a missing .env file, the environment may be set by the host.
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatabaseDSN:   getEnv("DB_DSN", "file:dayder.db?_pragma=foreign_keys(1)"),
		SigningKey:    getEnv("SECRET_KEY", "fallback-secret-key"),
		TokenTTL:      time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		Issuer:        getEnv("TOKEN_ISSUER", "dayder"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
