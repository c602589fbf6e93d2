package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmarinn/dayder/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "DB_DSN", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"TOKEN_ISSUER", "ADMIN_USERNAME", "ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "fallback-secret-key", cfg.SigningKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "120")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "prod-secret", cfg.SigningKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "root", cfg.AdminUsername)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := config.Load()
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
