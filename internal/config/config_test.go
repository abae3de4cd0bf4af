package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shop")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "shopapi", cfg.JWTIssuer)
	assert.Equal(t, "shopapi-clients", cfg.JWTAudience)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 30*time.Second, cfg.StatementTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shop")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_EXPIRY_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shop")
	t.Setenv("JWT_SECRET", "")

	_, err = Load()
	assert.Error(t, err)
}
