package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "barrovivo-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "barrovivo", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.Assistant.APIURL)
	assert.Equal(t, 8, cfg.Assistant.ResultLimit)
	assert.Equal(t, "Barrovivo", cfg.Reports.CompanyName)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BARROVIVO_APP_NAME", "test-app")
	t.Setenv("BARROVIVO_APP_ENV", "testing")
	t.Setenv("BARROVIVO_APP_PORT", "9000")
	t.Setenv("BARROVIVO_DATABASE_HOST", "db.internal")
	t.Setenv("BARROVIVO_DATABASE_PORT", "5433")
	t.Setenv("BARROVIVO_DATABASE_PASSWORD", "secret")
	t.Setenv("BARROVIVO_REDIS_ENABLED", "true")
	t.Setenv("BARROVIVO_ASSISTANT_API_KEY", "gsk_test")
	t.Setenv("BARROVIVO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, "testing", cfg.App.Env)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "gsk_test", cfg.Assistant.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ValidationRejectsBadPool(t *testing.T) {
	t.Setenv("BARROVIVO_DATABASE_MAX_OPEN_CONNS", "5")
	t.Setenv("BARROVIVO_DATABASE_MAX_IDLE_CONNS", "10")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestLoad_ProductionGuards(t *testing.T) {
	t.Setenv("BARROVIVO_APP_ENV", "production")
	t.Setenv("BARROVIVO_JWT_SECRET", "short")
	t.Setenv("BARROVIVO_DATABASE_PASSWORD", "secret")
	t.Setenv("BARROVIVO_DATABASE_SSLMODE", "require")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")

	t.Setenv("BARROVIVO_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestDSN_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user@host",
		Password: "p@ss w/ord",
		DBName:   "barrovivo",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss w/ord", "password is escaped")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
