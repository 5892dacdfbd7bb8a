package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://hostel.example.com, https://admin.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, []string{"https://hostel.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenExpiry)
}
