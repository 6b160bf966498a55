package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty uses local file", "", DefaultDatabaseURL},
		{"blank uses local file", "   ", DefaultDatabaseURL},
		{"legacy postgres scheme", "postgres://u:p@db:5432/app", "postgresql://u:p@db:5432/app"},
		{"postgresql kept", "postgresql://u:p@db:5432/app", "postgresql://u:p@db:5432/app"},
		{"sqlite kept", "sqlite:///local.db", "sqlite:///local.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDatabaseURL(tt.raw))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "REDIS_URL", "CACHE_TTL_SECONDS", "LOG_LEVEL", "APP_ENV",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_SERVICE_NAME", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, float64(20), cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, "starwars-api", cfg.ServiceName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://app@localhost/app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "postgresql://app@localhost/app", cfg.DatabaseURL)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}
