package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDatabaseURL is used when DATABASE_URL is unset: a local sqlite file.
const DefaultDatabaseURL = "sqlite:////tmp/test.db"

type Config struct {
	Port               string   // Listening port, bound on all interfaces
	DatabaseURL        string   // Normalized connection string (see NormalizeDatabaseURL)
	RedisURL           string   // Optional read cache; empty disables it
	CacheTTL           time.Duration
	LogLevel           string
	AppEnv             string   // development or production
	RateLimitRPS       float64  // Requests per second per client IP; <= 0 disables limiting
	RateLimitBurst     int      // Burst size for rate limiting
	CORSAllowedOrigins []string // "*" allows every origin
	TrustedProxies     []string // Proxies whose X-Forwarded-For is honored; empty trusts none
	OTLPEndpoint       string   // Tracing is disabled when empty
	ServiceName        string
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "3000"),
		DatabaseURL:        NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		RedisURL:           getEnv("REDIS_URL", ""),
		CacheTTL:           time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AppEnv:             getEnv("APP_ENV", "development"),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES", nil),
		OTLPEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:        getEnv("OTEL_SERVICE_NAME", "starwars-api"),
	}
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// NormalizeDatabaseURL applies the default database and rewrites the legacy
// postgres:// scheme to postgresql://.
func NormalizeDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultDatabaseURL
	}
	if strings.HasPrefix(raw, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	return raw
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
