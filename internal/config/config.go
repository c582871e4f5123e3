package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all environment-driven settings for the portal API.
type Config struct {
	HTTPAddr string

	// DBDriver is "mysql" or "sqlite".
	DBDriver string
	DBDSN    string

	// RedisAddr enables the read-through content cache when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Ingestion rate limiting. The algorithm is fixed; only the knobs move.
	RateLimitWindow   time.Duration
	RateLimitMax      int
	RateLimitBlockFor time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		DBDriver:          getenv("DB_DRIVER", "mysql"),
		DBDSN:             getenv("DB_DSN", "eduportal:eduportal@tcp(localhost:3306)/eduportal?parseTime=true"),
		RedisAddr:         getenv("REDIS_ADDR", ""),
		RedisPassword:     getenv("REDIS_PASSWORD", ""),
		RedisDB:           getenvInt("REDIS_DB", 0),
		RateLimitWindow:   getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:      getenvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitBlockFor: getenvDuration("RATE_LIMIT_BLOCK_DURATION", 5*time.Minute),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
