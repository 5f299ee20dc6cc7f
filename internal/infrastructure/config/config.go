package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Port               string
	MongoURI           string
	MongoDBName        string
	RedisURL           string
	CheckoutBaseURL    string
	CheckoutSessionTTL time.Duration
	RateLimitPerSecond float64
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "the_inner_circle_db"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CheckoutBaseURL:    getEnv("CHECKOUT_BASE_URL", "http://localhost:8080"),
		CheckoutSessionTTL: time.Minute * time.Duration(getEnvAsInt("CHECKOUT_SESSION_TTL_MINUTES", 60)),
		RateLimitPerSecond: float64(getEnvAsInt("RATE_LIMIT_PER_SECOND", 10)),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
