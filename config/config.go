package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Management API
	Endpoint string
	Username string
	Password string
	Timeout  time.Duration
	VHost    string

	// Metrics
	EnableMetrics bool

	// Logging
	LogLevel string

	Version string
}

// LoadConfig loads configuration from .env file, environment variables, or defaults
// Priority: environment variables > .env file > default values
func LoadConfig(version string) *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	return &Config{
		Endpoint: getEnv("RMQADMIN_ENDPOINT", "http://localhost:15672/api"),
		Username: getEnv("RMQADMIN_USERNAME", "guest"),
		Password: getEnv("RMQADMIN_PASSWORD", "guest"),
		Timeout:  time.Duration(getEnvAsUint32("RMQADMIN_TIMEOUT_SECONDS", 30)) * time.Second,
		VHost:    getEnv("RMQADMIN_VHOST", "/"),

		EnableMetrics: getEnvAsBool("RMQADMIN_ENABLE_METRICS", false),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		Version:  version,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsUint32(key string, defaultValue uint32) uint32 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid value for %s: %s, using default: %d\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return uint32(value)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid value for %s: %s, using default: %t\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
