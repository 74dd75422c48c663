package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile     string        // Path to SQLite database file (default: ./incubator.db)
	DBConnectRetries int           // Startup readiness attempts before giving up (default: 5)
	DBConnectDelay   time.Duration // Fixed delay between readiness attempts (default: 5s)

	SecretKey  string // Required: signs the session cookie
	PepperFile string // Path to the password hashing pepper file (default: ./pepper)

	SessionLifetime time.Duration // Fixed session window (default: 1h)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session purge interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:     getEnvOrDefault("INCUBATOR_DATABASE_FILE", "incubator.db"),
		DBConnectRetries: getEnvIntOrDefault("INCUBATOR_DB_CONNECT_RETRIES", 5),
		DBConnectDelay:   getEnvDurationOrDefault("INCUBATOR_DB_CONNECT_DELAY", 5*time.Second),

		SecretKey:  os.Getenv("INCUBATOR_SECRET_KEY"),
		PepperFile: getEnvOrDefault("INCUBATOR_PEPPER_FILE", "pepper"),

		SessionLifetime: getEnvDurationOrDefault("INCUBATOR_SESSION_LIFETIME", 1*time.Hour),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
