package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BlogPath        string // Optional: mount path for the blog (default: root)
	AdminPath       string // Optional: administrative landing path segment (default: admin)
	BlogTitle       string // Optional: blog title shown on pages and in the feed
	BlogDescription string // Optional: blog description for the feed channel

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./blog.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		BlogPath:        os.Getenv("BLOG_PATH"),
		AdminPath:       getEnvOrDefault("BLOG_ADMIN_PATH", "admin"),
		BlogTitle:       getEnvOrDefault("BLOG_TITLE", "Inkpress Blog"),
		BlogDescription: getEnvOrDefault("BLOG_DESCRIPTION", "A blog powered by Inkpress"),

		DatabaseFile:        getEnvOrDefault("BLOG_DATABASE_FILE", "blog.db"),
		PepperFile:          getEnvOrDefault("BLOG_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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

	return defaultValue
}
