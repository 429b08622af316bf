package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Storage backends. DatabaseURL wins over RedisAddr, which wins over
	// PatientsFile; with none set, records live in process memory.
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	PatientsFile  string

	// Slot generation parameters. Defaults match the documented canonical
	// behavior: three candidates within a week, on business hours.
	SlotCount      int
	SlotWindowDays int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		PatientsFile:   getEnv("PATIENTS_FILE", ""),
		SlotCount:      getEnvAsInt("SLOT_COUNT", 3),
		SlotWindowDays: getEnvAsInt("SLOT_WINDOW_DAYS", 7),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
