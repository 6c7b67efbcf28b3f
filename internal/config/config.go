package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Shift ShiftConfig
	HTTP  HTTPConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ShiftConfig holds the work-day boundaries uploads are classified
// against. Both values are HH:MM clock times.
type ShiftConfig struct {
	Start string
	End   string
}

type HTTPConfig struct {
	CORSAllowedOrigins []string
	UploadMaxBytes     int64
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Shift configuration
	config.Shift = ShiftConfig{
		Start: getEnv("SHIFT_START", "09:00"),
		End:   getEnv("SHIFT_END", "18:00"),
	}

	// HTTP configuration
	uploadMaxBytes, err := strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", "10485760"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %w", err)
	}

	config.HTTP = HTTPConfig{
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
		UploadMaxBytes:     uploadMaxBytes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !isClock(c.Shift.Start) {
		return fmt.Errorf("SHIFT_START must be a HH:MM clock time")
	}
	if !isClock(c.Shift.End) {
		return fmt.Errorf("SHIFT_END must be a HH:MM clock time")
	}
	if c.HTTP.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func isClock(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
