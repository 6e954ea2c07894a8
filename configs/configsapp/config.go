package configsapp

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	AppName     = "I Love Hip Hop JA"
	DefaultPort = "8000"
)

// Config holds the settings read once at startup.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	Env          string
	LogLevel     string
}

// Load reads an optional env file and then the process environment.
// A missing env file is not an error; neither is a missing database setting.
// An env file that exists but cannot be read or parsed is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", ""),
		Port:         getEnv("PORT", DefaultPort),
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", ""),
	}, nil
}

// DatabaseURLSet reports whether a connection string was configured.
func (c *Config) DatabaseURLSet() bool {
	return c != nil && c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
