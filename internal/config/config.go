package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Env selects logger behavior ("production" uses a JSON encoder).
	Env string

	// DBPath is the SQLite database file. The host application decides
	// where this lives (app support directory on device).
	DBPath string

	// Locale is a BCP-47 tag used for collation when ordering sections
	// and tracker titles.
	Locale string
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:    getEnv("APP_ENV", "development"),
		DBPath: getEnv("DB_PATH", "habitstore.db"),
		Locale: getEnv("LOCALE", "en"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
