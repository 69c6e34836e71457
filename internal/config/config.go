package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Rates    RatesConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// RatesConfig holds exchange-rate client configuration.
// FernetKey encrypts the provider token at rest and must be a base64-encoded
// 32-byte key when set.
type RatesConfig struct {
	BaseURL   string
	FernetKey string
}

// SnapshotConfig holds the optional automatic snapshot schedule.
// Schedule is a cron spec; empty disables the scheduler.
type SnapshotConfig struct {
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/patrimonio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Rates: RatesConfig{
			BaseURL:   getEnv("RATES_BASE_URL", "https://economia.awesomeapi.com.br"),
			FernetKey: getEnv("RATES_FERNET_KEY", ""),
		},
		Snapshot: SnapshotConfig{
			Schedule: getEnv("AUTO_SNAPSHOT_SCHEDULE", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
