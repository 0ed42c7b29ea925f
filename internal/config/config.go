// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the SafeHaven backend.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the SQLite database file backing the local store.
	DBPath string
	// LogDir is the directory for rotated log files.
	LogDir string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults under ~/.safehaven.
func Load() (Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		Addr:   getEnv("SAFEHAVEN_ADDR", ":8080"),
		DBPath: os.Getenv("SAFEHAVEN_DB"),
		LogDir: os.Getenv("SAFEHAVEN_LOG_DIR"),
	}

	if cfg.DBPath == "" || cfg.LogDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dataDir := filepath.Join(homeDir, ".safehaven")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return Config{}, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dataDir, "safehaven.db")
		}
		if cfg.LogDir == "" {
			cfg.LogDir = filepath.Join(dataDir, "logs")
		}
	}

	return cfg, nil
}

// getEnv returns the environment value for key or the fallback when the
// variable is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
