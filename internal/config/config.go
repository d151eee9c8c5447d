// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server process.
type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults for a local
// single-user deployment.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		DBPath:          "homedash.db",
		LogLevel:        "info",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. A .env file in the working directory is
// loaded first if present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("HOMEDASH_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HOMEDASH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HOMEDASH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if d := durationEnv("HOMEDASH_READ_TIMEOUT"); d > 0 {
		cfg.ReadTimeout = d
	}
	if d := durationEnv("HOMEDASH_WRITE_TIMEOUT"); d > 0 {
		cfg.WriteTimeout = d
	}
	if d := durationEnv("HOMEDASH_SHUTDOWN_TIMEOUT"); d > 0 {
		cfg.ShutdownTimeout = d
	}
	return cfg
}

func durationEnv(name string) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
