// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the replay runtime configuration. Values come from the
// environment (optionally seeded by a .env file); CLI flags override the
// debugger address.
type Config struct {
	// DebuggerAddress is the DevTools endpoint of the running editor.
	DebuggerAddress string

	// ElementTimeout bounds individual element lookups in the driver.
	ElementTimeout time.Duration
	// PreviewTimeout bounds the query preview round-trip.
	PreviewTimeout time.Duration
	// ExportTimeout bounds the export confirmation round-trip.
	ExportTimeout time.Duration
	// SuccessTimeout bounds waiting for the success dialog.
	SuccessTimeout time.Duration

	// LogLevel is the slog level name (debug/info/warn/error).
	LogLevel string
}

// Load reads configuration, using a .env file when present.
func Load() (*Config, error) {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DebuggerAddress: getEnvOrDefault("UIREPLAY_DEBUGGER_ADDRESS", "127.0.0.1:9222"),
		LogLevel:        getEnvOrDefault("UIREPLAY_LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ElementTimeout, err = durationEnv("UIREPLAY_ELEMENT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PreviewTimeout, err = durationEnv("UIREPLAY_PREVIEW_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.ExportTimeout, err = durationEnv("UIREPLAY_EXPORT_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SuccessTimeout, err = durationEnv("UIREPLAY_SUCCESS_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
