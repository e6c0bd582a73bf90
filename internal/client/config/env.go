package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envAPIBaseURL     = "PIXELMART_API_URL"
	envDatabasePath   = "PIXELMART_DB_PATH"
	envRequestTimeout = "PIXELMART_REQUEST_TIMEOUT"
	envLogLevel       = "PIXELMART_LOG_LEVEL"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first; a missing file is not an
// error. PIXELMART_REQUEST_TIMEOUT accepts time.ParseDuration syntax
// ("15s", "2m"); a malformed value is ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
