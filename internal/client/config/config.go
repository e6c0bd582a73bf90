package config

import "time"

// Config holds runtime settings for the Pixelmart CLI.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace REST backend.
//   - DatabasePath: path of the local sqlite file (session and offline cart).
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: minimum level for the structured logger (debug/info/warn/error).
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.DatabasePath = "pixelmart.db"
	c.LogLevel = "info"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env supported), a JSON file (if present) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
