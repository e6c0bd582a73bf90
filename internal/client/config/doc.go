// Package config loads runtime configuration for the Pixelmart CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with .env support via godotenv (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the marketplace REST backend
//	-d string   path of the local sqlite database file
//	-l string   log level (debug, info, warn, error)
//	-t int      HTTP request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://market.example.com",
//	  "database_path": "/var/lib/pixelmart/client.db",
//	  "log_level": "debug",
//	  "request_timeout": "15s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings of the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
