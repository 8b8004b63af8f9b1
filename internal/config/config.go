// Package config handles configuration for the admin console backend,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the simulated backend.
//
// Fields:
//   - DatabaseDSN: SQLite file backing the persistent key-value store.
//   - RequestDelay: artificial latency applied before every operation,
//     modeling the round trip of a real service.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidity: lifetime of issued session tokens.
//   - LogLevel: minimum log level name ("debug", "info", "warn", "error").
type Config struct {
	DatabaseDSN   string
	RequestDelay  time.Duration
	SecretKey     string
	TokenValidity time.Duration
	LogLevel      string
}

// LoadDefaults populates c with development defaults.
// NOTE: the secret is insecure and should be overridden outside of demos.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "admin.db"
	c.RequestDelay = 500 * time.Millisecond
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
