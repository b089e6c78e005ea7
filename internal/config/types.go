package config

import "time"

// Config represents the complete driver runtime configuration.
type Config struct {
	Provider  ProviderConfig  `yaml:"provider"`
	Client    ClientConfig    `yaml:"client"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ProviderPolicy selects which remote provider the driver binds to at
// initialization. The modes are mutually exclusive.
type ProviderPolicy string

const (
	// PolicyDefault binds any provider except the core/software fallback.
	PolicyDefault ProviderPolicy = "default"
	// PolicyTPM binds only the hardware (TPM) provider.
	PolicyTPM ProviderPolicy = "tpm"
	// PolicyPKCS11 binds only the PKCS#11 token provider.
	PolicyPKCS11 ProviderPolicy = "pkcs11"
)

// ProviderConfig defines provider selection.
type ProviderConfig struct {
	Policy ProviderPolicy `yaml:"policy"`
}

// ClientConfig defines remote client parameters.
type ClientConfig struct {
	AuthName       string `yaml:"auth_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-call timeout as a duration.
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RateLimitConfig defines the optional client-side limiter on remote
// round-trips. Zero requests per second disables it.
type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	Burst             int `yaml:"burst"`
}

// LoggingConfig defines logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	// File enables rotating file output; empty logs to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}
