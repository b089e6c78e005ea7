package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the driver looks for when the
// PARSEC_SE_CONFIG environment variable is not set.
const DefaultPath = "sedriver.yaml"

// EnvPath names the environment variable overriding the config file path.
const EnvPath = "PARSEC_SE_CONFIG"

// DefaultAuthName is the authentication identity the driver presents to
// the remote service.
const DefaultAuthName = "Parsec SE Driver"

// DefaultTimeoutSeconds bounds each remote round-trip.
const DefaultTimeoutSeconds = 5

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file is not an error: the driver must come up on
// defaults alone, since the host runtime ships no deployment files for it.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from the path named by PARSEC_SE_CONFIG,
// falling back to DefaultPath.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

func defaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{Policy: PolicyDefault},
		Client: ClientConfig{
			AuthName:       DefaultAuthName,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) {
	if policy := os.Getenv("PARSEC_SE_POLICY"); policy != "" {
		cfg.Provider.Policy = ProviderPolicy(policy)
	}
	if name := os.Getenv("PARSEC_SE_AUTH_NAME"); name != "" {
		cfg.Client.AuthName = name
	}
	if timeout := os.Getenv("PARSEC_SE_TIMEOUT"); timeout != "" {
		if n, err := strconv.Atoi(timeout); err == nil {
			cfg.Client.TimeoutSeconds = n
		}
	}
	if rps := os.Getenv("PARSEC_SE_RATE_LIMIT_RPS"); rps != "" {
		if n, err := strconv.Atoi(rps); err == nil {
			cfg.RateLimit.RequestsPerSecond = n
		}
	}
	if burst := os.Getenv("PARSEC_SE_RATE_LIMIT_BURST"); burst != "" {
		if n, err := strconv.Atoi(burst); err == nil {
			cfg.RateLimit.Burst = n
		}
	}

	// Logging overrides
	if level := os.Getenv("PARSEC_SE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("PARSEC_SE_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if file := os.Getenv("PARSEC_SE_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	switch cfg.Provider.Policy {
	case PolicyDefault, PolicyTPM, PolicyPKCS11:
	case "":
		cfg.Provider.Policy = PolicyDefault
	default:
		return fmt.Errorf("provider.policy must be 'default', 'tpm' or 'pkcs11', got '%s'", cfg.Provider.Policy)
	}

	if cfg.Client.AuthName == "" {
		cfg.Client.AuthName = DefaultAuthName
	}
	if cfg.Client.TimeoutSeconds <= 0 {
		cfg.Client.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if cfg.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second cannot be negative")
	}
	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = cfg.RateLimit.RequestsPerSecond
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info" // default
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json" // default
	}

	return nil
}
