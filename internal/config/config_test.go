package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// A missing file must yield a usable default configuration.
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.Policy != PolicyDefault {
		t.Errorf("policy = %q, want %q", cfg.Provider.Policy, PolicyDefault)
	}
	if cfg.Client.AuthName != "Parsec SE Driver" {
		t.Errorf("auth name = %q", cfg.Client.AuthName)
	}
	if cfg.Client.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Client.TimeoutSeconds)
	}
	if cfg.RateLimit.RequestsPerSecond != 0 {
		t.Errorf("rate limit = %d, want 0 (disabled)", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadFile(t *testing.T) {
	configContent := `
provider:
  policy: "tpm"

client:
  auth_name: "test-driver"
  timeout_seconds: 10

rate_limit:
  requests_per_second: 100
  burst: 200

logging:
  level: "debug"
  format: "text"
  file: "/var/log/sedriver.log"
  max_size_mb: 10
  max_backups: 3
  max_age_days: 14
`
	path := filepath.Join(t.TempDir(), "sedriver.yaml")
	if err := os.WriteFile(path, []byte(configContent), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.Policy != PolicyTPM {
		t.Errorf("policy = %q, want tpm", cfg.Provider.Policy)
	}
	if cfg.Client.AuthName != "test-driver" {
		t.Errorf("auth name = %q", cfg.Client.AuthName)
	}
	if got := cfg.Client.Timeout(); got != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", got)
	}
	if cfg.RateLimit.RequestsPerSecond != 100 || cfg.RateLimit.Burst != 200 {
		t.Errorf("rate limit = %d/%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	if cfg.Logging.File != "/var/log/sedriver.log" {
		t.Errorf("log file = %q", cfg.Logging.File)
	}
	if cfg.Logging.MaxSizeMB != 10 || cfg.Logging.MaxBackups != 3 || cfg.Logging.MaxAgeDays != 14 {
		t.Errorf("rotation = %d/%d/%d", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PARSEC_SE_POLICY", "pkcs11")
	t.Setenv("PARSEC_SE_AUTH_NAME", "env-driver")
	t.Setenv("PARSEC_SE_TIMEOUT", "30")
	t.Setenv("PARSEC_SE_RATE_LIMIT_RPS", "50")
	t.Setenv("PARSEC_SE_LOG_LEVEL", "warn")
	t.Setenv("PARSEC_SE_LOG_FORMAT", "text")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.Policy != PolicyPKCS11 {
		t.Errorf("policy = %q, want pkcs11", cfg.Provider.Policy)
	}
	if cfg.Client.AuthName != "env-driver" {
		t.Errorf("auth name = %q", cfg.Client.AuthName)
	}
	if cfg.Client.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want 30", cfg.Client.TimeoutSeconds)
	}
	if cfg.RateLimit.RequestsPerSecond != 50 {
		t.Errorf("rps = %d, want 50", cfg.RateLimit.RequestsPerSecond)
	}
	// Burst defaults to the rate when the limiter is enabled.
	if cfg.RateLimit.Burst != 50 {
		t.Errorf("burst = %d, want 50", cfg.RateLimit.Burst)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestEnvOverrideIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("PARSEC_SE_TIMEOUT", "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Client.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want default 5", cfg.Client.TimeoutSeconds)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown policy",
			content: `
provider:
  policy: "hsm9000"
`,
		},
		{
			name: "negative rate limit",
			content: `
rate_limit:
  requests_per_second: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sedriver.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
client:
  timeout_seconds: 42
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Client.TimeoutSeconds != 42 {
		t.Errorf("timeout = %d, want 42", cfg.Client.TimeoutSeconds)
	}
}
