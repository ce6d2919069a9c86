package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9090"
  read_timeout: 5s

validation:
  default_mode: "advanced"
  debounce: 150ms

audit:
  enabled: true
  backend: "sqlite"
  sqlite:
    path: "/tmp/audit.db"

telemetry:
  logging:
    level: "debug"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Validation.DefaultMode != "advanced" {
		t.Errorf("DefaultMode = %q", cfg.Validation.DefaultMode)
	}
	if cfg.Validation.Debounce != 150*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Validation.Debounce)
	}
	if !cfg.Audit.Enabled || cfg.Audit.Backend != "sqlite" {
		t.Errorf("Audit = %+v", cfg.Audit)
	}

	// Defaults fill the gaps.
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want default %v", cfg.Server.WriteTimeout, DefaultWriteTimeout)
	}
	if cfg.Audit.Retention.PruneSchedule != DefaultAuditRetentionSchedule {
		t.Errorf("PruneSchedule = %q, want default", cfg.Audit.Retention.PruneSchedule)
	}
	if cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want default json", cfg.Telemetry.Logging.Format)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
validation:
  default_mode: "expert"
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validation.default_mode") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "127.0.0.1:8080"
`)

	t.Setenv("CALLISTO_SERVER_LISTEN_ADDRESS", "0.0.0.0:7070")
	t.Setenv("CALLISTO_VALIDATION_DEFAULT_MODE", "super-advanced")
	t.Setenv("CALLISTO_VALIDATION_DEBOUNCE", "500ms")
	t.Setenv("CALLISTO_AUDIT_ENABLED", "true")
	t.Setenv("CALLISTO_TELEMETRY_METRICS_ENABLED", "false")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:7070" {
		t.Errorf("ListenAddress = %q, env override lost", cfg.Server.ListenAddress)
	}
	if cfg.Validation.DefaultMode != "super-advanced" {
		t.Errorf("DefaultMode = %q", cfg.Validation.DefaultMode)
	}
	if cfg.Validation.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Validation.Debounce)
	}
	if !cfg.Audit.Enabled {
		t.Error("Audit.Enabled override lost")
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled override lost")
	}
}

func TestLoadConfigWithEnvOverrides_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides(\"\") error = %v", err)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want default", cfg.Server.ListenAddress)
	}
	if cfg.Validation.DefaultMode != DefaultValidationMode {
		t.Errorf("DefaultMode = %q, want default", cfg.Validation.DefaultMode)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverrideFails(t *testing.T) {
	t.Setenv("CALLISTO_AUDIT_BACKEND", "postgres")

	if _, err := LoadConfigWithEnvOverrides(""); err == nil {
		t.Fatal("expected validation failure for unsupported backend")
	}
}
