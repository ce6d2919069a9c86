package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Validation.DefaultMode != "basic" {
		t.Errorf("DefaultMode = %q, want basic", cfg.Validation.DefaultMode)
	}
	if cfg.Validation.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v, want 300ms", cfg.Validation.Debounce)
	}
	if cfg.Audit.Enabled {
		t.Error("audit should be disabled by default")
	}
	if cfg.Audit.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Audit.Backend)
	}
	if !cfg.Audit.SQLite.WALMode {
		t.Error("WALMode default should be true")
	}
	if !cfg.Server.CORS.Enabled || len(cfg.Server.CORS.AllowedOrigins) != 1 {
		t.Errorf("CORS defaults = %+v", cfg.Server.CORS)
	}
	if len(cfg.Telemetry.Metrics.DurationBuckets) == 0 {
		t.Error("DurationBuckets default missing")
	}
}

func TestApplyDefaults_DoesNotOverrideSetValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.ListenAddress = "0.0.0.0:9999"
	cfg.Validation.Debounce = 50 * time.Millisecond
	cfg.Audit.Backend = "sqlite"

	ApplyDefaults(cfg)

	if cfg.Server.ListenAddress != "0.0.0.0:9999" {
		t.Errorf("ListenAddress = %q, set value lost", cfg.Server.ListenAddress)
	}
	if cfg.Validation.Debounce != 50*time.Millisecond {
		t.Errorf("Debounce = %v, set value lost", cfg.Validation.Debounce)
	}
	if cfg.Audit.Backend != "sqlite" {
		t.Errorf("Backend = %q, set value lost", cfg.Audit.Backend)
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	listen := cfg.Server.ListenAddress
	debounce := cfg.Validation.Debounce
	origins := len(cfg.Server.CORS.AllowedOrigins)

	ApplyDefaults(cfg)

	if cfg.Server.ListenAddress != listen ||
		cfg.Validation.Debounce != debounce ||
		len(cfg.Server.CORS.AllowedOrigins) != origins {
		t.Error("second ApplyDefaults changed the configuration")
	}
}
