package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return Default()
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate(Default()) = %v, want nil", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty listen address",
			mutate:    func(c *Config) { c.Server.ListenAddress = "" },
			wantField: "server.listen_address",
		},
		{
			name:      "negative read timeout",
			mutate:    func(c *Config) { c.Server.ReadTimeout = -1 },
			wantField: "server.read_timeout",
		},
		{
			name:      "oversized header limit",
			mutate:    func(c *Config) { c.Server.MaxHeaderBytes = 11 * 1024 * 1024 },
			wantField: "server.max_header_bytes",
		},
		{
			name:      "unknown default mode",
			mutate:    func(c *Config) { c.Validation.DefaultMode = "expert" },
			wantField: "validation.default_mode",
		},
		{
			name:      "negative debounce",
			mutate:    func(c *Config) { c.Validation.Debounce = -1 },
			wantField: "validation.debounce",
		},
		{
			name:      "unknown audit backend",
			mutate:    func(c *Config) { c.Audit.Backend = "postgres" },
			wantField: "audit.backend",
		},
		{
			name: "sqlite backend without path",
			mutate: func(c *Config) {
				c.Audit.Backend = "sqlite"
				c.Audit.SQLite.Path = ""
			},
			wantField: "audit.sqlite.path",
		},
		{
			name:      "bad cron expression",
			mutate:    func(c *Config) { c.Audit.Retention.PruneSchedule = "every day at dawn" },
			wantField: "audit.retention.prune_schedule",
		},
		{
			name:      "empty settings path",
			mutate:    func(c *Config) { c.Settings.Path = "" },
			wantField: "settings.path",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "trace" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "logfmt" },
			wantField: "telemetry.logging.format",
		},
		{
			name:      "metrics path without slash",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "non-positive histogram bucket",
			mutate:    func(c *Config) { c.Telemetry.Metrics.DurationBuckets = []float64{0.001, 0} },
			wantField: "telemetry.metrics.duration_buckets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			verr, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want ValidationError", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not include field %s", verr.Errors, tt.wantField)
			}
		})
	}
}

func TestValidationError_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ListenAddress = ""
	cfg.Validation.DefaultMode = "expert"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Error() = %q, want a 2-error summary", err.Error())
	}
}
