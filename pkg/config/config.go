package config

import "time"

// Config is the root configuration structure for Callisto.
// It contains all configuration sections for the HTTP server, validation
// engine defaults, audit trail, settings store, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Validation contains defaults for the validation engine that are
	// surfaced to editor clients: default editing mode and the realtime
	// debounce window.
	Validation ValidationConfig `yaml:"validation"`

	// Audit contains configuration for the validation audit trail including
	// backend selection and retention settings.
	Audit AuditConfig `yaml:"audit"`

	// Settings contains configuration for the persisted settings store.
	Settings SettingsConfig `yaml:"settings"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Watch enables hot reloading when this configuration file changes.
	Watch bool `yaml:"watch"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 15s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. A zero or negative value means no timeout.
	// Default: 15s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If IdleTimeout is zero, ReadTimeout is used.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// If requests are still in-flight after this timeout, the server will
	// force shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// RequestTimeout bounds handler execution per request.
	// Default: 10s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// CORS contains Cross-Origin Resource Sharing configuration. Editor
	// frontends are served from a separate origin during development.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains Cross-Origin Resource Sharing configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins lists origins allowed to call the API.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods lists allowed HTTP methods for cross-origin requests.
	// Default: ["GET", "POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders lists allowed request headers.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the preflight response cache lifetime in seconds.
	// Default: 3600 (1 hour)
	MaxAge int `yaml:"max_age"`
}

// ValidationConfig contains validation engine defaults.
type ValidationConfig struct {
	// DefaultMode is the editing mode assumed when a request omits one.
	// Must be one of: "basic", "advanced", "super-advanced".
	// Default: "basic"
	DefaultMode string `yaml:"default_mode"`

	// Debounce is the quiet period the realtime engine waits after the last
	// parameter edit before running a validation pass. It is also advertised
	// to editor clients through the capabilities endpoint.
	// Default: 300ms
	Debounce time.Duration `yaml:"debounce"`
}

// AuditConfig contains configuration for the validation audit trail.
type AuditConfig struct {
	// Enabled controls whether validation requests are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Backend selects the audit storage backend: "sqlite" or "memory".
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLite contains configuration for the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Retention contains configuration for automatic pruning of old records.
	Retention RetentionConfig `yaml:"retention"`
}

// SQLiteConfig contains configuration for the SQLite audit backend.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "data/audit.db"
	Path string `yaml:"path"`

	// MaxOpenConns limits the connection pool size.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns limits idle connections in the pool.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables write-ahead logging.
	// Default: true
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is how long a query waits when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// RetentionConfig contains audit retention settings.
type RetentionConfig struct {
	// Days is the maximum age of audit records before pruning.
	// Zero disables age-based pruning.
	// Default: 30
	Days int `yaml:"days"`

	// MaxRecords caps the total number of stored records. When exceeded,
	// the oldest records are pruned first. Zero disables the cap.
	// Default: 100000
	MaxRecords int64 `yaml:"max_records"`

	// PruneSchedule is a cron expression controlling when pruning runs.
	// An empty schedule disables the scheduler.
	// Default: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string `yaml:"prune_schedule"`
}

// SettingsConfig contains configuration for the persisted settings store.
type SettingsConfig struct {
	// Path is the settings database file path.
	// Default: "data/settings.db"
	Path string `yaml:"path"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes the source file and line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path where metrics are exposed.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// DurationBuckets are histogram buckets for validation pass duration,
	// in seconds. Validation is pure in-memory computation, so the buckets
	// sit well below typical HTTP latencies.
	DurationBuckets []float64 `yaml:"duration_buckets"`
}
