// Package logging provides structured logging for Callisto built on log/slog.
//
// Setup installs a configured logger as the process-wide slog default, so
// components can either take an explicit *Logger or fall back to
// slog.Default().With("component", ...).
//
// Context-aware variants (InfoContext and friends) pull the request ID and
// editing mode out of the context, so handler logs correlate with audit
// records without threading fields through every call.
package logging
