package handlers

import (
	"time"

	"densityhq/callisto/pkg/audit/recorder"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/settings"
	"densityhq/callisto/pkg/telemetry/metrics"
	"densityhq/callisto/pkg/validation"
)

// Deps carries the shared collaborators handlers need. Recorder, Metrics,
// and Settings may be nil when the corresponding subsystem is disabled.
type Deps struct {
	// Validator runs structural and dependency passes.
	Validator *validation.Validator

	// DefaultMode is the tier used when requests omit a mode.
	DefaultMode params.Mode

	// Debounce is the realtime debounce window advertised to editors.
	Debounce time.Duration

	// Recorder persists audit records for each validation request.
	Recorder *recorder.Recorder

	// Metrics observes validation outcomes and durations.
	Metrics *metrics.Collector

	// Settings persists editor preferences.
	Settings *settings.Store
}
