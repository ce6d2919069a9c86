package audit

import (
	"context"
	"time"
)

// Record represents the audit trail entry for a single validation request.
// It captures what was validated, in which mode, and how the pass concluded,
// without storing the validation messages themselves: those are recomputable
// from the parameter snapshot.
type Record struct {
	// Identity
	ID        string `json:"id"`         // UUID v4
	RequestID string `json:"request_id"` // From the HTTP layer, if any

	// Timestamps
	RecordedAt time.Time `json:"recorded_at"`

	// Request
	Mode   string `json:"mode"`   // Editing mode the pass ran under
	Source string `json:"source"` // "api" or "cli"
	Params string `json:"params"` // Submitted parameter set, JSON

	// Outcome
	Outcome         string        `json:"outcome"` // "valid", "invalid", "error"
	ErrorCount      int           `json:"error_count"`
	WarningCount    int           `json:"warning_count"`
	SuggestionCount int           `json:"suggestion_count"`
	Duration        time.Duration `json:"duration"`
}

// Validation outcomes stored on a Record.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Query defines filter parameters for querying audit records.
type Query struct {
	// Time range, inclusive on both ends.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Filters
	Mode    string `json:"mode,omitempty"`
	Source  string `json:"source,omitempty"`
	Outcome string `json:"outcome,omitempty"`

	// Pagination
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Store defines the interface for audit storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Store persists an audit record.
	Store(ctx context.Context, record *Record) error

	// Query retrieves records matching the query filters, newest first.
	// Returns an empty slice if no records match.
	Query(ctx context.Context, query *Query) ([]*Record, error)

	// Count returns the number of records matching the query filters.
	Count(ctx context.Context, query *Query) (int64, error)

	// Delete removes records matching the query filters and returns the
	// number deleted. Used for retention enforcement.
	Delete(ctx context.Context, query *Query) (int64, error)

	// Ping verifies the backend is reachable. Used by readiness probes.
	Ping(ctx context.Context) error

	// Close releases any resources held by the backend.
	Close() error
}
