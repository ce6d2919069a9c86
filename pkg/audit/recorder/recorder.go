package recorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"densityhq/callisto/pkg/audit"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/validation"
)

// Config contains configuration for the audit recorder.
type Config struct {
	// Enabled enables audit recording.
	Enabled bool

	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout is the timeout for writing a record to storage.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder records validation requests for the audit trail.
// Writes happen asynchronously so validation latency never waits on storage.
type Recorder struct {
	store      audit.Store
	config     *Config
	recordChan chan *audit.Record
	wg         sync.WaitGroup
	done       chan struct{}
	closeOnce  sync.Once
	logger     *slog.Logger
}

// NewRecorder creates a new audit recorder with the provided storage backend
// and configuration.
func NewRecorder(store audit.Store, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}
	if config.AsyncBuffer <= 0 {
		config.AsyncBuffer = 1000
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 5 * time.Second
	}

	r := &Recorder{
		store:      store,
		config:     config,
		recordChan: make(chan *audit.Record, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "audit.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("audit recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
	)

	return r
}

// RecordValidation enqueues an audit record for a completed validation pass.
// The method returns immediately; a full queue drops the record with a log
// line rather than blocking the caller.
func (r *Recorder) RecordValidation(requestID, source string, mode params.Mode, ps *params.ParameterSet, result validation.Result, duration time.Duration) {
	if !r.config.Enabled {
		return
	}

	record := buildRecord(requestID, source, mode, ps, result, duration)
	r.enqueue(record)
}

// RecordFailure enqueues an audit record for a validation pass that failed
// internally.
func (r *Recorder) RecordFailure(requestID, source string, mode params.Mode, ps *params.ParameterSet, duration time.Duration) {
	if !r.config.Enabled {
		return
	}

	record := buildRecord(requestID, source, mode, ps, validation.InternalErrorResult(), duration)
	record.Outcome = audit.OutcomeError
	r.enqueue(record)
}

func (r *Recorder) enqueue(record *audit.Record) {
	select {
	case r.recordChan <- record:
	default:
		r.logger.Warn("audit record queue full, dropping record",
			"record_id", record.ID,
			"request_id", record.RequestID,
		)
	}
}

// buildRecord assembles an audit record from a validation pass.
func buildRecord(requestID, source string, mode params.Mode, ps *params.ParameterSet, result validation.Result, duration time.Duration) *audit.Record {
	var paramsJSON []byte
	if ps != nil {
		paramsJSON, _ = json.Marshal(ps)
	} else {
		paramsJSON = []byte("{}")
	}

	outcome := audit.OutcomeValid
	if !result.Valid {
		outcome = audit.OutcomeInvalid
	}

	errorCount := 0
	for _, msgs := range result.Errors {
		errorCount += len(msgs)
	}

	return &audit.Record{
		ID:              uuid.NewString(),
		RequestID:       requestID,
		RecordedAt:      time.Now().UTC(),
		Mode:            string(mode),
		Source:          source,
		Params:          string(paramsJSON),
		Outcome:         outcome,
		ErrorCount:      errorCount,
		WarningCount:    len(result.Warnings),
		SuggestionCount: len(result.Suggestions),
		Duration:        duration,
	}
}

// worker drains the record channel into storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.recordChan:
			r.write(record)
		case <-r.done:
			// Drain remaining records before exiting.
			for {
				select {
				case record := <-r.recordChan:
					r.write(record)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) write(record *audit.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.store.Store(ctx, record); err != nil {
		r.logger.Error("failed to write audit record",
			"record_id", record.ID,
			"error", err,
		)
	}
}

// Close flushes pending records and stops the background worker.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
	})
	r.wg.Wait()
	return nil
}
