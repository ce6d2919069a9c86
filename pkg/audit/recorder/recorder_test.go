package recorder

import (
	"context"
	"testing"
	"time"

	"densityhq/callisto/pkg/audit"
	"densityhq/callisto/pkg/audit/storage"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/validation"
)

func waitForCount(t *testing.T, store audit.Store, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		count, err := store.Count(context.Background(), nil)
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	count, _ := store.Count(context.Background(), nil)
	t.Fatalf("store count = %d, want %d", count, want)
}

func TestRecorder_RecordValidation(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	r := NewRecorder(store, nil)
	defer r.Close()

	ps := &params.ParameterSet{MinClusterSize: params.Ptr(10)}
	result := validation.Result{
		Valid: false,
		Errors: map[string][]string{
			"minSamples": {"minSamples must be between 1 and 100"},
		},
		Warnings:    []string{"a warning"},
		Suggestions: []string{"a suggestion"},
	}
	r.RecordValidation("req-1", "api", params.ModeAdvanced, ps, result, 75*time.Microsecond)

	waitForCount(t, store, 1)

	records, err := store.Query(context.Background(), nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	got := records[0]
	if got.ID == "" {
		t.Error("record has no UUID")
	}
	if got.RequestID != "req-1" || got.Source != "api" || got.Mode != "advanced" {
		t.Errorf("record = %+v", got)
	}
	if got.Outcome != audit.OutcomeInvalid {
		t.Errorf("Outcome = %q, want invalid", got.Outcome)
	}
	if got.ErrorCount != 1 || got.WarningCount != 1 || got.SuggestionCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", got.ErrorCount, got.WarningCount, got.SuggestionCount)
	}
	if got.Params != `{"minClusterSize":10}` {
		t.Errorf("Params = %q", got.Params)
	}
}

func TestRecorder_RecordFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	r := NewRecorder(store, nil)
	defer r.Close()

	r.RecordFailure("req-2", "api", params.ModeBasic, nil, time.Millisecond)

	waitForCount(t, store, 1)

	records, _ := store.Query(context.Background(), nil)
	if records[0].Outcome != audit.OutcomeError {
		t.Errorf("Outcome = %q, want error", records[0].Outcome)
	}
	if records[0].Params != "{}" {
		t.Errorf("Params = %q, want empty object for nil set", records[0].Params)
	}
}

func TestRecorder_DisabledRecordsNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	r := NewRecorder(store, &Config{Enabled: false})
	defer r.Close()

	r.RecordValidation("req-3", "cli", params.ModeBasic, &params.ParameterSet{}, validation.Result{Valid: true}, time.Microsecond)

	time.Sleep(20 * time.Millisecond)
	count, _ := store.Count(context.Background(), nil)
	if count != 0 {
		t.Errorf("count = %d, want 0 when disabled", count)
	}
}

func TestRecorder_CloseFlushesPending(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	r := NewRecorder(store, nil)
	for i := 0; i < 20; i++ {
		r.RecordValidation("req", "api", params.ModeBasic, &params.ParameterSet{}, validation.Result{Valid: true}, time.Microsecond)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	count, _ := store.Count(context.Background(), nil)
	if count != 20 {
		t.Errorf("count after Close = %d, want 20", count)
	}
}
