package retention

import (
	"context"
	"testing"

	"densityhq/callisto/pkg/audit/storage"
)

func TestScheduler_StartAndStop(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	p := NewPruner(store, &Config{RetentionDays: 30, PruneSchedule: "0 3 * * *"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !p.scheduler.IsRunning() {
		t.Error("scheduler not running after Start")
	}
	if p.NextPruning() == nil {
		t.Error("NextPruning() = nil, want a scheduled time")
	}

	p.Stop()
	if p.scheduler.IsRunning() {
		t.Error("scheduler still running after Stop")
	}
}

func TestScheduler_EmptyScheduleIsNoop(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	p := NewPruner(store, &Config{PruneSchedule: ""})

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if p.scheduler.IsRunning() {
		t.Error("scheduler running despite empty schedule")
	}
}

func TestScheduler_InvalidScheduleFails(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	p := NewPruner(store, &Config{PruneSchedule: "not a cron expression"})

	if err := p.Start(context.Background()); err == nil {
		t.Error("Start() = nil, want error for invalid schedule")
	}
}
