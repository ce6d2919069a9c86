package storage

import (
	"context"
	"sort"
	"sync"

	"densityhq/callisto/pkg/audit"
)

// MemoryStore implements audit.Store with an in-memory slice.
// It is intended for development and tests; records are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*audit.Record
	closed  bool
}

// NewMemoryStore creates an empty in-memory audit store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Store persists an audit record.
func (s *MemoryStore) Store(ctx context.Context, record *audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return audit.NewStorageError("memory", "store", errClosed)
	}

	clone := *record
	s.records = append(s.records, &clone)
	return nil
}

// Query retrieves records matching the query filters, newest first.
func (s *MemoryStore) Query(ctx context.Context, query *audit.Query) ([]*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, audit.NewStorageError("memory", "query", errClosed)
	}

	var matched []*audit.Record
	for _, r := range s.records {
		if matches(r, query) {
			matched = append(matched, r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RecordedAt.After(matched[j].RecordedAt)
	})

	matched = paginate(matched, query)

	out := make([]*audit.Record, len(matched))
	for i, r := range matched {
		clone := *r
		out[i] = &clone
	}
	return out, nil
}

// Count returns the number of records matching the query filters.
func (s *MemoryStore) Count(ctx context.Context, query *audit.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, audit.NewStorageError("memory", "count", errClosed)
	}

	var n int64
	for _, r := range s.records {
		if matches(r, query) {
			n++
		}
	}
	return n, nil
}

// Delete removes records matching the query filters.
func (s *MemoryStore) Delete(ctx context.Context, query *audit.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, audit.NewStorageError("memory", "delete", errClosed)
	}

	var kept []*audit.Record
	var deleted int64
	for _, r := range s.records {
		if matches(r, query) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return deleted, nil
}

// Ping reports whether the store is usable.
func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return audit.NewStorageError("memory", "ping", errClosed)
	}
	return nil
}

// Close marks the store as closed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.records = nil
	return nil
}

// matches reports whether a record satisfies all query filters.
// A nil query matches everything.
func matches(r *audit.Record, q *audit.Query) bool {
	if q == nil {
		return true
	}
	if q.StartTime != nil && r.RecordedAt.Before(*q.StartTime) {
		return false
	}
	if q.EndTime != nil && r.RecordedAt.After(*q.EndTime) {
		return false
	}
	if q.Mode != "" && r.Mode != q.Mode {
		return false
	}
	if q.Source != "" && r.Source != q.Source {
		return false
	}
	if q.Outcome != "" && r.Outcome != q.Outcome {
		return false
	}
	return true
}

// paginate applies offset and limit to an already sorted result set.
func paginate(records []*audit.Record, q *audit.Query) []*audit.Record {
	if q == nil {
		return records
	}
	if q.Offset > 0 {
		if q.Offset >= len(records) {
			return nil
		}
		records = records[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(records) {
		records = records[:q.Limit]
	}
	return records
}
