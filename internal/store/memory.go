// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no DB_PATH is configured and in tests.
//
// Characteristics:
//   - Stores runs keyed by ID in a map, remembering insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex    // guards runs and order
	runs  map[string]*Run // keyed by Run.ID
	order []string        // IDs, oldest first
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*Run)}
}

// Save adds or replaces the run.
func (m *memory) Save(ctx context.Context, r *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	cp := *r
	m.runs[r.ID] = &cp
	return nil
}

// Get looks up a run by ID.
func (m *memory) Get(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

// Recent returns up to limit runs, newest first.
func (m *memory) Recent(ctx context.Context, limit int) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]Run, 0, limit)
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *m.runs[m.order[i]])
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
