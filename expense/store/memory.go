// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (process lifetime only)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records []expense.Record
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append admits a single record at the end of the collection. Append-only:
// insertion order is the store order and is what stable sorts fall back to.
func (m *Memory) Append(_ context.Context, r expense.Record) error {
	if !r.Valid() {
		return expense.ErrInvalidRecord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// Snapshot returns a copy of the records. Callers own the returned slice;
// mutating it cannot reach the store.
func (m *Memory) Snapshot(_ context.Context) ([]expense.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]expense.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Reset clears the store.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}
