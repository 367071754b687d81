// Package memory provides an in-memory payroll.Store.
package memory

import (
	"context"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records map[string]payroll.Record
}

func New() *Memory {
	return &Memory{records: make(map[string]payroll.Record)}
}

// Create adds a record. The id must be unused.
func (m *Memory) Create(_ context.Context, r payroll.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[r.ID]; ok {
		return payroll.ErrDuplicateEmployee
	}
	m.records[r.ID] = r
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (payroll.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return payroll.Record{}, payroll.ErrEmployeeNotFound
	}
	return r, nil
}

// Save replaces an existing record.
func (m *Memory) Save(_ context.Context, r payroll.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[r.ID]; !ok {
		return payroll.ErrEmployeeNotFound
	}
	m.records[r.ID] = r
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return payroll.ErrEmployeeNotFound
	}
	delete(m.records, id)
	return nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
