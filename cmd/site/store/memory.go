package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store keeping records in insertion order.
// It is the fallback source of truth while the database is unreachable
// and the whole truth when the service runs without one.
type Memory[T Record] struct {
	mu      sync.RWMutex
	records []T
	index   map[uuid.UUID]int
}

// NewMemory creates an empty in-memory store
func NewMemory[T Record]() *Memory[T] {
	return &Memory[T]{
		index: make(map[uuid.UUID]int),
	}
}

// Create appends a new record
func (m *Memory[T]) Create(ctx context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.index[record.Key()]; exists {
		return fmt.Errorf("create %s: %w", record.Key(), ErrDuplicate)
	}

	m.index[record.Key()] = len(m.records)
	m.records = append(m.records, record)
	return nil
}

// List returns all records in insertion order
func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Update replaces an existing record in place
func (m *Memory[T]) Update(ctx context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, exists := m.index[record.Key()]
	if !exists {
		return fmt.Errorf("update %s: %w", record.Key(), ErrNotFound)
	}

	m.records[pos] = record
	return nil
}

// Len returns the number of stored records
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
