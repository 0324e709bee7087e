package session

import (
	"context"
	"sync"
)

// MemoryStorage implements Storage by keeping the last snapshot in memory.
// It is the default storage of a Registry.
type MemoryStorage struct {
	mu   sync.RWMutex
	data Table
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Save stores a copy of the snapshot
func (m *MemoryStorage) Save(_ context.Context, snapshot Table) error {
	data := snapshot.Clone()
	if data == nil {
		data = Table{}
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// Load returns a copy of the last saved snapshot
func (m *MemoryStorage) Load(_ context.Context) (Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.data.Clone(), nil
}

// Drop forgets the saved snapshot
func (m *MemoryStorage) Drop(_ context.Context) error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
	return nil
}
