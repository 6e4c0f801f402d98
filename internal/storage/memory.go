package storage

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage used by tests. It counts writes per
// slot so tests can assert that no-op operations do not touch persistence.
type MemoryStorage struct {
	mu    sync.RWMutex
	docs  map[Slot][]byte
	saves map[Slot]int
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		docs:  make(map[Slot][]byte),
		saves: make(map[Slot]int),
	}
}

// Load reads the document stored in the given slot.
func (m *MemoryStorage) Load(_ context.Context, slot Slot) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[slot]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Save overwrites the document stored in the given slot.
func (m *MemoryStorage) Save(_ context.Context, slot Slot, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(doc))
	copy(stored, doc)
	m.docs[slot] = stored
	m.saves[slot]++
	return nil
}

// Delete removes the given slot.
func (m *MemoryStorage) Delete(_ context.Context, slot Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, slot)
	return nil
}

// Close is a no-op for in-memory storage.
func (m *MemoryStorage) Close() error { return nil }

// SaveCount returns how many times Save has been called for slot.
func (m *MemoryStorage) SaveCount(slot Slot) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves[slot]
}
