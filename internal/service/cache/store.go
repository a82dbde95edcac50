// Package cache is the durable translation cache: the second tier of the
// hybrid translator. Lookups are keyed by a digest of source text and target
// language, and every store is fail-open so cache trouble degrades to extra
// AI calls instead of failed requests.
package cache

import (
	"context"
	"sync"
)

// Store is a persistent string key/value backend for translation entries.
type Store interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores the value. Overwrites are allowed.
	Put(ctx context.Context, key, value string) error
	Close() error
}

// MemoryStore is a process-local Store used in tests and as a backend of
// last resort when no durable store is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryStore) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Len reports the number of stored entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
