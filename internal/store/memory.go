package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewMemoryStore returns a [KeyValueStore] that keeps documents in process
// memory only.
func NewMemoryStore() KeyValueStore {
	return &memoryKeyValueStore{docs: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.docs[key]
	if !ok {
		return "", ErrDocumentNotFound
	}
	return value, nil
}

func (m *memoryKeyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[key] = value
	return nil
}

func (m *memoryKeyValueStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, key)
	return nil
}
