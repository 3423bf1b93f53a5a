// Package memory provides process-local adapters for ephemeral runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.KeyValueStore = (*KVStore)(nil)

// KVStore is an in-memory KeyValueStore. Values are copied on the way in and
// out so callers never share backing arrays with the store.
type KVStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKVStore creates an empty KVStore.
func NewKVStore() *KVStore {
	return &KVStore{entries: make(map[string][]byte)}
}

// Get returns a copy of the value for key.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = append([]byte(nil), value...)
	return nil
}

// Remove deletes key.
func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
