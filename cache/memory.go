package cache

import "sync"

// MemoryStore is an in-memory Store with no expiry.
type MemoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]Outcome[V]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[V any]() *MemoryStore[V] {
	return &MemoryStore[V]{entries: make(map[string]Outcome[V])}
}

// Get returns the outcome stored for key.
func (s *MemoryStore[V]) Get(key string) (Outcome[V], bool) {
	s.mu.RLock()
	out, ok := s.entries[key]
	s.mu.RUnlock()
	return out, ok
}

// Set stores out for key if the key is still empty.
func (s *MemoryStore[V]) Set(key string, out Outcome[V]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		return false
	}
	s.entries[key] = out
	return true
}

// Len returns the number of stored outcomes.
func (s *MemoryStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the stored keys in no particular order.
func (s *MemoryStore[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Ensure MemoryStore implements Store
var _ Store[string] = (*MemoryStore[string])(nil)
