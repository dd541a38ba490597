package core

import (
	"sync"
)

// Storage is a generic, thread-safe, unbounded key/value store for memoized
// results.
//
// Entries are never evicted or expired; the store lives exactly as long as
// the Memoizer that owns it. Hit and miss counters are kept alongside the data.
type Storage[V any] struct {
	mu     sync.RWMutex
	data   map[string]V
	hits   uint64
	misses uint64
}

// StorageStat is a point-in-time snapshot of a Storage.
type StorageStat struct {
	Entries int    // number of entries in the store
	Hits    uint64 // lookups answered without executing the underlying call
	Misses  uint64 // lookups that led to an execution
}

// NewStorage returns an empty Storage.
func NewStorage[V any]() *Storage[V] {
	return &Storage[V]{
		data: make(map[string]V),
	}
}

// Get retrieves the cached value for the given key and records a hit or miss.
// Returns (value, true) if found; otherwise returns (zero, false).
func (s *Storage[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if val, ok := s.data[key]; ok {
		s.hits++
		return val, true
	}
	s.misses++
	var zero V
	return zero, false
}

// Peek is Get without touching the hit/miss counters.
func (s *Storage[V]) Peek(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// markHit records a hit for a value obtained without Get.
func (s *Storage[V]) markHit() {
	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
}

// Set inserts or replaces the entry for key.
func (s *Storage[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Stat returns a snapshot of the entry count and hit/miss counters.
func (s *Storage[V]) Stat() StorageStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StorageStat{
		Entries: len(s.data),
		Hits:    s.hits,
		Misses:  s.misses,
	}
}
