package cache

import (
	"sync"
	"time"
)

// Store is the injected result cache. The analysis engine itself never
// touches it - only the orchestration layer reads and writes entries, keyed
// by request parameters.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	SetWithTTL(key string, value interface{}, ttl time.Duration)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// MemoryStore is a bounded in-process TTL map. When full it evicts expired
// entries first, then the entry closest to expiry.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	defaultTTL time.Duration
	now        func() time.Time
}

func NewMemoryStore(maxEntries int, defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:    map[string]entry{},
		maxEntries: maxEntries,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

func (s *MemoryStore) Set(key string, value interface{}) {
	s.SetWithTTL(key, value, s.defaultTTL)
}

func (s *MemoryStore) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok && len(s.entries) >= s.maxEntries {
		s.evictLocked()
	}

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *MemoryStore) evictLocked() {
	now := s.now()
	var oldestKey string
	var oldestExpiry time.Time
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldestExpiry) {
			oldestKey = k
			oldestExpiry = e.expiresAt
		}
	}
	if len(s.entries) >= s.maxEntries && oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}
