package store

import (
	"sync"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/observability"
)

// Store is a thread-safe in-memory cache of simulation results.
// Results are shared between callers and must be treated as read-only.
type Store struct {
	mu       sync.Mutex
	items    map[string]*engine.Result[int]
	capacity int // 0 means unbounded
	policy   policy.Policy[string]
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity bounds the number of cached results.
func WithCapacity(n int) Option {
	return func(s *Store) {
		s.capacity = n
	}
}

// WithPolicy selects which cached result is dropped when the store is full.
func WithPolicy(p policy.Policy[string]) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// New creates a new Store. Without options it is unbounded and uses LRU.
func New(opts ...Option) *Store {
	s := &Store{
		items: make(map[string]*engine.Result[int]),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.policy == nil {
		s.policy = policy.NewLRU[string]()
	}
	return s
}

// Get returns the result for a key and whether it was found
func (s *Store) Get(key string) (*engine.Result[int], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, found := s.items[key]
	if !found {
		return nil, false
	}
	s.policy.OnAccess(key)
	return res, true
}

// Set adds or replaces the result for a key, evicting another entry if the store is full.
func (s *Store) Set(key string, res *engine.Result[int]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.items[key]; found {
		s.items[key] = res
		s.policy.OnAccess(key)
		return
	}

	if s.capacity > 0 && len(s.items) >= s.capacity {
		if victim, ok := s.policy.SelectVictim(); ok {
			delete(s.items, victim)
			s.policy.OnRemove(victim)
			observability.ResultCacheEvictionsTotal.Inc()
		}
	}

	s.items[key] = res
	s.policy.OnAdd(key)
}

// Delete removes a key
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.items[key]; found {
		delete(s.items, key)
		s.policy.OnRemove(key)
	}
}

// Len returns the number of cached results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
