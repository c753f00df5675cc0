package treap

import "sync"

// SyncSet guards a Set with a read-write lock. Queries share the read lock;
// Add, Remove and Clear take the write lock, since split and merge rewire
// child pointers in place and a concurrent reader could otherwise observe a
// half-built tree.
type SyncSet[K any] struct {
	mu  sync.RWMutex
	set *Set[K]
}

// NewSync returns an empty, lock-guarded set ordered by less.
func NewSync[K any](less Less[K], opts ...Option) *SyncSet[K] {
	return &SyncSet[K]{set: New(less, opts...)}
}

// Add inserts key and reports whether it was absent.
func (s *SyncSet[K]) Add(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Add(key)
}

// Remove deletes key and reports whether it was present.
func (s *SyncSet[K]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Remove(key)
}

// Contains reports whether key is in the set.
func (s *SyncSet[K]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(key)
}

// Len returns the number of keys.
func (s *SyncSet[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

// Height returns the height of the underlying tree.
func (s *SyncSet[K]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Height()
}

// Keys returns a snapshot of the keys in ascending order.
func (s *SyncSet[K]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Keys()
}

// Clear removes every key.
func (s *SyncSet[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Clear()
}

// Stats returns the counters and shape of the set.
func (s *SyncSet[K]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Stats()
}

// Validate checks every invariant of the underlying tree.
func (s *SyncSet[K]) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Validate()
}

// Do runs fn with exclusive access to the underlying set, for compound
// operations such as check-then-add sequences or iteration. fn must not
// retain the set after it returns.
func (s *SyncSet[K]) Do(fn func(*Set[K])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.set)
}
