// Package treap implements an ordered set on top of a treap, a binary search
// tree kept balanced in expectation by random heap-ordered priorities.
package treap

import (
	"cmp"
	"fmt"
	"iter"
	"sync"

	"github.com/pkg/errors"
)

// Set is an ordered set backed by a treap: a binary search tree whose shape
// is fixed by random per-node priorities kept in max-heap order, giving
// expected O(log n) height for any insertion order.
//
// A Set is not safe for concurrent use. Wrap it in a SyncSet, or guard it
// with a lock of your own, when goroutines share it.
type Set[K any] struct {
	root     *node[K]
	size     int
	less     Less[K]
	prio     PrioritySource
	nodePool sync.Pool
	metrics  Metrics
	config   Config
}

// New returns an empty set ordered by less.
func New[K any](less Less[K], opts ...Option) *Set[K] {
	if less == nil {
		panic(ErrNilLess)
	}
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Set[K]{
		less:   less,
		prio:   cfg.prioritySource(),
		config: cfg,
	}
	s.nodePool.New = func() any { return new(node[K]) }
	return s
}

// NewOrdered returns an empty set of a builtin ordered type.
func NewOrdered[K cmp.Ordered](opts ...Option) *Set[K] {
	return New(OrderedLess[K](), opts...)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return contains(s.root, key, s.less)
}

// Add inserts key. It returns false, leaving the set unchanged, if key is
// already present.
func (s *Set[K]) Add(key K) bool {
	if s.Contains(key) {
		s.metrics.incRejectedAdd()
		log.Tracef("Add %v rejected: already present", key)
		return false
	}
	insert(&s.root, s.acquireNode(key), s.less)
	s.size++
	s.metrics.incAdd()
	s.metrics.addStructural(1, 2)
	s.afterMutation("add")
	return true
}

// AddAll adds every key and returns how many were not already present.
func (s *Set[K]) AddAll(keys ...K) int {
	added := 0
	for _, k := range keys {
		if s.Add(k) {
			added++
		}
	}
	return added
}

// Remove deletes key. It returns false, leaving the set unchanged, if key is
// not present.
func (s *Set[K]) Remove(key K) bool {
	if !s.Contains(key) {
		s.metrics.incRejectedRemove()
		log.Tracef("Remove %v rejected: not present", key)
		return false
	}
	n := remove(&s.root, key, s.less)
	s.releaseNode(n)
	s.size--
	s.metrics.incRemove()
	s.metrics.addStructural(0, 1)
	s.afterMutation("remove")
	return true
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.size
}

// Height returns the number of nodes on the longest root-to-leaf path. It is
// a diagnostic; balancing never consults it.
func (s *Set[K]) Height() int {
	return height(s.root)
}

// Min returns the smallest key, or false if the set is empty.
func (s *Set[K]) Min() (K, bool) {
	if n := minNode(s.root); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Max returns the largest key, or false if the set is empty.
func (s *Set[K]) Max() (K, bool) {
	if n := maxNode(s.root); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Clear removes every key, returning all nodes to the set's pool.
func (s *Set[K]) Clear() {
	root := s.root
	s.root = nil
	released := s.releaseTree(root)
	log.Debugf("Cleared set: released %d nodes", released)
	s.size = 0
}

// Keys returns the keys in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)
	walk(s.root, func(n *node[K]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// All returns an iterator over the keys in ascending order. The set must not
// be modified while the iteration is running.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(s.root, func(n *node[K]) bool { return yield(n.key) })
	}
}

// SeekGE returns an iterator positioned at the first key greater than or
// equal to key. The returned iterator is valid if and only if such a key
// exists.
func (s *Set[K]) SeekGE(key K) *Iterator[K] {
	it := s.Iterator()
	it.SeekGE(key)
	return it
}

// Stats returns the set's counters along with its current size and height.
func (s *Set[K]) Stats() Stats {
	st := s.metrics.snapshot()
	st.Len = s.size
	st.Height = s.Height()
	return st
}

// Validate walks the whole tree and reports the first broken invariant: keys
// out of order, a child whose priority exceeds its parent's, or a size
// counter that disagrees with the number of reachable nodes.
func (s *Set[K]) Validate() error {
	count, err := validate(s.root, s.less)
	if err != nil {
		return err
	}
	if count != s.size {
		return errors.Wrapf(ErrInvariantViolation,
			"size counter %d but %d reachable nodes", s.size, count)
	}
	return nil
}

// String renders the keys in ascending order.
func (s *Set[K]) String() string {
	return fmt.Sprintf("treap.Set%v", s.Keys())
}

func (s *Set[K]) afterMutation(op string) {
	if s.config.checkInvariants {
		if err := s.Validate(); err != nil {
			log.Errorf("Invariant check after %s failed: %v (keys %v)", op,
				err, newLogClosure(func() string { return fmt.Sprint(s.Keys()) }))
			panic(err)
		}
	}
	if mutationHook != nil {
		mutationHook(op, s.root)
	}
}
