package treap

// Iterator provides a forward, in-order view over a set. It keeps the
// pending ancestors of the current node on an explicit stack, so it uses
// O(height) memory. Modifying the set invalidates every iterator over it;
// using one afterwards gives unspecified results.
type Iterator[K any] struct {
	s       *Set[K]
	stack   []*node[K]
	current *node[K]
	key     K
	valid   bool
}

// Iterator returns a new iterator positioned before the first key.
func (s *Set[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{s: s}
}

// Valid reports whether the iterator currently points at a key.
func (it *Iterator[K]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.key
}

// SeekGE positions the iterator at the first key greater than or equal to
// key. It returns true if such a key exists.
func (it *Iterator[K]) SeekGE(key K) bool {
	if it == nil || it.s == nil {
		return false
	}
	it.invalidate()

	for t := it.s.root; t != nil; {
		if it.s.less(t.key, key) {
			t = t.right
		} else {
			it.stack = append(it.stack, t)
			t = t.left
		}
	}
	return it.pop()
}

// Next advances the iterator to the next key and reports whether it moved.
// If the iterator was not valid prior to the call, it advances to the first
// key.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.s == nil {
		return false
	}

	start := it.s.root
	if it.valid {
		start = it.current.right
	} else {
		it.invalidate()
	}
	it.pushLeft(start)
	return it.pop()
}

func (it *Iterator[K]) pushLeft(t *node[K]) {
	for ; t != nil; t = t.left {
		it.stack = append(it.stack, t)
	}
}

func (it *Iterator[K]) pop() bool {
	if len(it.stack) == 0 {
		it.invalidate()
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.current = n
	it.key = n.key
	it.valid = true
	return true
}

func (it *Iterator[K]) invalidate() {
	if it == nil {
		return
	}
	it.current = nil
	it.valid = false
	it.stack = it.stack[:0]
	var zeroK K
	it.key = zeroK
}
