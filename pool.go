package treap

func (s *Set[K]) acquireNode(key K) *node[K] {
	n := s.nodePool.Get().(*node[K])
	n.key = key
	n.priority = s.prio.Priority()
	n.left = nil
	n.right = nil
	return n
}

// releaseNode returns a detached node's storage to the pool. The caller must
// hold the only reference to n.
func (s *Set[K]) releaseNode(n *node[K]) {
	if n == nil {
		return
	}
	n.reset()
	s.nodePool.Put(n)
	s.metrics.incReleased()
}

// releaseTree returns every node of the tree rooted at root to the pool.
func (s *Set[K]) releaseTree(root *node[K]) int {
	released := 0
	stack := make([]*node[K], 0, 64)
	if root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		s.releaseNode(n)
		released++
	}
	return released
}
