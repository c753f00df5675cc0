package treap

// node is one element of the set. It exclusively owns its children: a node
// is reachable from exactly one parent slot (or the set's root).
type node[K any] struct {
	key      K
	priority uint64
	left     *node[K]
	right    *node[K]
}

func (n *node[K]) reset() {
	var zero K
	n.key = zero
	n.priority = 0
	n.left = nil
	n.right = nil
}
