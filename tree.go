package treap

import (
	"github.com/pkg/errors"
)

// The primitives below work on bare roots and follow an ownership-transfer
// discipline: a call consumes the trees passed to it and the caller must only
// keep the roots it gets back. All of them are iterative, so stack usage does
// not grow with tree height.

// contains reports whether key is present in the tree rooted at t.
func contains[K any](t *node[K], key K, less Less[K]) bool {
	for t != nil {
		switch {
		case less(key, t.key):
			t = t.left
		case less(t.key, key):
			t = t.right
		default:
			return true
		}
	}
	return false
}

// height returns the number of nodes on the longest root-to-leaf path, or 0
// for an empty tree.
func height[K any](t *node[K]) int {
	if t == nil {
		return 0
	}
	type frame struct {
		n     *node[K]
		depth int
	}
	best := 0
	stack := []frame{{t, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return best
}

// split partitions t into l, holding the keys strictly less than x, and r,
// holding the keys greater than or equal to x. found reports whether a node
// equal to x was met; that node becomes the root of r with its left subtree
// moved to l.
func split[K any](t *node[K], x K, less Less[K]) (l, r *node[K], found bool) {
	lslot, rslot := &l, &r
	for t != nil {
		switch {
		case less(x, t.key):
			// t and its right subtree belong to r; keep splitting t.left.
			next := t.left
			*rslot = t
			rslot = &t.left
			t = next
		case less(t.key, x):
			next := t.right
			*lslot = t
			lslot = &t.right
			t = next
		default:
			*lslot = t.left
			*rslot = t
			t.left = nil
			return l, r, true
		}
	}
	*lslot = nil
	*rslot = nil
	return l, r, false
}

// merge joins l and r, which must satisfy max(l) < min(r). The root with the
// strictly higher priority wins; on equal priorities the right root wins.
func merge[K any](l, r *node[K]) *node[K] {
	var root *node[K]
	slot := &root
	for l != nil && r != nil {
		if l.priority > r.priority {
			*slot = l
			slot = &l.right
			l = l.right
		} else {
			*slot = r
			slot = &r.left
			r = r.left
		}
	}
	if l != nil {
		*slot = l
	} else {
		*slot = r
	}
	return root
}

// insert links the detached node n into the tree held by *root. It panics
// with ErrDuplicateKey, leaving *root a valid tree without n, when the key is
// already present.
func insert[K any](root **node[K], n *node[K], less Less[K]) {
	l, r, found := split(*root, n.key, less)
	if found {
		*root = merge(l, r)
		panic(errors.Wrapf(ErrDuplicateKey, "insert %v", n.key))
	}
	*root = merge(l, merge(n, r))
}

// remove unlinks the node holding key from the tree held by *root and returns
// it detached. It panics with ErrKeyNotFound, leaving the tree untouched, when
// key is absent.
func remove[K any](root **node[K], key K, less Less[K]) *node[K] {
	slot := root
	for t := *slot; t != nil; t = *slot {
		switch {
		case less(key, t.key):
			slot = &t.left
		case less(t.key, key):
			slot = &t.right
		default:
			*slot = merge(t.left, t.right)
			t.left = nil
			t.right = nil
			return t
		}
	}
	panic(errors.Wrapf(ErrKeyNotFound, "remove %v", key))
}

// walk visits the keys of t in ascending order until fn returns false.
func walk[K any](t *node[K], fn func(*node[K]) bool) {
	stack := make([]*node[K], 0, 32)
	for t != nil || len(stack) > 0 {
		for t != nil {
			stack = append(stack, t)
			t = t.left
		}
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t) {
			return
		}
		t = t.right
	}
}

func minNode[K any](t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

func maxNode[K any](t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}

// validate checks the search-tree and heap orderings of t and returns the
// number of nodes reachable from it.
func validate[K any](t *node[K], less Less[K]) (int, error) {
	if t == nil {
		return 0, nil
	}
	type frame struct {
		n      *node[K]
		lo, hi *node[K]
	}
	count := 0
	stack := []frame{{n: t}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n
		count++
		if f.lo != nil && !less(f.lo.key, n.key) {
			return count, errors.Wrapf(ErrInvariantViolation,
				"key %v is not greater than ancestor %v", n.key, f.lo.key)
		}
		if f.hi != nil && !less(n.key, f.hi.key) {
			return count, errors.Wrapf(ErrInvariantViolation,
				"key %v is not less than ancestor %v", n.key, f.hi.key)
		}
		if n.left != nil {
			if n.left.priority > n.priority {
				return count, errors.Wrapf(ErrInvariantViolation,
					"left child %v outranks parent %v", n.left.key, n.key)
			}
			stack = append(stack, frame{n: n.left, lo: f.lo, hi: n})
		}
		if n.right != nil {
			if n.right.priority > n.priority {
				return count, errors.Wrapf(ErrInvariantViolation,
					"right child %v outranks parent %v", n.right.key, n.key)
			}
			stack = append(stack, frame{n: n.right, lo: n, hi: f.hi})
		}
	}
	return count, nil
}
