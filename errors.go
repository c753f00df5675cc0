package treap

import "github.com/pkg/errors"

var (
	// ErrDuplicateKey is the panic value when a key is inserted into a tree
	// that already holds it. Set.Add checks first, so only direct misuse of
	// the tree primitives can trigger it.
	ErrDuplicateKey = errors.New("treap: key already present")

	// ErrKeyNotFound is the panic value when a key that is not in the tree
	// is removed from it.
	ErrKeyNotFound = errors.New("treap: key not found")

	// ErrInvariantViolation is returned by Validate when the tree breaks the
	// search-tree order, the heap order of priorities, or the size count.
	ErrInvariantViolation = errors.New("treap: invariant violation")

	// ErrNilLess is the panic value when New is given a nil ordering.
	ErrNilLess = errors.New("treap: nil less function")
)
