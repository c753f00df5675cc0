package treap

import "cmp"

// Less reports whether a sorts strictly before b. It must be a strict weak
// ordering; two keys are considered equal when neither is less than the other.
type Less[K any] func(a, b K) bool

// Comparer is implemented by key types that carry their own ordering.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number otherwise.
type Comparer[K any] interface {
	Compare(other K) int
}

// OrderedLess returns the natural < ordering for builtin ordered types.
func OrderedLess[K cmp.Ordered]() Less[K] {
	return cmp.Less[K]
}

// CompareLess adapts a three-way comparison function, such as
// strings.Compare or cmp.Compare, into a Less.
func CompareLess[K any](compare func(a, b K) int) Less[K] {
	return func(a, b K) bool { return compare(a, b) < 0 }
}

// ComparerLess returns the ordering defined by the key type's Compare method.
func ComparerLess[K Comparer[K]]() Less[K] {
	return func(a, b K) bool { return a.Compare(b) < 0 }
}

func equal[K any](less Less[K], a, b K) bool {
	return !less(a, b) && !less(b, a)
}
