package treap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// mutationHook is invoked after every successful Add or Remove with the
	// name of the operation and the set's root node.
	mutationHook func(op string, root any)
)
