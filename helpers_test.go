package treap

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var intLess = OrderedLess[int]()

// stubPrioritySource replays a fixed priority stream, repeating the last
// value once exhausted.
type stubPrioritySource struct {
	values []uint64
	idx    int
}

func (s *stubPrioritySource) Priority() uint64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.idx]
	s.idx++
	return v
}

// buildTree inserts keys in order using priorities drawn from src.
func buildTree(keys []int, src PrioritySource) *node[int] {
	var root *node[int]
	for _, k := range keys {
		insert(&root, &node[int]{key: k, priority: src.Priority()}, intLess)
	}
	return root
}

func inorder(t *node[int]) []int {
	var keys []int
	walk(t, func(n *node[int]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func requireValidTree(t *testing.T, root *node[int]) int {
	t.Helper()
	count, err := validate(root, intLess)
	require.NoError(t, err)
	return count
}

func permutation(seed uint64, n int) []int {
	r := rand.New(rand.NewPCG(seed, seed^0xabcdef))
	keys := r.Perm(n)
	return keys
}
