package treap

import (
	"sort"
	"testing"
)

type fuzzOp struct {
	typ byte
	key int
}

func FuzzSetAgainstModel(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 1, 1, 2, 2})
	f.Add([]byte{0, 5, 0, 5, 1, 5, 1, 5})
	f.Add([]byte{0, 3, 0, 1, 0, 2, 1, 3, 2, 1})

	f.Fuzz(func(t *testing.T, input []byte) {
		ops := decodeFuzzOps(input, 256)
		if len(ops) == 0 {
			t.Skip()
		}

		s := NewOrdered[int](WithSeed(uint64(len(input))))
		model := make(map[int]struct{})

		for i, op := range ops {
			_, present := model[op.key]
			switch op.typ % 3 {
			case 0: // Add
				if got := s.Add(op.key); got == present {
					t.Fatalf("op %d: Add(%d) = %v with present=%v", i, op.key, got, present)
				}
				model[op.key] = struct{}{}
			case 1: // Remove
				if got := s.Remove(op.key); got != present {
					t.Fatalf("op %d: Remove(%d) = %v with present=%v", i, op.key, got, present)
				}
				delete(model, op.key)
			case 2: // Contains
				if got := s.Contains(op.key); got != present {
					t.Fatalf("op %d: Contains(%d) = %v with present=%v", i, op.key, got, present)
				}
			}
		}

		if err := s.Validate(); err != nil {
			t.Fatal(err)
		}
		want := make([]int, 0, len(model))
		for k := range model {
			want = append(want, k)
		}
		sort.Ints(want)
		got := s.Keys()
		if len(got) != len(want) {
			t.Fatalf("keys %v, model %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("keys %v, model %v", got, want)
			}
		}
	})
}

func decodeFuzzOps(input []byte, maxOps int) []fuzzOp {
	if maxOps <= 0 {
		return nil
	}
	ops := make([]fuzzOp, 0, maxOps)
	for i := 0; i+1 < len(input) && len(ops) < maxOps; i += 2 {
		ops = append(ops, fuzzOp{typ: input[i] % 3, key: int(input[i+1] % 32)})
	}
	return ops
}
