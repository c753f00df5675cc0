package treap

import (
	"math/rand/v2"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// PrioritySource produces the heap priority for each new node. Priorities
// should be drawn independently and from a wide range so that ties are
// vanishingly rare; the shape of the tree is only balanced in expectation
// when they are.
type PrioritySource interface {
	Priority() uint64
}

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a seedable xorshift64* generator. It is not safe for concurrent use.
type RNG struct {
	state uint64
}

// NewRNG returns a generator seeded with seed. A zero seed is replaced with a
// fixed non-zero constant because xorshift never leaves the all-zero state.
func NewRNG(seed uint64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the generator so that it replays the sequence for seed.
func (r *RNG) Seed(seed uint64) {
	if seed == 0 {
		seed = defaultSeed
	}
	r.state = seed
}

func (r *RNG) nextRandom64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// Uint32 returns the high half of the next output, which carries the best
// statistical quality of xorshift*.
func (r *RNG) Uint32() uint32 {
	return uint32(r.nextRandom64() >> 32)
}

// Uint64 implements rand.Source so an RNG can drive math/rand/v2 helpers.
func (r *RNG) Uint64() uint64 {
	return r.nextRandom64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		panic("treap: IntN called with non-positive n")
	}
	return int(r.nextRandom64() % uint64(n))
}

// Priority concatenates two independent 32-bit draws.
func (r *RNG) Priority() uint64 {
	return widen(r.Uint32)
}

func widen(draw func() uint32) uint64 {
	hi := uint64(draw())
	lo := uint64(draw())
	return hi<<32 | lo
}

type randSource struct {
	src rand.Source
}

// FromRandSource adapts a math/rand/v2 source, e.g. rand.NewPCG or
// rand.NewChaCha8, into a PrioritySource.
func FromRandSource(src rand.Source) PrioritySource {
	return &randSource{src: src}
}

func (s *randSource) Priority() uint64 {
	return widen(func() uint32 { return uint32(s.src.Uint64() >> 32) })
}
