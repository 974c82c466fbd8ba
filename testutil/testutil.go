package testutil

import (
	"math/rand"
	"sync"
)

// Pair is a pair of axis positions.
type Pair struct {
	A int
	B int
}

// Mutator is the write side of an axis container.
type Mutator interface {
	Dim() int
	AxisLen() int
	Mutate(axis, position int, value float32)
}

// AxisReader is the read side of an axis container.
type AxisReader interface {
	Dim() int
	Axis(axis int) ([]float32, bool)
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// Fill writes a uniform [0, 1) value into every slot of m.
func (r *RNG) Fill(m Mutator) {
	buf := make([]float32, m.AxisLen())
	for axis := range m.Dim() {
		r.FillUniform(buf)
		for pos, val := range buf {
			m.Mutate(axis, pos, val)
		}
	}
}

// Swaps returns n pairs of valid positions in [0, dim).
// dim must be positive.
func (r *RNG) Swaps(n, dim int) []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{A: r.rand.Intn(dim), B: r.rand.Intn(dim)}
	}

	return pairs
}

// Snapshot copies every axis of ar in positional order.
func Snapshot(ar AxisReader) [][]float32 {
	out := make([][]float32, ar.Dim())
	for i := range out {
		out[i], _ = ar.Axis(i)
	}

	return out
}

// IsInvolution reports whether applying pairs twice, in order, leaves a
// permutation of size dim unchanged.
func IsInvolution(pairs []Pair, dim int) bool {
	perm := make([]int, dim)
	for i := range perm {
		perm[i] = i
	}

	apply := func() {
		for _, p := range pairs {
			perm[p.A], perm[p.B] = perm[p.B], perm[p.A]
		}
	}
	apply()
	apply()

	for i, v := range perm {
		if v != i {
			return false
		}
	}

	return true
}
