package testutil

import (
	"math/rand"
	"sync"
)

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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Words returns n random words.
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Members returns an ascending subset of [0, elements) where each element is
// included with probability density.
func (r *RNG) Members(elements int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, int(float64(elements)*density)+1)
	for i := 0; i < elements; i++ {
		if r.rand.Float64() < density {
			out = append(out, i)
		}
	}
	return out
}

// Disjoint returns two ascending, disjoint subsets of [0, elements) with
// each element going to the first, the second or neither.
func (r *RNG) Disjoint(elements int) (a, b []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < elements; i++ {
		switch r.rand.Intn(3) {
		case 0:
			a = append(a, i)
		case 1:
			b = append(b, i)
		}
	}
	return a, b
}
