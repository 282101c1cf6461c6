package testutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.Words(8), b.Words(8))
	assert.Equal(t, a.Members(500, 0.3), b.Members(500, 0.3))
	assert.Equal(t, int64(42), a.Seed())
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)
	first := r.Uint64()
	r.Reset()
	assert.Equal(t, first, r.Uint64())
}

func TestRNG_Members(t *testing.T) {
	r := NewRNG(1)

	assert.Empty(t, r.Members(100, 0))
	assert.Len(t, r.Members(100, 1), 100)

	m := r.Members(1000, 0.5)
	require.True(t, sort.IntsAreSorted(m))
	for _, v := range m {
		assert.True(t, v >= 0 && v < 1000)
	}
}

func TestRNG_Disjoint(t *testing.T) {
	r := NewRNG(3)
	a, b := r.Disjoint(300)

	seen := make(map[int]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		assert.False(t, seen[v], "element %d in both sets", v)
	}
	assert.True(t, sort.IntsAreSorted(a))
	assert.True(t, sort.IntsAreSorted(b))
}

func TestRNG_Intn(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 100; i++ {
		v := r.Intn(10)
		assert.True(t, v >= 0 && v < 10)
	}
}
