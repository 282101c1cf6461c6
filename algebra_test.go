package bitset

import (
	"testing"

	"github.com/hupe1980/bitset/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifference_Scenario(t *testing.T) {
	a := Of(3, 0, 1, 2)
	b := Of(3, 1)

	d := New(3).Difference(a, b)
	assert.Equal(t, []int{0, 2}, d.Members())
}

func TestAlgebra_Scenarios(t *testing.T) {
	a := Of(130, 0, 64, 100, 129)
	b := Of(130, 64, 65, 129)
	c := Of(130, 65, 129)

	tests := []struct {
		name string
		got  *Bitset
		want []int
	}{
		{"union", New(130).Union(a, b), []int{0, 64, 65, 100, 129}},
		{"intersection", New(130).Intersection(a, b), []int{64, 129}},
		{"difference", New(130).Difference(a, b), []int{0, 100}},
		{"symmetric diff union", New(130).SymmetricDiffUnion(a, b, c), []int{0, 64, 100, 129}},
		{"merge", New(130).Merge(a, b, c), []int{64, 129}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Members())
		})
	}
}

func TestAlgebra_InPlace(t *testing.T) {
	a := Of(130, 0, 64, 100, 129)
	b := Of(130, 64, 65, 129)

	s := a.Dupl()
	s.UnionWith(b)
	assert.Equal(t, []int{0, 64, 65, 100, 129}, s.Members())

	s = a.Dupl()
	s.IntersectWith(b)
	assert.Equal(t, []int{64, 129}, s.Members())

	s = a.Dupl()
	s.DifferenceWith(b)
	assert.Equal(t, []int{0, 100}, s.Members())

	s = b.Dupl()
	s.DifferenceOf(a)
	assert.Equal(t, []int{0, 100}, s.Members())

	s = a.Dupl()
	s.Mask(b)
	assert.Equal(t, []int{64, 129}, s.Members())

	s = NewUniverse(130)
	s.XorIntersectWith(a, b)
	assert.Equal(t, []int{0, 65, 100}, s.Members())
}

func TestAlgebra_Aliasing(t *testing.T) {
	a := Of(70, 1, 2, 69)
	b := Of(70, 2, 3)

	a.Union(a, b)
	assert.Equal(t, []int{1, 2, 3, 69}, a.Members())

	b.Difference(a, b)
	assert.Equal(t, []int{1, 69}, b.Members())

	a.Intersection(a, a)
	assert.Equal(t, []int{1, 2, 3, 69}, a.Members())
}

func TestAlgebra_StampsReceiver(t *testing.T) {
	a := Of(70, 1, 69)
	b := Of(70, 69)

	dst := NewUniverse(200)
	dst.SetTag(5)
	dst.Union(a, b)

	assert.Equal(t, 2, dst.Size())
	assert.Equal(t, 70, dst.Elements())
	assert.Equal(t, []int{1, 69}, dst.Members())
}

func TestAlgebra_SizeMismatch(t *testing.T) {
	a := New(70)
	b := New(200)

	ops := map[string]func(){
		"union":        func() { New(70).Union(a, b) },
		"intersect":    func() { a.IntersectWith(b) },
		"differenceOf": func() { a.DifferenceOf(b) },
		"merge":        func() { New(70).Merge(a, a, b) },
		"xorIntersect": func() { a.XorIntersectWith(a, b) },
		"disjoint":     func() { a.Disjoint(b) },
		"implies":      func() { a.Implies(b) },
		"dist":         func() { a.Dist(b) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := recoverError(t, op)

			var target *ErrSizeMismatch
			require.ErrorAs(t, err, &target)
			assert.NotEqual(t, target.Expected, target.Actual)
		})
	}

}

func TestAlgebra_ElementCountMismatch(t *testing.T) {
	// 70 and 100 elements share a word count; the wider set still must not
	// leak bits 70..99 into a 70-element result.
	narrow := New(70)
	wide := Of(100, 90)

	err := recoverError(t, func() { New(70).Union(narrow, wide) })
	var target *ErrSizeMismatch
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 70, target.Expected)
	assert.Equal(t, 100, target.Actual)

	u := NewUniverse(70)
	err = recoverError(t, func() { u.UnionWith(NewUniverse(100)) })
	require.ErrorAs(t, err, &target)

	assert.Equal(t, 70, u.Ord())
	assert.True(t, u.Equal(NewUniverse(70)))
	assertTrailingClear(t, u)

	err = recoverError(t, func() { New(70).Merge(narrow, narrow, wide) })
	assert.ErrorAs(t, err, &target)
}

func TestAlgebra_Capacity(t *testing.T) {
	a := New(200)
	err := recoverError(t, func() { New(10).Union(a, a) })
	assert.ErrorAs(t, err, new(*ErrCapacity))
}

func TestCheckSameSize(t *testing.T) {
	require.NoError(t, CheckSameSize())
	require.NoError(t, CheckSameSize(New(70), New(70)))

	err := CheckSameSize(New(70), New(70), New(300))
	var target *ErrSizeMismatch
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 70, target.Expected)
	assert.Equal(t, 300, target.Actual)

	assert.ErrorAs(t, CheckSameSize(New(70), New(128)), &target, "same word count")
}

func TestAlgebra_Properties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, elements := range []int{1, 63, 64, 65, 300, 1000} {
		for range 10 {
			a := fromMembers(elements, rng.Members(elements, 0.4))
			b := fromMembers(elements, rng.Members(elements, 0.4))
			c := fromMembers(elements, rng.Members(elements, 0.5))

			union := New(elements).Union(a, b)
			inter := New(elements).Intersection(a, b)
			diff := New(elements).Difference(a, b)

			// Commutativity.
			assert.True(t, union.Equal(New(elements).Union(b, a)))
			assert.True(t, inter.Equal(New(elements).Intersection(b, a)))

			// |a ∪ b| = |a| + |b| - |a ∩ b|.
			assert.Equal(t, a.Ord()+b.Ord()-inter.Ord(), union.Ord())
			assert.Equal(t, inter.Ord(), a.Dist(b))

			// a = (a \ b) ∪ (a ∩ b), disjointly.
			assert.True(t, diff.Disjoint(inter))
			assert.True(t, a.Equal(New(elements).Union(diff, inter)))

			// Subset relations.
			assert.True(t, inter.Implies(a))
			assert.True(t, a.Implies(union))
			assert.True(t, union.ImpliedBy(b))
			assert.Equal(t, a.Implies(b), b.ImpliedBy(a))

			// Merge takes a where cond holds and b elsewhere.
			want := New(elements).Intersection(a, c)
			rest := New(elements).Difference(b, c)
			want.UnionWith(rest)
			assert.True(t, want.Equal(New(elements).Merge(a, b, c)))

			// Mask keeps s ∩ other.
			m := a.Dupl()
			m.Mask(b)
			assert.True(t, m.Equal(inter))

			// a ∪ (b \ c).
			sdu := New(elements).Difference(b, c)
			sdu.UnionWith(a)
			assert.True(t, sdu.Equal(New(elements).SymmetricDiffUnion(a, b, c)))

			// No operation sets bits past the last element.
			for _, s := range []*Bitset{union, inter, diff, m, sdu} {
				assertTrailingClear(t, s)
			}
		}
	}
}

func TestDisjoint(t *testing.T) {
	rng := testutil.NewRNG(7)
	am, bm := rng.Disjoint(500)

	a := fromMembers(500, am)
	b := fromMembers(500, bm)
	assert.True(t, a.Disjoint(b))
	assert.Equal(t, 0, a.Dist(b))

	if len(am) > 0 {
		b.Set(am[0])
		assert.False(t, a.Disjoint(b))
	}
}

func assertTrailingClear(t *testing.T, s *Bitset) {
	t.Helper()
	tail := s.Elements() & 63
	if tail == 0 || s.Size() == 0 {
		return
	}
	last := s.Words()[s.Size()-1]
	assert.Zero(t, last>>uint(tail), "bits set past element %d", s.Elements())
}

func TestAlgebra_Identities(t *testing.T) {
	rng := testutil.NewRNG(3)

	for _, elements := range []int{7, 64, 200} {
		a := fromMembers(elements, rng.Members(elements, 0.5))
		b := fromMembers(elements, rng.Members(elements, 0.5))
		c := fromMembers(elements, rng.Members(elements, 0.5))
		empty := New(elements)
		universe := NewUniverse(elements)

		assert.True(t, New(elements).Union(a, empty).Equal(a))
		assert.True(t, New(elements).Intersection(a, empty).IsEmpty())
		assert.True(t, New(elements).Union(a, universe).Equal(universe))
		assert.True(t, New(elements).Intersection(a, universe).Equal(a))

		// Associativity.
		ab := New(elements).Union(a, b)
		bc := New(elements).Union(b, c)
		assert.True(t, New(elements).Union(ab, c).Equal(New(elements).Union(a, bc)))

		ab.Intersection(a, b)
		bc.Intersection(b, c)
		assert.True(t, New(elements).Intersection(ab, c).Equal(New(elements).Intersection(a, bc)))

		assert.Equal(t, New(elements).Intersection(a, b).IsEmpty(), a.Disjoint(b))
		assert.Equal(t, elements, universe.Ord())
		assert.Zero(t, empty.Ord())
	}
}
