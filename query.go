package bitset

import (
	"math"
	"slices"

	"github.com/hupe1980/bitset/internal/kernel"
)

// Equal reports whether s and other hold the same elements. Flags and tag
// are ignored. Sets over different element counts are never equal.
func (s *Bitset) Equal(other *Bitset) bool {
	if s.elements != other.elements {
		return false
	}
	return slices.Equal(s.words, other.words)
}

// IsEmpty reports whether s has no elements.
func (s *Bitset) IsEmpty() bool {
	return kernel.IsZero(s.words)
}

// Disjoint reports whether s and other have no element in common.
func (s *Bitset) Disjoint(other *Bitset) bool {
	mustMatch(s, other)
	return !kernel.Intersects(s.words, other.words)
}

// Implies reports whether s ⊆ other, i.e. other contains every element of s.
func (s *Bitset) Implies(other *Bitset) bool {
	mustMatch(s, other)
	return !kernel.HasAndNot(s.words, other.words)
}

// ImpliedBy reports whether other ⊆ s. s.ImpliedBy(t) == t.Implies(s).
func (s *Bitset) ImpliedBy(other *Bitset) bool {
	mustMatch(s, other)
	return !kernel.HasAndNot(other.words, s.words)
}

// Ord returns the cardinality of s.
func (s *Bitset) Ord() int {
	return kernel.Popcount(s.words)
}

// Dist returns |s ∩ other|, the number of elements in common. It is not a
// metric distance.
func (s *Bitset) Dist(other *Bitset) int {
	mustMatch(s, other)
	return kernel.PopcountAnd(s.words, other.words)
}

// TagOrd stores Ord() in the tag, saturating at math.MaxUint16 rather than
// wrapping modulo 2^16.
func (s *Bitset) TagOrd() {
	n := s.Ord()
	if n > math.MaxUint16 {
		n = math.MaxUint16
	}
	s.hdr.tag = uint16(n)
}
