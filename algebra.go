package bitset

import "github.com/hupe1980/bitset/internal/kernel"

// All operands of the operations below must range over the same element
// count; a mismatch panics with *ErrSizeMismatch. Out-of-place operations write into the
// receiver, first taking the size of their first operand (panicking with
// *ErrCapacity if the receiver's storage is too small), and return it. The
// receiver may alias any operand.

// Union sets s = a ∪ b.
func (s *Bitset) Union(a, b *Bitset) *Bitset {
	mustMatch(a, b)
	s.stamp(a)
	kernel.Or(s.words, a.words, b.words)
	return s
}

// UnionWith sets s = s ∪ other.
func (s *Bitset) UnionWith(other *Bitset) {
	mustMatch(s, other)
	kernel.OrInPlace(s.words, other.words)
}

// Intersection sets s = a ∩ b.
func (s *Bitset) Intersection(a, b *Bitset) *Bitset {
	mustMatch(a, b)
	s.stamp(a)
	kernel.And(s.words, a.words, b.words)
	return s
}

// IntersectWith sets s = s ∩ other.
func (s *Bitset) IntersectWith(other *Bitset) {
	mustMatch(s, other)
	kernel.AndInPlace(s.words, other.words)
}

// Difference sets s = a \ b, the relative complement of b in a.
func (s *Bitset) Difference(a, b *Bitset) *Bitset {
	mustMatch(a, b)
	s.stamp(a)
	kernel.AndNot(s.words, a.words, b.words)
	return s
}

// DifferenceWith sets s = s \ other.
func (s *Bitset) DifferenceWith(other *Bitset) {
	mustMatch(s, other)
	kernel.AndNotInPlace(s.words, other.words)
}

// DifferenceOf sets s = minuend \ s, storing the difference in the
// subtrahend.
func (s *Bitset) DifferenceOf(minuend *Bitset) {
	mustMatch(minuend, s)
	kernel.AndNotFrom(minuend.words, s.words)
}

// SymmetricDiffUnion sets s = a ∪ (b \ c).
func (s *Bitset) SymmetricDiffUnion(a, b, c *Bitset) *Bitset {
	mustMatch3(a, b, c)
	s.stamp(a)
	kernel.OrAndNot(s.words, a.words, b.words, c.words)
	return s
}

// XorIntersectWith sets s = s ∩ (a △ b): s keeps only elements found in
// exactly one of a and b.
func (s *Bitset) XorIntersectWith(a, b *Bitset) {
	mustMatch3(s, a, b)
	kernel.AndXorInPlace(s.words, a.words, b.words)
}

// Mask clears every element of s that is not in other, computed as
// s = s \ (s \ other).
func (s *Bitset) Mask(other *Bitset) {
	mustMatch(s, other)
	kernel.MaskInPlace(s.words, other.words)
}

// Merge selects by condition: s = (a ∩ cond) ∪ (b \ cond). Elements come
// from a where cond has them and from b everywhere else.
func (s *Bitset) Merge(a, b, cond *Bitset) *Bitset {
	mustMatch3(a, b, cond)
	s.stamp(a)
	kernel.Select(s.words, a.words, b.words, cond.words)
	return s
}
