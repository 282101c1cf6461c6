// Package bitset provides fixed-capacity bitsets for dense set algebra over
// the elements [0, N).
//
// A Bitset pairs a small metadata Header (data word count, advisory flags
// and a 16-bit tag) with a buffer of 64-bit data words. It is meant as a
// building block for combinatorial code such as state-space exploration or
// dataflow marking that juggles many sets of the same size.
//
// # Quick Start
//
//	a := bitset.Of(70, 0, 1, 2)
//	b := bitset.Of(70, 1)
//	d := bitset.New(70).Difference(a, b) // {0, 2}
//	fmt.Println(d, d.Ord())              // {0, 2} 2
//
// # Layout
//
//	Header{size, flags, tag}     words[0]       words[1]       ...
//	                             elements 0-63  elements 64-127
//
// RequiredWords(n) = 1 + ceil(n/64) counts the header as one word, which is
// what Header.Pack produces. Bits at or above N are always zero, so Ord,
// Equal and the relational queries never see garbage.
//
// # Operations
//
// Out-of-place operations write into the receiver and return it:
//
//	r.Union(a, b)              r = a ∪ b
//	r.Intersection(a, b)       r = a ∩ b
//	r.Difference(a, b)         r = a \ b
//	r.SymmetricDiffUnion(a,b,c) r = a ∪ (b \ c)
//	r.Merge(a, b, c)           r = (a ∩ c) ∪ (b \ c)
//
// In-place variants: UnionWith, IntersectWith, DifferenceWith, DifferenceOf,
// XorIntersectWith, Mask.
//
// Queries: Equal, IsEmpty, Disjoint, Implies, ImpliedBy, Ord, Dist. IsEmpty,
// Disjoint and the implications stop at the first disqualifying word; Ord and
// Dist scan every word.
//
// # Contracts
//
// Operands must share one element count and indices must lie in [0, N). Violations
// panic with *ErrSizeMismatch or *ErrIndexOutOfRange; use CheckSameSize to
// validate ahead of time. Allocation failure is not an error: the process
// aborts.
//
// # Concurrency
//
// No method is safe for concurrent mutation of the same Bitset. Distinct
// Bitsets are independent; package family builds on that to process many
// sets in parallel.
package bitset
