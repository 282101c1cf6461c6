package bitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	bnb "github.com/bits-and-blooms/bitset"
)

// maxRoaringElements is the element range of a 32-bit roaring bitmap.
const maxRoaringElements = 1 << 32

// ToRoaring returns the elements of s as a roaring bitmap.
//
// It panics with ErrTooManyElements if s ranges past the 32-bit roaring
// universe.
func (s *Bitset) ToRoaring() *roaring.Bitmap {
	if uint64(s.elements) > maxRoaringElements {
		panic(fmt.Errorf("%w: %d elements exceed the roaring range", ErrTooManyElements, s.elements))
	}
	vals := make([]uint32, 0, s.Ord())
	for i := range s.All() {
		vals = append(vals, uint32(i))
	}
	rb := roaring.New()
	rb.AddMany(vals)
	return rb
}

// FromRoaring returns a set over elements elements holding the values of rb.
// It panics with *ErrIndexOutOfRange if rb holds a value >= elements.
func FromRoaring(elements int, rb *roaring.Bitmap, opts ...Option) *Bitset {
	s := New(elements, opts...)
	it := rb.Iterator()
	for it.HasNext() {
		s.Set(int(it.Next()))
	}
	return s
}

// ToBitSet returns the elements of s as a bits-and-blooms bitset of length
// Elements().
func (s *Bitset) ToBitSet() *bnb.BitSet {
	bs := bnb.New(uint(s.elements))
	for i := range s.All() {
		bs.Set(uint(i))
	}
	return bs
}

// FromBitSet returns a set over elements elements holding the members of bs.
// It panics with *ErrIndexOutOfRange if bs holds a member >= elements.
func FromBitSet(elements int, bs *bnb.BitSet, opts ...Option) *Bitset {
	s := New(elements, opts...)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		s.Set(int(i))
	}
	return s
}
