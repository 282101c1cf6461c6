package bitset

import "math"

// Bitset is a fixed-capacity set over the elements [0, Elements()).
//
// The metadata header is held next to, not inside, the data words. Element i
// lives in data word i/64 at bit i%64. Bits at or above Elements() are always
// zero.
//
// A Bitset is not safe for concurrent mutation. Concurrent reads of a set no
// one is writing are fine.
type Bitset struct {
	hdr      Header
	elements int
	words    []uint64 // len == hdr.size; cap is the allocated capacity
	alloc    Allocator
	logger   *Logger
}

// New returns the empty set over elements elements.
//
// It panics with ErrNegativeElements or ErrTooManyElements.
func New(elements int, opts ...Option) *Bitset {
	o := applyOptions(opts)
	b := &Bitset{
		alloc:  o.alloc,
		logger: o.logger,
	}
	words := DataWords(elements)
	b.words = b.allocWords(words)
	b.hdr.size = uint32(words)
	b.elements = elements
	return b
}

// NewUniverse returns the full set over elements elements.
func NewUniverse(elements int, opts ...Option) *Bitset {
	b := New(elements, opts...)
	b.fill()
	return b
}

// Of returns a set over elements elements containing members.
// It panics with *ErrIndexOutOfRange if a member is outside the range.
func Of(elements int, members ...int) *Bitset {
	b := New(elements)
	for _, m := range members {
		b.Set(m)
	}
	return b
}

// reinit resizes the logical view to hold elements and clears the header.
// Storage is reallocated through the allocator when capacity is short.
func (s *Bitset) reinit(elements int) {
	words := DataWords(elements)
	if words > cap(s.words) {
		s.words = s.reallocWords(s.words, words)
	} else {
		s.words = s.words[:words]
	}
	s.hdr = Header{size: uint32(words)}
	s.elements = elements
}

// Null turns s into the empty set over elements elements, reusing its
// storage. Flags and tag are cleared.
func (s *Bitset) Null(elements int) *Bitset {
	s.reinit(elements)
	clear(s.words)
	return s
}

// Universe turns s into the full set over elements elements, reusing its
// storage. Flags and tag are cleared.
func (s *Bitset) Universe(elements int) *Bitset {
	s.reinit(elements)
	s.fill()
	return s
}

func (s *Bitset) fill() {
	n := len(s.words)
	if n == 0 {
		return
	}
	for i := range s.words {
		s.words[i] = math.MaxUint64
	}
	// Clear the positions past the last element.
	s.words[n-1] >>= uint(WordBits*n - s.elements)
}

// Reset empties s in place. The size is kept; flags and tag are cleared.
func (s *Bitset) Reset() *Bitset {
	clear(s.words)
	s.hdr = Header{size: s.hdr.size}
	return s
}

// Dupl returns an independent copy of s, header included, allocated with
// the same allocator.
func (s *Bitset) Dupl() *Bitset {
	d := &Bitset{
		alloc:  s.alloc,
		logger: s.logger,
	}
	d.words = d.allocWords(len(s.words))
	copy(d.words, s.words)
	d.hdr = s.hdr
	d.elements = s.elements
	return d
}

// CopyFrom copies src, header included, into the existing storage of s.
//
// It panics with *ErrCapacity if s cannot hold src's data words.
func (s *Bitset) CopyFrom(src *Bitset) *Bitset {
	s.stamp(src)
	copy(s.words, src.words)
	s.hdr = src.hdr
	return s
}

// stamp sizes s like src within its existing storage.
func (s *Bitset) stamp(src *Bitset) {
	n := len(src.words)
	if n > cap(s.words) {
		panic(&ErrCapacity{Required: n, Capacity: cap(s.words)})
	}
	s.words = s.words[:n]
	s.hdr.size = src.hdr.size
	s.elements = src.elements
}

// Release returns the storage of s to its allocator. s is left as an empty set
// over zero elements and must not be used for further operations other than
// Null or Universe.
func (s *Bitset) Release() {
	if s.words != nil {
		s.alloc.Free(s.words[:cap(s.words)])
	}
	s.words = nil
	s.hdr = Header{}
	s.elements = 0
}

func (s *Bitset) checkIndex(i int) {
	if uint(i) >= uint(s.elements) {
		panic(&ErrIndexOutOfRange{Index: i, Elements: s.elements})
	}
}

// Get reports whether element i is in the set.
func (s *Bitset) Get(i int) bool {
	s.checkIndex(i)
	return s.words[dataWord(i)]&(1<<BitIndex(i)) != 0
}

// Set adds element i.
func (s *Bitset) Set(i int) {
	s.checkIndex(i)
	s.words[dataWord(i)] |= 1 << BitIndex(i)
}

// Clear removes element i.
func (s *Bitset) Clear(i int) {
	s.checkIndex(i)
	s.words[dataWord(i)] &^= 1 << BitIndex(i)
}

// Elements returns the number of elements the set ranges over.
func (s *Bitset) Elements() int { return s.elements }

// Size returns the number of data words.
func (s *Bitset) Size() int { return int(s.hdr.size) }

// Cap returns the number of data words the storage can hold.
func (s *Bitset) Cap() int { return cap(s.words) }

// Words returns the data words. The slice aliases the storage of s; callers must
// keep bits at or above Elements() zero.
func (s *Bitset) Words() []uint64 { return s.words }

// Header returns a copy of the metadata record.
func (s *Bitset) Header() Header { return s.hdr }

// Flags returns the advisory flags.
func (s *Bitset) Flags() Flags { return s.hdr.flags }

// HasFlag reports whether flag is set.
func (s *Bitset) HasFlag(flag Flags) bool { return s.hdr.flags.Has(flag) }

// SetFlag sets flag.
func (s *Bitset) SetFlag(flag Flags) { s.hdr.flags |= flag }

// ClearFlag clears flag.
func (s *Bitset) ClearFlag(flag Flags) { s.hdr.flags &^= flag }

// Tag returns the tag.
func (s *Bitset) Tag() uint16 { return s.hdr.tag }

// SetTag stores v as the tag.
func (s *Bitset) SetTag(v uint16) { s.hdr.tag = v }

// IncTag increments the tag, wrapping at 2^16.
func (s *Bitset) IncTag() { s.hdr.tag++ }

// DecTag decrements the tag, wrapping at zero.
func (s *Bitset) DecTag() { s.hdr.tag-- }
