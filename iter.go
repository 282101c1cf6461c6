package bitset

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// NextSet returns the smallest element >= i in s.
// ok is false when there is none.
func (s *Bitset) NextSet(i int) (next int, ok bool) {
	if i < 0 {
		i = 0
	}
	if i >= s.elements {
		return 0, false
	}

	w := dataWord(i)
	if word := s.words[w] >> BitIndex(i); word != 0 {
		return i + bits.TrailingZeros64(word), true
	}
	for w++; w < len(s.words); w++ {
		if word := s.words[w]; word != 0 {
			return w<<6 + bits.TrailingZeros64(word), true
		}
	}
	return 0, false
}

// All returns an iterator over the elements of s in ascending order.
// s must not be modified during iteration.
func (s *Bitset) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w, word := range s.words {
			base := w << 6
			for word != 0 {
				if !yield(base + bits.TrailingZeros64(word)) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Members returns the elements of s in ascending order.
func (s *Bitset) Members() []int {
	out := make([]int, 0, s.Ord())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// String renders s as "{0, 2, 69}".
func (s *Bitset) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
