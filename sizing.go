package bitset

import (
	"fmt"
	"math"
)

// WordBits is the number of elements held by one storage word.
const WordBits = 64

// MaxDataWords is the largest data word count the 32-bit size field holds.
const MaxDataWords = math.MaxUint32

// DataWords returns ceil(elements/64), the number of data words needed for
// elements. Zero elements need zero data words.
//
// It panics with ErrNegativeElements or ErrTooManyElements.
func DataWords(elements int) int {
	if elements < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeElements, elements))
	}
	words := elements >> 6
	if elements&63 != 0 {
		words++
	}
	if uint64(words) > MaxDataWords {
		panic(fmt.Errorf("%w: %d", ErrTooManyElements, elements))
	}
	return words
}

// RequiredWords returns the storage footprint of a bitset of elements in
// words: one header word plus DataWords(elements).
func RequiredWords(elements int) int {
	return 1 + DataWords(elements)
}

// WordIndex returns the storage word holding element i, counting the header
// as word 0. This is the position in the packed form (Header.Pack followed by
// the data words); Words() is indexed by WordIndex(i)-1.
func WordIndex(i int) int {
	return 1 + i>>6
}

// dataWord returns the index into the data words holding element i.
func dataWord(i int) int {
	return WordIndex(i) - 1
}

// BitIndex returns the bit position of element i within its word.
func BitIndex(i int) uint {
	return uint(i) & 63
}
