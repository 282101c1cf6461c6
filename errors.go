package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeElements is raised when an element count is negative.
	ErrNegativeElements = errors.New("bitset: negative element count")

	// ErrTooManyElements is raised when an element count needs more data
	// words than the 32-bit size field can hold.
	ErrTooManyElements = errors.New("bitset: element count exceeds size field")
)

// ErrSizeMismatch indicates operands over different element counts.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("bitset: size mismatch: expected %d elements, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an element index outside [0, Elements).
type ErrIndexOutOfRange struct {
	Index    int
	Elements int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitset: index %d out of range [0, %d)", e.Index, e.Elements)
}

// ErrCapacity indicates a destination whose storage is too small for a result.
type ErrCapacity struct {
	Required int
	Capacity int
}

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("bitset: capacity %d words, need %d", e.Capacity, e.Required)
}

// CheckSameSize returns an *ErrSizeMismatch if the sets do not all range
// over the element count of the first one. Operations panic with the same
// error; call this to validate operands up front instead.
func CheckSameSize(sets ...*Bitset) error {
	if len(sets) == 0 {
		return nil
	}
	want := sets[0].elements
	for _, s := range sets[1:] {
		if got := s.elements; got != want {
			return &ErrSizeMismatch{Expected: want, Actual: got}
		}
	}
	return nil
}

func mustMatch(a, b *Bitset) {
	// Equal word counts are not enough: a wider operand would leave bits
	// past the receiver's last element.
	if a.elements != b.elements {
		panic(&ErrSizeMismatch{Expected: a.elements, Actual: b.elements})
	}
}

func mustMatch3(a, b, c *Bitset) {
	mustMatch(a, b)
	mustMatch(a, c)
}
