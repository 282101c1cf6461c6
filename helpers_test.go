package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func fromMembers(elements int, members []int, opts ...Option) *Bitset {
	s := New(elements, opts...)
	for _, m := range members {
		s.Set(m)
	}
	return s
}
