package mem

import (
	"math"
	"unsafe"
)

// Alignment is the byte alignment of every buffer (one cache line).
const Alignment = 64

// WordBytes is the size of one storage word.
const WordBytes = 8

// MaxWords is the largest word count AllocWords accepts.
const MaxWords = (math.MaxInt - Alignment) / WordBytes

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes.
	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocWords allocates n zeroed words with 64-byte alignment.
//
// n == 0 returns an empty, non-nil slice. A negative or oversized n is an
// allocation failure and aborts the process.
func AllocWords(n int) []uint64 {
	if n == 0 {
		return []uint64{}
	}
	if n < 0 || n > MaxWords {
		Abort("word allocation out of range", "words", n)
		return nil
	}

	byteSlice := AllocAligned(n * WordBytes)

	// AllocAligned guarantees 64-byte alignment, which satisfies uint64.
	ptr := unsafe.Pointer(&byteSlice[0])    //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// ReallocWords returns a buffer of n words holding the first min(len(buf), n)
// words of buf. Words past the copied prefix are zero. buf is reused when its
// capacity suffices.
func ReallocWords(buf []uint64, n int) []uint64 {
	if n < 0 || n > MaxWords {
		Abort("word reallocation out of range", "words", n)
		return nil
	}
	if n <= cap(buf) {
		old := len(buf)
		buf = buf[:n]
		if n > old {
			clear(buf[old:])
		}
		return buf
	}

	out := AllocWords(n)
	copy(out, buf)
	return out
}
