package arena

import (
	"sync/atomic"

	"github.com/hupe1980/bitset/internal/mem"
)

// BlockAlign is the word alignment of every block handed out (one cache line).
const BlockAlign = 8

// Slab is a contiguous word arena. Blocks are carved off the front with a
// lock-free bump pointer and never overlap: each returned slice has its
// capacity clipped to its own length.
//
// Individual blocks are not reclaimed; Reset rewinds the whole slab.
type Slab struct {
	buf []uint64
	off atomic.Uint64
}

// NewSlab creates a Slab holding capacity words.
func NewSlab(capacity int) *Slab {
	return &Slab{buf: mem.AllocWords(capacity)}
}

// SlabWords returns the slab capacity needed for count blocks of words each.
func SlabWords(count, words int) int {
	return count * alignUp(words)
}

func alignUp(words int) int {
	return (words + BlockAlign - 1) &^ (BlockAlign - 1)
}

// Alloc carves words zeroed words off the slab.
// It returns nil if the slab cannot satisfy the request.
func (s *Slab) Alloc(words int) []uint64 {
	if words < 0 {
		return nil
	}
	step := uint64(alignUp(words))

	for {
		cur := s.off.Load()
		next := cur + step
		if next > uint64(len(s.buf)) {
			return nil
		}
		if s.off.CompareAndSwap(cur, next) {
			return s.buf[cur : cur+uint64(words) : cur+uint64(words)]
		}
	}
}

// Realloc returns a block of words words holding the prefix of buf.
// It reuses buf when its capacity suffices and carves a new block otherwise.
func (s *Slab) Realloc(buf []uint64, words int) []uint64 {
	if words <= cap(buf) {
		return mem.ReallocWords(buf, words)
	}
	out := s.Alloc(words)
	if out == nil {
		return nil
	}
	copy(out, buf)
	return out
}

// Free is a no-op: slab blocks are released together by Reset.
func (s *Slab) Free([]uint64) {}

// Used returns the number of words handed out, including alignment padding.
func (s *Slab) Used() int {
	return int(s.off.Load())
}

// Cap returns the total slab capacity in words.
func (s *Slab) Cap() int {
	return len(s.buf)
}

// Reset zeroes the slab and rewinds it. Blocks handed out earlier must no
// longer be used.
func (s *Slab) Reset() {
	clear(s.buf)
	s.off.Store(0)
}
