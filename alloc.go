package bitset

import "github.com/hupe1980/bitset/internal/mem"

// Allocator provides storage for bitset data words.
//
// Alloc and Realloc must return zeroed words past any copied prefix. An
// implementation signals exhaustion by returning nil (or a short slice); the
// bitset then aborts the process. Out-of-memory is not a recoverable error
// for this package.
type Allocator interface {
	Alloc(words int) []uint64
	Realloc(buf []uint64, words int) []uint64
	Free(buf []uint64)
}

// DefaultAllocator is used when no WithAllocator option is given.
var DefaultAllocator Allocator = HeapAllocator{}

// HeapAllocator allocates 64-byte aligned words on the Go heap.
// Free is a no-op; the garbage collector reclaims released storage.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(words int) []uint64 { return mem.AllocWords(words) }

// Realloc implements Allocator.
func (HeapAllocator) Realloc(buf []uint64, words int) []uint64 {
	return mem.ReallocWords(buf, words)
}

// Free implements Allocator.
func (HeapAllocator) Free([]uint64) {}

// PoolAllocator recycles released storage by power-of-two size class.
// It is safe for concurrent use.
type PoolAllocator struct {
	pool *mem.Pool
}

// NewPoolAllocator creates a PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pool: mem.NewPool()}
}

// Alloc implements Allocator.
func (p *PoolAllocator) Alloc(words int) []uint64 { return p.pool.Get(words) }

// Realloc implements Allocator.
func (p *PoolAllocator) Realloc(buf []uint64, words int) []uint64 {
	if words <= cap(buf) {
		return mem.ReallocWords(buf, words)
	}
	out := p.pool.Get(words)
	copy(out, buf)
	p.pool.Put(buf)
	return out
}

// Free implements Allocator.
func (p *PoolAllocator) Free(buf []uint64) { p.pool.Put(buf) }

// allocWords is the fail-fast wrapper around Allocator.Alloc.
func (s *Bitset) allocWords(words int) []uint64 {
	buf := s.alloc.Alloc(words)
	if len(buf) < words {
		s.logger.LogAllocFailure(words, len(buf))
		mem.Abort("allocator returned short buffer", "words", words, "got", len(buf))
		return nil
	}
	return buf[:words]
}

// reallocWords is the fail-fast wrapper around Allocator.Realloc.
func (s *Bitset) reallocWords(buf []uint64, words int) []uint64 {
	out := s.alloc.Realloc(buf, words)
	if len(out) < words {
		s.logger.LogAllocFailure(words, len(out))
		mem.Abort("allocator returned short buffer", "words", words, "got", len(out))
		return nil
	}
	return out[:words]
}
