package mem

import (
	"math/bits"
	"sync"
)

// maxPoolClass bounds pooled buffers to 2^maxPoolClass words (8 MiB).
const maxPoolClass = 20

// Pool recycles word buffers by power-of-two size class.
// It is safe for concurrent use.
type Pool struct {
	classes [maxPoolClass + 1]sync.Pool
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get returns n zeroed words.
func (p *Pool) Get(n int) []uint64 {
	class := sizeClass(n)
	if n <= 0 || class > maxPoolClass {
		return AllocWords(n)
	}

	if v := p.classes[class].Get(); v != nil {
		buf := (*v.(*[]uint64))[:n]
		clear(buf)
		return buf
	}
	return AllocWords(1 << class)[:n]
}

// Put hands buf back for reuse. Buffers that did not come from Get are
// accepted when their capacity is an exact size class.
func (p *Pool) Put(buf []uint64) {
	c := cap(buf)
	if c == 0 {
		return
	}
	class := sizeClass(c)
	if class > maxPoolClass || 1<<class != c {
		return
	}
	buf = buf[:c]
	p.classes[class].Put(&buf)
}
