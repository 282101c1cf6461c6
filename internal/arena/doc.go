// Package arena provides a contiguous word slab for allocating many
// same-sized bitsets.
//
// # Layout
//
// Blocks are carved off a single 64-byte aligned []uint64 with a lock-free
// bump pointer. Each block starts on a cache line (8 words) and its capacity
// is clipped, so no block can reach into a neighbour.
//
// # Lifetime
//
// Blocks are never freed one by one. Reset zeroes and rewinds the slab; the
// slab itself is released by dropping the last reference.
package arena
