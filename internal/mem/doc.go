// Package mem provides word allocation utilities for bitset storage.
//
// # Aligned Allocation
//
// AllocWords returns zeroed []uint64 buffers whose first word sits on a
// 64-byte (cache line) boundary.
//
// # Fail-Fast Policy
//
// Running out of memory is treated as unrecoverable. Abort logs the reason
// and terminates the process (SIGABRT on unix). Nothing is returned to the
// caller and nothing is retried. Tests may swap the handler with
// SetAbortHandler.
//
// # Pooling
//
// Pool recycles word buffers by power-of-two size class through sync.Pool.
package mem
