// Package kernel provides word-wise kernels over equally sized []uint64 slices.
//
// # Dispatch
//
// Every exported kernel calls through a package-level function pointer that is
// bound once at init. CPU features are probed with golang.org/x/sys/cpu:
//
//   - x86-64: POPCNT selects the 4-way unrolled kernels
//   - ARM64: ASIMD (NEON) selects the 4-way unrolled kernels
//   - everything else runs the plain generic loops
//
// Set BITSET_KERNEL=generic|popcnt|neon to force a selection (ignored when the
// CPU does not support it).
//
// # Contract
//
// Kernels assume every operand has the same length as dst. Callers MUST
// check lengths; the kernels do not.
package kernel
