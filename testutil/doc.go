// Package testutil provides testing utilities for bitset.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	members := rng.Members(1000, 0.1) // ~10% of [0, 1000), ascending
//	words := rng.Words(16)            // raw random words
package testutil
