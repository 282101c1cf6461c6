// Package family manages many bitsets of one size.
//
// A Family allocates all of its members from a single contiguous slab, so
// walking the members is a linear scan over memory. Members are ordinary
// *bitset.Bitset values and support every operation of package bitset.
//
// # Batch operations
//
// TagOrdAll and DistMatrix fan work out over goroutines with
// golang.org/x/sync/errgroup. Each goroutine writes only to members (or
// result rows) that no other goroutine touches, which is the only kind of
// concurrency bitsets allow. The caller must not mutate members while a
// batch runs.
//
// # Sorting
//
// Tags are the intended sort key: TagOrdAll stamps each member with its
// cardinality and SortByTag orders the members by it.
package family
