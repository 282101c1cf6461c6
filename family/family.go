package family

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/bitset"
	"github.com/hupe1980/bitset/internal/arena"
	"golang.org/x/sync/errgroup"
)

// ErrNegativeCount is raised when a Family is created with a negative count.
var ErrNegativeCount = errors.New("family: negative count")

// Family is a fixed collection of bitsets over the same elements, backed by
// one slab.
type Family struct {
	elements int
	sets     []*bitset.Bitset
	slab     *arena.Slab
	logger   *bitset.Logger
	workers  int
}

// New creates count empty bitsets over elements elements.
//
// Members draw their storage from the family slab. Re-initialising a member
// for more elements than the family was built with exhausts the slab and
// aborts the process.
func New(count, elements int, opts ...Option) *Family {
	if count < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCount, count))
	}
	o := applyOptions(opts)

	words := bitset.DataWords(elements)
	slab := arena.NewSlab(arena.SlabWords(count, words))

	sets := make([]*bitset.Bitset, count)
	for i := range sets {
		sets[i] = bitset.New(elements,
			bitset.WithAllocator(slab),
			bitset.WithLogger(o.logger),
		)
	}

	return &Family{
		elements: elements,
		sets:     sets,
		slab:     slab,
		logger:   o.logger.WithElements(elements),
		workers:  o.workers,
	}
}

// Len returns the number of members.
func (f *Family) Len() int { return len(f.sets) }

// Elements returns the element count shared by all members.
func (f *Family) Elements() int { return f.elements }

// At returns member i. Its position changes when the family is sorted.
func (f *Family) At(i int) *bitset.Bitset { return f.sets[i] }

// All returns an iterator over the members in their current order.
func (f *Family) All() iter.Seq2[int, *bitset.Bitset] {
	return func(yield func(int, *bitset.Bitset) bool) {
		for i, s := range f.sets {
			if !yield(i, s) {
				return
			}
		}
	}
}

// chunks splits [0, n) into at most f.workers contiguous ranges.
func (f *Family) chunks(n int) [][2]int {
	if n == 0 {
		return nil
	}
	workers := min(f.workers, n)
	size := (n + workers - 1) / workers

	out := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}

// TagOrdAll stores each member's cardinality in its tag.
// It returns the context error if ctx is cancelled before all members are
// done; members already processed keep their new tag.
func (f *Family) TagOrdAll(ctx context.Context) error {
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range f.chunks(len(f.sets)) {
		g.Go(func() error {
			for _, s := range f.sets[c[0]:c[1]] {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.TagOrd()
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		err = fmt.Errorf("family: tag ord: %w", err)
	}
	f.logger.LogBatch(ctx, "tag_ord", len(f.sets), time.Since(start), err)
	return err
}

// SortByTag orders the members by tag, ascending unless descending is set.
// Members with equal tags keep their relative order.
func (f *Family) SortByTag(descending bool) {
	slices.SortStableFunc(f.sets, func(a, b *bitset.Bitset) int {
		if descending {
			return cmp.Compare(b.Tag(), a.Tag())
		}
		return cmp.Compare(a.Tag(), b.Tag())
	})
}

// UnionInto stores the union of all members in dst and returns it. dst is
// re-initialised for the family's element count; an empty family yields the
// empty set.
func (f *Family) UnionInto(dst *bitset.Bitset) *bitset.Bitset {
	dst.Null(f.elements)
	for _, s := range f.sets {
		dst.UnionWith(s)
	}
	return dst
}

// IntersectionInto stores the intersection of all members in dst and returns
// it. dst is re-initialised for the family's element count; an empty family
// yields the universe.
func (f *Family) IntersectionInto(dst *bitset.Bitset) *bitset.Bitset {
	dst.Universe(f.elements)
	for _, s := range f.sets {
		dst.IntersectWith(s)
	}
	return dst
}

// DistMatrix returns m with m[i][j] = At(i).Dist(At(j)). The diagonal holds
// each member's cardinality.
func (f *Family) DistMatrix(ctx context.Context) ([][]int, error) {
	start := time.Now()
	n := len(f.sets)

	m := make([][]int, n)
	cells := make([]int, n*n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := f.sets[i]
			for j := i; j < n; j++ {
				d := row.Dist(f.sets[j])
				m[i][j] = d
				m[j][i] = d
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		err = fmt.Errorf("family: dist matrix: %w", err)
		m = nil
	}
	f.logger.LogBatch(ctx, "dist_matrix", n, time.Since(start), err)
	return m, err
}

// Release returns every member's storage and resets the slab. The family
// and its members must not be used afterwards.
func (f *Family) Release() {
	for _, s := range f.sets {
		s.Release()
	}
	f.slab.Reset()
	f.sets = nil
}
