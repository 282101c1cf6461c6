package kernel

// Kernel function pointers, bound once at init by bind.
var (
	kernelOr            = orGeneric
	kernelOrInPlace     = orInPlaceGeneric
	kernelAnd           = andGeneric
	kernelAndInPlace    = andInPlaceGeneric
	kernelAndNot        = andNotGeneric
	kernelAndNotInPlace = andNotInPlaceGeneric
	kernelPopcount      = popcountGeneric
	kernelPopcountAnd   = popcountAndGeneric
)

func bind(isa ISA) {
	switch isa {
	case POPCNT, NEON:
		kernelOr = orUnrolled
		kernelOrInPlace = orInPlaceUnrolled
		kernelAnd = andUnrolled
		kernelAndInPlace = andInPlaceUnrolled
		kernelAndNot = andNotUnrolled
		kernelAndNotInPlace = andNotInPlaceUnrolled
		kernelPopcount = popcountUnrolled
		kernelPopcountAnd = popcountAndUnrolled
	default:
		kernelOr = orGeneric
		kernelOrInPlace = orInPlaceGeneric
		kernelAnd = andGeneric
		kernelAndInPlace = andInPlaceGeneric
		kernelAndNot = andNotGeneric
		kernelAndNotInPlace = andNotInPlaceGeneric
		kernelPopcount = popcountGeneric
		kernelPopcountAnd = popcountAndGeneric
	}
}

// ============================================================================
// Binary kernels
// ============================================================================

// Or performs dst[i] = a[i] | b[i].
func Or(dst, a, b []uint64) {
	kernelOr(dst, a, b)
}

// OrInPlace performs dst[i] |= src[i].
func OrInPlace(dst, src []uint64) {
	kernelOrInPlace(dst, src)
}

// And performs dst[i] = a[i] & b[i].
func And(dst, a, b []uint64) {
	kernelAnd(dst, a, b)
}

// AndInPlace performs dst[i] &= src[i].
func AndInPlace(dst, src []uint64) {
	kernelAndInPlace(dst, src)
}

// AndNot performs dst[i] = a[i] &^ b[i].
func AndNot(dst, a, b []uint64) {
	kernelAndNot(dst, a, b)
}

// AndNotInPlace performs dst[i] &^= src[i].
func AndNotInPlace(dst, src []uint64) {
	kernelAndNotInPlace(dst, src)
}

// AndNotFrom performs dst[i] = a[i] &^ dst[i].
func AndNotFrom(a, dst []uint64) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] &^ dst[i]
	}
}

// MaskInPlace performs dst[i] &= ^(dst[i] &^ src[i]), clearing every bit of
// dst where src is zero.
func MaskInPlace(dst, src []uint64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] &= ^(dst[i] &^ src[i])
	}
}

// ============================================================================
// Ternary kernels
// ============================================================================

// OrAndNot performs dst[i] = a[i] | (b[i] &^ c[i]).
func OrAndNot(dst, a, b, c []uint64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	c = c[:len(dst)]
	for i := range dst {
		dst[i] = a[i] | (b[i] &^ c[i])
	}
}

// AndXorInPlace performs dst[i] &= a[i] ^ b[i].
func AndXorInPlace(dst, a, b []uint64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] &= a[i] ^ b[i]
	}
}

// Select performs dst[i] = b[i] ^ ((b[i] ^ a[i]) & c[i]): bits come from a
// where c is set and from b elsewhere.
func Select(dst, a, b, c []uint64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	c = c[:len(dst)]
	for i := range dst {
		dst[i] = b[i] ^ ((b[i] ^ a[i]) & c[i])
	}
}

// ============================================================================
// Reductions
// ============================================================================

// Popcount counts all set bits across words.
func Popcount(words []uint64) int {
	return kernelPopcount(words)
}

// PopcountAnd counts the set bits of a[i] & b[i] across all words.
func PopcountAnd(a, b []uint64) int {
	return kernelPopcountAnd(a, b)
}

// IsZero reports whether every word is zero. It stops at the first non-zero word.
func IsZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Intersects reports whether a[i] & b[i] is non-zero for any i.
// It stops at the first such word.
func Intersects(a, b []uint64) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// HasAndNot reports whether a[i] &^ b[i] is non-zero for any i, i.e. whether
// a has a bit that b lacks. It stops at the first such word.
func HasAndNot(a, b []uint64) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&^b[i] != 0 {
			return true
		}
	}
	return false
}
