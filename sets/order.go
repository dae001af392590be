package sets

import "cmp"

// Compare orders two point sets by the natural order of the underlying
// optional: the empty set sorts before any singleton, and singletons
// order by their contained values. The result follows the convention of
// package cmp.
func Compare[T cmp.Ordered](a, b Optional[T]) int {
	av, aok := a.value.Unwrap()
	bv, bok := b.value.Unwrap()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return +1
	}
	return cmp.Compare(av, bv)
}
