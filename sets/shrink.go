package sets

import "cmp"

// Bound-shrinking clips a point set against a limit: the element is kept
// if it satisfies the bound comparison, otherwise the set collapses to
// empty. An empty set always shrinks to empty. The surrounding interval
// machinery uses these to prune degenerate point sets the same way it
// prunes full intervals.

// ShrinkLeft keeps the element iff it is ≥ lb.
func ShrinkLeft[T cmp.Ordered](s Optional[T], lb T) Optional[T] {
	return shrinkIf(s, lb, func(v, lb T) bool { return v >= lb })
}

// ShrinkRight keeps the element iff it is ≤ ub.
func ShrinkRight[T cmp.Ordered](s Optional[T], ub T) Optional[T] {
	return shrinkIf(s, ub, func(v, ub T) bool { return v <= ub })
}

// StrictShrinkLeft keeps the element iff it is > lb.
func StrictShrinkLeft[T cmp.Ordered](s Optional[T], lb T) Optional[T] {
	return shrinkIf(s, lb, func(v, lb T) bool { return v > lb })
}

// StrictShrinkRight keeps the element iff it is < ub.
func StrictShrinkRight[T cmp.Ordered](s Optional[T], ub T) Optional[T] {
	return shrinkIf(s, ub, func(v, ub T) bool { return v < ub })
}

func shrinkIf[T cmp.Ordered](s Optional[T], bound T, keep func(v, bound T) bool) Optional[T] {
	if v, ok := s.value.Unwrap(); ok && keep(v, bound) {
		return Singleton(v)
	}
	return Empty[T]()
}
