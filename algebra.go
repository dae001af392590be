package interval

import (
	"github.com/npillmayer/interval/sets"
)

// Intersection returns the integers contained in both intervals.
func (iv Interval[T]) Intersection(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty[T]()
	}
	return New(max(iv.lo, other.lo), min(iv.hi, other.hi))
}

// Union returns the smallest interval containing both intervals (their
// convex hull). The hull may cover integers contained in neither operand
// when the operands are apart; closed intervals cannot represent a union
// with a gap.
func (iv Interval[T]) Union(other Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return Interval[T]{lo: min(iv.lo, other.lo), hi: max(iv.hi, other.hi)}
}

// Difference returns iv without the integers of other, trimming at the
// ends only. A subtrahend lying strictly inside iv would split it; in
// that case iv is returned unchanged (see the package documentation).
func (iv Interval[T]) Difference(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || iv.IsDisjoint(other) {
		return iv
	}
	if other.lo <= iv.lo && iv.hi <= other.hi {
		return Empty[T]()
	}
	if other.lo <= iv.lo {
		// other covers the left end; other.hi < iv.hi here
		return Interval[T]{lo: other.hi + 1, hi: iv.hi}
	}
	if iv.hi <= other.hi {
		// other covers the right end; iv.lo < other.lo here
		return Interval[T]{lo: iv.lo, hi: other.lo - 1}
	}
	return iv
}

// IsDisjoint reports whether the intervals share no integer. Empty
// intervals are disjoint from everything.
func (iv Interval[T]) IsDisjoint(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	return iv.hi < other.lo || other.hi < iv.lo
}

// Overlap reports whether the intervals share at least one integer.
func (iv Interval[T]) Overlap(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !iv.IsDisjoint(other)
}

// Contains reports whether v lies inside the interval.
func (iv Interval[T]) Contains(v T) bool {
	return iv.lo <= v && v <= iv.hi
}

// IsSubset reports whether every integer of iv lies inside other. The
// empty interval is a subset of anything.
func (iv Interval[T]) IsSubset(other Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	if other.IsEmpty() {
		return false
	}
	return other.lo <= iv.lo && iv.hi <= other.hi
}

// IsProperSubset reports whether iv is a subset of other and the two
// intervals are not equal.
func (iv Interval[T]) IsProperSubset(other Interval[T]) bool {
	return iv.IsSubset(other) && iv != other
}

// ShrinkLeft clips the interval against a lower bound, keeping the
// integers ≥ lb.
func (iv Interval[T]) ShrinkLeft(lb T) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return New(max(iv.lo, lb), iv.hi)
}

// ShrinkRight clips the interval against an upper bound, keeping the
// integers ≤ ub.
func (iv Interval[T]) ShrinkRight(ub T) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return New(iv.lo, min(iv.hi, ub))
}

// StrictShrinkLeft keeps the integers > lb.
func (iv Interval[T]) StrictShrinkLeft(lb T) Interval[T] {
	if iv.IsEmpty() || iv.hi <= lb {
		return Empty[T]()
	}
	return iv.ShrinkLeft(lb + 1)
}

// StrictShrinkRight keeps the integers < ub.
func (iv Interval[T]) StrictShrinkRight(ub T) Interval[T] {
	if iv.IsEmpty() || iv.lo >= ub {
		return Empty[T]()
	}
	return iv.ShrinkRight(ub - 1)
}

// Interval implements the full set-algebra protocol.
var (
	_ sets.Cardinality                    = Interval[int]{}
	_ sets.Bounded[int]                   = Interval[int]{}
	_ sets.Intersecter[Interval[int]]     = Interval[int]{}
	_ sets.Differencer[Interval[int]]     = Interval[int]{}
	_ sets.Disjoint[Interval[int]]        = Interval[int]{}
	_ sets.Overlapper[Interval[int]]      = Interval[int]{}
	_ sets.Container[int]                 = Interval[int]{}
	_ sets.Subset[Interval[int]]          = Interval[int]{}
	_ sets.ProperSubset[Interval[int]]    = Interval[int]{}
	_ sets.Shrinkable[Interval[int], int] = Interval[int]{}
)
