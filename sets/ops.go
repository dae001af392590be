package sets

// The interfaces in this file make up the set-algebra protocol. They are
// deliberately small and independent: a type implements exactly the
// capabilities it supports, and generic code states per operation which
// capabilities it requires.

// Cardinality is implemented by sets that know their number of elements.
type Cardinality interface {
	Size() int
}

// IsEmpty reports whether a set has no elements.
func IsEmpty(s Cardinality) bool {
	return s.Size() == 0
}

// IsSingleton reports whether a set holds exactly one element.
func IsSingleton(s Cardinality) bool {
	return s.Size() == 1
}

// Bounded is implemented by non-empty sets with a smallest and largest
// element of bound type B. Calling Lower or Upper on an empty set is a
// contract violation (see package documentation on debug checks).
type Bounded[B any] interface {
	Lower() B
	Upper() B
}

// Intersecter is implemented by sets that can intersect with a set of
// type S, yielding a set of the same type.
type Intersecter[S any] interface {
	Intersection(other S) S
}

// Differencer is implemented by sets that can remove the elements of a
// set of type S, yielding a set of the same type.
type Differencer[S any] interface {
	Difference(other S) S
}

// Disjoint is implemented by sets that can decide whether they share no
// element with a set of type S.
type Disjoint[S any] interface {
	IsDisjoint(other S) bool
}

// Overlapper is implemented by sets that can decide whether they share at
// least one element with a set of type S.
type Overlapper[S any] interface {
	Overlap(other S) bool
}

// Container is implemented by sets that can decide membership of a value
// of probe type U.
type Container[U any] interface {
	Contains(v U) bool
}

// Subset is implemented by sets that can decide whether all of their
// elements are contained in a set of type S.
type Subset[S any] interface {
	IsSubset(other S) bool
}

// ProperSubset refines Subset: the subset relation holds and the two sets
// are not equal.
type ProperSubset[S any] interface {
	IsProperSubset(other S) bool
}

// Shrinkable is implemented by sets that can be clipped against a bound
// of type B, keeping only the elements on one side of it. The strict
// variants exclude the bound itself. Shrinking never grows a set; an
// empty set stays empty.
type Shrinkable[S any, B any] interface {
	ShrinkLeft(lb B) S
	ShrinkRight(ub B) S
	StrictShrinkLeft(lb B) S
	StrictShrinkRight(ub B) S
}
