package sets

import (
	"fmt"

	"github.com/npillmayer/interval/internal/dbg"
	"github.com/npillmayer/interval/option"
)

// Optional is a set holding either no element or exactly one element of
// type T. It is the degenerate member of the set-algebra protocol: rich
// set types describe many elements, Optional describes at most one, and
// both speak the same protocol.
//
// Optional wraps an option.Option and exposes it for interoperation with
// code that does not speak the set protocol. Two Optionals are equal
// (with ==, or Equal) iff both are empty or both hold equal values.
// The zero value is the empty set.
//
// Operations whose result depends on the elements' own structure
// (disjointness, overlap, containment, subset ordering, bounds) forward
// to T's implementation of the respective capability interface if there
// is one. Element types without the capability get scalar semantics: a
// value is its own bound, and two values are disjoint iff they differ.
type Optional[T comparable] struct {
	value option.Option[T]
}

// Empty returns the set with no elements.
func Empty[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Singleton returns the set {v}.
func Singleton[T comparable](v T) Optional[T] {
	return Optional[T]{value: option.Some(v)}
}

// Wrap lifts a raw optional value into a set, preserving its emptiness.
func Wrap[T comparable](v option.Option[T]) Optional[T] {
	return Optional[T]{value: v}
}

// Option returns the raw optional underneath the set.
func (s Optional[T]) Option() option.Option[T] {
	return s.value
}

// SetOption replaces the raw optional underneath the set.
func (s *Optional[T]) SetOption(v option.Option[T]) {
	s.value = v
}

// Set replaces the set's content with {v}.
func (s *Optional[T]) Set(v T) {
	s.value = option.Some(v)
}

// Clear empties the set.
func (s *Optional[T]) Clear() {
	s.value = option.None[T]()
}

// Get returns the contained element and a boolean indicating presence.
func (s Optional[T]) Get() (T, bool) {
	return s.value.Unwrap()
}

// Must returns the contained element or panics on an empty set.
func (s Optional[T]) Must() T {
	return s.value.MustUnwrap()
}

// Size returns the number of elements: 0 or 1.
func (s Optional[T]) Size() int {
	if s.value.IsSome() {
		return 1
	}
	return 0
}

// Equal reports whether both sets are empty or hold equal elements.
func (s Optional[T]) Equal(other Optional[T]) bool {
	return s == other
}

// String returns "{v}" for a singleton and "∅" for the empty set.
func (s Optional[T]) String() string {
	if v, ok := s.value.Unwrap(); ok {
		return fmt.Sprintf("{%v}", v)
	}
	return "∅"
}

// Lower returns the lower bound of the contained element. For element
// types implementing Bounded[T] the element's own bound is returned;
// any other element is its own bound.
//
// Calling Lower on an empty set is a caller bug: it panics in checked
// builds and returns an unspecified value in builds with tag 'unchecked'.
// Elements whose bound type differs from T need the package-level Lower
// function instead.
func (s Optional[T]) Lower() T {
	s.require(s.value.IsSome(), "lower bound taken on empty set")
	v, _ := s.value.Unwrap()
	if b, ok := any(v).(Bounded[T]); ok {
		return b.Lower()
	}
	return v
}

// Upper returns the upper bound of the contained element. See Lower for
// the empty-set contract.
func (s Optional[T]) Upper() T {
	s.require(s.value.IsSome(), "upper bound taken on empty set")
	v, _ := s.value.Unwrap()
	if b, ok := any(v).(Bounded[T]); ok {
		return b.Upper()
	}
	return v
}

// Intersection returns the common element of two sets. At cardinality
// zero-or-one there is no partial overlap: the intersection is non-empty
// only if both sets hold the same element, compared as whole values.
// Element-level overlap arithmetic is the business of the element type,
// not of this wrapper.
func (s Optional[T]) Intersection(other Optional[T]) Optional[T] {
	if IsEmpty(s) || IsEmpty(other) || s != other {
		return Empty[T]()
	}
	return s
}

// Difference returns s without the elements of other. Removing anything
// but the contained element itself leaves the set unchanged.
func (s Optional[T]) Difference(other Optional[T]) Optional[T] {
	if IsEmpty(s) || s == other {
		return Empty[T]()
	}
	return s
}

// IsDisjoint reports whether the two sets share no element. An empty set
// is disjoint from everything. Non-empty sets forward to the elements'
// own disjointness test if T implements Disjoint[T].
func (s Optional[T]) IsDisjoint(other Optional[T]) bool {
	a, ok := s.value.Unwrap()
	if !ok {
		return true
	}
	b, ok := other.value.Unwrap()
	if !ok {
		return true
	}
	if d, ok := any(a).(Disjoint[T]); ok {
		return d.IsDisjoint(b)
	}
	return a != b
}

// Overlap reports whether the two sets share at least one element. It is
// false whenever either set is empty, and otherwise the complement of
// IsDisjoint, forwarding to T's Overlap capability if present.
func (s Optional[T]) Overlap(other Optional[T]) bool {
	a, ok := s.value.Unwrap()
	if !ok {
		return false
	}
	b, ok := other.value.Unwrap()
	if !ok {
		return false
	}
	if o, ok := any(a).(Overlapper[T]); ok {
		return o.Overlap(b)
	}
	return a == b
}

// Contains reports whether v is a member of the set. An empty set
// contains nothing. Non-empty sets forward to the element's own
// membership test if T implements Container[T]. For probe types other
// than T use the package-level Contains function.
func (s Optional[T]) Contains(v T) bool {
	e, ok := s.value.Unwrap()
	if !ok {
		return false
	}
	if c, ok := any(e).(Container[T]); ok {
		return c.Contains(v)
	}
	return e == v
}

// IsSubset reports whether every element of s is an element of other.
// The empty set is a subset of anything; a non-empty set is never a
// subset of the empty set. Two non-empty sets forward to the elements'
// own subset test if T implements Subset[T].
func (s Optional[T]) IsSubset(other Optional[T]) bool {
	a, ok := s.value.Unwrap()
	if !ok {
		return true
	}
	b, ok := other.value.Unwrap()
	if !ok {
		return false
	}
	if sub, ok := any(a).(Subset[T]); ok {
		return sub.IsSubset(b)
	}
	return a == b
}

// IsProperSubset reports whether s is a subset of other and the two sets
// are not equal as whole sets. Note that the inequality is on the sets,
// layered on top of the subset relation; it is not a forwarded
// proper-subset test on the elements.
func (s Optional[T]) IsProperSubset(other Optional[T]) bool {
	return s.IsSubset(other) && s != other
}

// require panics on a violated precondition in checked builds.
func (s Optional[T]) require(cond bool, msg string) {
	if dbg.Enabled && !cond {
		tracer().Errorf("sets: %s", msg)
	}
	dbg.Assert(cond, "sets: %s", msg)
}

// Lower returns the lower bound, of type B, of the element contained in a
// non-empty set. The bound type is not inferable and is given explicitly:
//
//	lo := sets.Lower[int](s)   // s is an Optional[interval.Interval[int]]
//
// The empty-set contract is that of the Lower method.
func Lower[B any, T interface {
	comparable
	Bounded[B]
}](s Optional[T]) B {
	s.require(s.value.IsSome(), "lower bound taken on empty set")
	v, _ := s.value.Unwrap()
	return v.Lower()
}

// Upper returns the upper bound, of type B, of the element contained in a
// non-empty set. See Lower.
func Upper[B any, T interface {
	comparable
	Bounded[B]
}](s Optional[T]) B {
	s.require(s.value.IsSome(), "upper bound taken on empty set")
	v, _ := s.value.Unwrap()
	return v.Upper()
}

// Contains reports whether v, of probe type U, is a member of the set:
// false for the empty set, otherwise the contained element's own
// membership test.
func Contains[U any, T interface {
	comparable
	Container[U]
}](s Optional[T], v U) bool {
	e, ok := s.value.Unwrap()
	if !ok {
		return false
	}
	return e.Contains(v)
}

// Optional implements the full set-algebra protocol.
var (
	_ Cardinality                         = Optional[int]{}
	_ Bounded[int]                        = Optional[int]{}
	_ Intersecter[Optional[int]]          = Optional[int]{}
	_ Differencer[Optional[int]]          = Optional[int]{}
	_ Disjoint[Optional[int]]             = Optional[int]{}
	_ Overlapper[Optional[int]]           = Optional[int]{}
	_ Container[int]                      = Optional[int]{}
	_ Subset[Optional[int]]               = Optional[int]{}
	_ ProperSubset[Optional[int]]         = Optional[int]{}
	_ Disjoint[Optional[Optional[int]]]   = Optional[Optional[int]]{}
	_ Overlapper[Optional[Optional[int]]] = Optional[Optional[int]]{}
)
