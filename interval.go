package interval

import (
	"fmt"
	"math"

	"github.com/npillmayer/interval/internal/dbg"
)

// Integer enumerates the built-in integer types usable as interval bounds.
// Defined types with an integer underlying type (e.g. fixed-point font
// units) qualify as well.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Interval is a closed interval [lo, hi] over an integer bound type.
//
// All empty intervals are canonicalized to a single representation, so
// intervals compare correctly with ==. Note that the zero value is the
// singleton [0, 0], not the empty interval; use Empty for the latter.
type Interval[T Integer] struct {
	lo, hi T
}

// New returns the interval [lo, hi]. If lo > hi the interval denotes no
// integers and the canonical empty interval is returned.
func New[T Integer](lo, hi T) Interval[T] {
	if lo > hi {
		return Empty[T]()
	}
	return Interval[T]{lo: lo, hi: hi}
}

// Empty returns the interval containing no integers.
func Empty[T Integer]() Interval[T] {
	return Interval[T]{lo: 1, hi: 0}
}

// Singleton returns the degenerate interval [v, v].
func Singleton[T Integer](v T) Interval[T] {
	return Interval[T]{lo: v, hi: v}
}

// Hull returns the smallest interval containing all given values.
// Called without values it returns the empty interval.
func Hull[T Integer](vs ...T) Interval[T] {
	if len(vs) == 0 {
		return Empty[T]()
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Interval[T]{lo: lo, hi: hi}
}

// IsEmpty reports whether the interval contains no integers.
func (iv Interval[T]) IsEmpty() bool {
	return iv.lo > iv.hi
}

// Size returns the number of integers in the interval, saturating at the
// maximum int value for very wide intervals.
func (iv Interval[T]) Size() int {
	if iv.IsEmpty() {
		return 0
	}
	// width is exact modulo 2^64 for signed and unsigned bounds alike
	width := uint64(iv.hi) - uint64(iv.lo)
	if width >= math.MaxInt {
		return math.MaxInt
	}
	return int(width) + 1
}

// Lower returns the smallest integer of the interval.
//
// Calling Lower on an empty interval is a caller bug: it panics in
// checked builds and returns an unspecified value in builds with tag
// 'unchecked'.
func (iv Interval[T]) Lower() T {
	iv.require(!iv.IsEmpty(), "lower bound taken on empty interval")
	return iv.lo
}

// Upper returns the largest integer of the interval. See Lower for the
// empty-interval contract.
func (iv Interval[T]) Upper() T {
	iv.require(!iv.IsEmpty(), "upper bound taken on empty interval")
	return iv.hi
}

// require panics on a violated precondition in checked builds.
func (iv Interval[T]) require(cond bool, msg string) {
	if dbg.Enabled && !cond {
		tracer().Errorf("interval: %s", msg)
	}
	dbg.Assert(cond, "interval: %s", msg)
}

// String returns "[lo, hi]", or "∅" for the empty interval.
func (iv Interval[T]) String() string {
	if iv.IsEmpty() {
		return "∅"
	}
	return fmt.Sprintf("[%v, %v]", iv.lo, iv.hi)
}
