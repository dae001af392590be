package interval

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type AlgebraTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestIntervalAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "interval.core")
	defer teardown()
	suite.Run(t, new(AlgebraTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *AlgebraTestEnviron) TestConstruction() {
	env.Equal(Empty[int](), New(3, 1), "expected reversed bounds to canonicalize to empty")
	env.Equal(New(4, 4), Singleton(4), "expected [4,4] to equal Singleton(4)")
	env.Equal(New(1, 7), Hull(4, 1, 7, 5), "expected hull of {4,1,7,5} to be [1,7]")
	env.Equal(Empty[int](), Hull[int](), "expected hull of no values to be empty")
	env.True(Empty[int]().IsEmpty(), "expected the empty interval to be empty")
	env.False(New(1, 2).IsEmpty())
}

func (env *AlgebraTestEnviron) TestCardinality() {
	env.Equal(0, Empty[int]().Size())
	env.Equal(1, Singleton(3).Size())
	env.Equal(10, New(1, 10).Size())
	env.Equal(256, New[int16](-128, 127).Size())
	all := Interval[int64]{lo: math.MinInt64, hi: math.MaxInt64}
	env.Equal(math.MaxInt, all.Size(), "expected size of the full int64 range to saturate")
}

func (env *AlgebraTestEnviron) TestBounds() {
	iv := New(3, 9)
	env.Equal(3, iv.Lower())
	env.Equal(9, iv.Upper())
	env.Panics(func() { Empty[int]().Lower() }, "expected lower bound of empty interval to panic")
	env.Panics(func() { Empty[int]().Upper() }, "expected upper bound of empty interval to panic")
}

func (env *AlgebraTestEnviron) TestIntersection() {
	cases := []struct {
		a, b, r Interval[int]
	}{
		{New(1, 5), New(4, 9), New(4, 5)},
		{New(1, 5), New(6, 9), Empty[int]()},
		{New(1, 9), New(3, 4), New(3, 4)},
		{New(1, 5), Empty[int](), Empty[int]()},
		{Empty[int](), Empty[int](), Empty[int]()},
	}
	for _, c := range cases {
		env.Equal(c.r, c.a.Intersection(c.b), "a ∩ b for a=%v, b=%v", c.a, c.b)
		env.Equal(c.r, c.b.Intersection(c.a), "b ∩ a for a=%v, b=%v", c.a, c.b)
	}
}

func (env *AlgebraTestEnviron) TestUnion() {
	env.Equal(New(1, 9), New(1, 5).Union(New(4, 9)))
	env.Equal(New(1, 9), New(1, 2).Union(New(8, 9)), "expected the hull to bridge the gap")
	env.Equal(New(1, 5), New(1, 5).Union(Empty[int]()))
	env.Equal(New(1, 5), Empty[int]().Union(New(1, 5)))
}

func (env *AlgebraTestEnviron) TestDifference() {
	a := New(1, 10)
	env.Equal(New(4, 10), a.Difference(New(0, 3)), "expected the left end to be trimmed")
	env.Equal(New(1, 6), a.Difference(New(7, 12)), "expected the right end to be trimmed")
	env.Equal(Empty[int](), a.Difference(New(0, 12)), "expected a covered interval to vanish")
	env.Equal(a, a.Difference(New(4, 6)), "expected a strict interior subtrahend to be a no-op")
	env.Equal(a, a.Difference(Empty[int]()))
	env.Equal(Empty[int](), Empty[int]().Difference(a))
}

func (env *AlgebraTestEnviron) TestDisjointAndOverlap() {
	env.True(New(1, 5).IsDisjoint(New(6, 9)))
	env.False(New(1, 5).IsDisjoint(New(5, 9)), "expected touching intervals to share an integer")
	env.True(Empty[int]().IsDisjoint(New(1, 5)))
	env.True(Empty[int]().IsDisjoint(Empty[int]()))
	env.True(New(1, 5).Overlap(New(5, 9)))
	env.False(New(1, 5).Overlap(New(6, 9)))
	env.False(New(1, 5).Overlap(Empty[int]()))
	env.False(Empty[int]().Overlap(Empty[int]()))
}

func (env *AlgebraTestEnviron) TestContains() {
	iv := New(1, 5)
	env.True(iv.Contains(1))
	env.True(iv.Contains(3))
	env.True(iv.Contains(5))
	env.False(iv.Contains(0))
	env.False(iv.Contains(6))
	env.False(Empty[int]().Contains(0), "expected the empty interval to contain nothing")
}

func (env *AlgebraTestEnviron) TestSubset() {
	env.True(New(2, 4).IsSubset(New(1, 5)))
	env.True(New(1, 5).IsSubset(New(1, 5)))
	env.False(New(1, 5).IsSubset(New(2, 4)))
	env.False(New(1, 5).IsSubset(New(3, 9)))
	env.True(Empty[int]().IsSubset(New(1, 5)))
	env.True(Empty[int]().IsSubset(Empty[int]()))
	env.False(New(1, 5).IsSubset(Empty[int]()))
	//
	env.True(New(2, 4).IsProperSubset(New(1, 5)))
	env.False(New(1, 5).IsProperSubset(New(1, 5)))
	env.True(Empty[int]().IsProperSubset(New(1, 5)))
	env.False(Empty[int]().IsProperSubset(Empty[int]()))
}

func (env *AlgebraTestEnviron) TestShrink() {
	iv := New(1, 10)
	env.Equal(New(5, 10), iv.ShrinkLeft(5))
	env.Equal(iv, iv.ShrinkLeft(0), "expected a lower bound left of the interval to be a no-op")
	env.Equal(Empty[int](), iv.ShrinkLeft(11))
	env.Equal(New(1, 5), iv.ShrinkRight(5))
	env.Equal(iv, iv.ShrinkRight(12))
	env.Equal(Empty[int](), iv.ShrinkRight(0))
	env.Equal(New(6, 10), iv.StrictShrinkLeft(5))
	env.Equal(Empty[int](), iv.StrictShrinkLeft(10))
	env.Equal(New(1, 4), iv.StrictShrinkRight(5))
	env.Equal(Empty[int](), iv.StrictShrinkRight(1))
	env.Equal(Empty[int](), Empty[int]().ShrinkLeft(0))
}

func (env *AlgebraTestEnviron) TestStrictShrinkAtTypeLimits() {
	iv := New[uint8](0, 255)
	env.Equal(Empty[uint8](), iv.StrictShrinkLeft(255), "expected no integers above the type maximum")
	env.Equal(Empty[uint8](), iv.StrictShrinkRight(0), "expected no integers below the type minimum")
	env.Equal(New[uint8](1, 255), iv.StrictShrinkLeft(0))
	env.Equal(New[uint8](0, 254), iv.StrictShrinkRight(255))
}

func TestIntervalString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "interval.core")
	defer teardown()
	//
	if s := New(1, 5).String(); s != "[1, 5]" {
		t.Errorf("expected [1,5] to print as '[1, 5]', got %q", s)
	}
	if s := Empty[int]().String(); s != "∅" {
		t.Errorf("expected the empty interval to print as '∅', got %q", s)
	}
}
