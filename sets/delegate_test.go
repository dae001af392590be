package sets

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// span is a minimal composite element: a closed range of ints with its own
// capability implementations. It stands in for the richer interval types
// of this module, keeping the forwarding tests local to this package.
type span struct {
	lo, hi int
}

func (s span) Lower() int { return s.lo }
func (s span) Upper() int { return s.hi }

func (s span) IsDisjoint(other span) bool {
	return s.hi < other.lo || other.hi < s.lo
}

func (s span) Overlap(other span) bool {
	return !s.IsDisjoint(other)
}

func (s span) Contains(v int) bool {
	return s.lo <= v && v <= s.hi
}

func (s span) IsSubset(other span) bool {
	return other.lo <= s.lo && s.hi <= other.hi
}

var (
	_ Bounded[int]   = span{}
	_ Disjoint[span] = span{}
	_ Container[int] = span{}
	_ Subset[span]   = span{}
)

func TestForwardingToElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "interval.sets")
	defer teardown()
	//
	a := Singleton(span{1, 5})
	b := Singleton(span{4, 9})
	c := Singleton(span{7, 9})
	if a.IsDisjoint(b) {
		t.Errorf("expected %v and %v not to be disjoint", a, b)
	}
	if !a.IsDisjoint(c) {
		t.Errorf("expected %v and %v to be disjoint", a, c)
	}
	if !a.Overlap(b) || a.Overlap(c) {
		t.Errorf("expected overlap to follow the spans' own overlap test")
	}
	if !Contains(a, 3) || Contains(a, 6) {
		t.Errorf("expected containment to probe the span, not the whole value")
	}
	inner := Singleton(span{2, 4})
	if !inner.IsSubset(a) || a.IsSubset(inner) {
		t.Errorf("expected subset ordering of spans to be forwarded")
	}
	if !Empty[span]().IsDisjoint(a) || Empty[span]().Overlap(a) {
		t.Errorf("expected the wrapper to decide the empty-set boundary itself")
	}
}

func TestForwardedBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "interval.sets")
	defer teardown()
	//
	a := Singleton(span{1, 5})
	if lo := Lower[int](a); lo != 1 {
		t.Errorf("expected lower bound of %v to be 1, got %d", a, lo)
	}
	if hi := Upper[int](a); hi != 5 {
		t.Errorf("expected upper bound of %v to be 5, got %d", a, hi)
	}
}

func TestNestedOptionals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "interval.sets")
	defer teardown()
	//
	// An Optional is itself a protocol element, so it nests.
	a := Singleton(Singleton(3))
	b := Singleton(Singleton(4))
	e := Empty[Optional[int]]()
	if !a.IsDisjoint(b) {
		t.Errorf("expected {{3}} and {{4}} to be disjoint")
	}
	if !a.Overlap(a) {
		t.Errorf("expected {{3}} to overlap itself")
	}
	if !e.IsSubset(a) || a.IsSubset(e) {
		t.Errorf("expected the empty-set subset rules to apply when nested")
	}
	if !a.Contains(Singleton(3)) || a.Contains(Singleton(4)) {
		t.Errorf("expected nested containment to compare the inner sets")
	}
}
