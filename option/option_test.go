package option

import "testing"

func TestSomeAndNone(t *testing.T) {
	s := Some(42)
	if !s.IsSome() || s.IsNone() {
		t.Errorf("expected Some(42) to be Some")
	}
	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Errorf("expected None to be None")
	}
	if v, ok := s.Unwrap(); !ok || v != 42 {
		t.Errorf("expected Unwrap of Some(42) to yield 42, got %v, %v", v, ok)
	}
	if _, ok := n.Unwrap(); ok {
		t.Errorf("expected Unwrap of None to report absence")
	}
	if s.MustUnwrap() != 42 {
		t.Errorf("expected MustUnwrap of Some(42) to yield 42")
	}
	if n.Or(7) != 7 || s.Or(7) != 42 {
		t.Errorf("expected Or to fall back on None only")
	}
}

func TestMustUnwrapPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected MustUnwrap of None to panic")
		}
	}()
	_ = None[int]().MustUnwrap()
}

func TestReplaceAndTake(t *testing.T) {
	o := None[string]()
	prev := o.Replace("a")
	if prev.IsSome() {
		t.Errorf("expected Replace on None to return None")
	}
	prev = o.Replace("b")
	if v, _ := prev.Unwrap(); v != "a" {
		t.Errorf("expected Replace to return the previous value 'a', got %q", v)
	}
	taken := o.Take()
	if v, _ := taken.Unwrap(); v != "b" {
		t.Errorf("expected Take to return 'b', got %q", v)
	}
	if o.IsSome() {
		t.Errorf("expected option to be None after Take")
	}
}

func TestMapAndEqual(t *testing.T) {
	double := func(v int) int { return v * 2 }
	if got := Map(Some(21), double); !Equal(got, Some(42)) {
		t.Errorf("expected Map to transform the value, got %v", got)
	}
	if got := Map(None[int](), double); !Equal(got, None[int]()) {
		t.Errorf("expected Map of None to be None, got %v", got)
	}
	if Equal(Some(1), None[int]()) || !Equal(None[int](), None[int]()) {
		t.Errorf("expected Equal to compare emptiness and values")
	}
}

func TestString(t *testing.T) {
	if s := Some(3).String(); s != "Some(3)" {
		t.Errorf("expected Some(3) to print as 'Some(3)', got %q", s)
	}
	if s := None[int]().String(); s != "None" {
		t.Errorf("expected None to print as 'None', got %q", s)
	}
}
