package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/interval"
	"github.com/npillmayer/interval/sets"
)

// The calculator works on two kinds of sets: integer intervals and
// zero-or-one-element point sets. Both speak the same protocol; the
// dispatch below is only about parsing and about pairing operands of the
// same kind.

type kind int

const (
	kindInterval kind = iota
	kindPoint
)

func (k kind) String() string {
	if k == kindInterval {
		return "interval"
	}
	return "point set"
}

type object struct {
	kind kind
	iv   interval.Interval[int]
	pt   sets.Optional[int]
}

func (obj object) String() string {
	if obj.kind == kindInterval {
		return obj.iv.String()
	}
	return obj.pt.String()
}

// parseLiteral understands "[lo,hi]" and "[]" for intervals, "{v}" and
// "{}" for point sets.
func parseLiteral(lit string) (object, error) {
	switch {
	case lit == "[]":
		return object{kind: kindInterval, iv: interval.Empty[int]()}, nil
	case lit == "{}":
		return object{kind: kindPoint, pt: sets.Empty[int]()}, nil
	case strings.HasPrefix(lit, "[") && strings.HasSuffix(lit, "]"):
		parts := strings.Split(lit[1:len(lit)-1], ",")
		if len(parts) != 2 {
			return object{}, fmt.Errorf("interval literal needs two bounds: %s", lit)
		}
		lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return object{}, fmt.Errorf("interval bounds not numeric: %s", lit)
		}
		return object{kind: kindInterval, iv: interval.New(lo, hi)}, nil
	case strings.HasPrefix(lit, "{") && strings.HasSuffix(lit, "}"):
		v, err := strconv.Atoi(strings.TrimSpace(lit[1 : len(lit)-1]))
		if err != nil {
			return object{}, fmt.Errorf("point value not numeric: %s", lit)
		}
		return object{kind: kindPoint, pt: sets.Singleton(v)}, nil
	}
	return object{}, fmt.Errorf("cannot parse literal '%s'", lit)
}

func (calc *Calc) setOp(name, lit string) error {
	obj, err := parseLiteral(lit)
	if err != nil {
		return err
	}
	calc.store(name, obj)
	tracer().Infof("defined %s = %v", name, obj)
	printObject(name, obj)
	return nil
}

func (calc *Calc) showOp(name string) error {
	obj, err := calc.lookup(name)
	if err != nil {
		return err
	}
	printObject(name, obj)
	return nil
}

func (calc *Calc) pair(aName, bName string) (a, b object, err error) {
	if a, err = calc.lookup(aName); err != nil {
		return
	}
	if b, err = calc.lookup(bName); err != nil {
		return
	}
	if a.kind != b.kind {
		err = fmt.Errorf("'%s' is an %s, '%s' is a %s", aName, a.kind, bName, b.kind)
	}
	return
}

func (calc *Calc) binarySetOp(opname string, args []string) error {
	a, b, err := calc.pair(args[0], args[1])
	if err != nil {
		return err
	}
	var result object
	switch opname {
	case "inter":
		if a.kind == kindInterval {
			result = object{kind: kindInterval, iv: a.iv.Intersection(b.iv)}
		} else {
			result = object{kind: kindPoint, pt: a.pt.Intersection(b.pt)}
		}
	case "union":
		if a.kind != kindInterval {
			return fmt.Errorf("union of point sets may exceed one element; not representable")
		}
		result = object{kind: kindInterval, iv: a.iv.Union(b.iv)}
	case "diff":
		if a.kind == kindInterval {
			result = object{kind: kindInterval, iv: a.iv.Difference(b.iv)}
		} else {
			result = object{kind: kindPoint, pt: a.pt.Difference(b.pt)}
		}
	}
	return calc.deliver(opname, args, 2, result)
}

func (calc *Calc) predicateOp(opname, aName, bName string) error {
	a, b, err := calc.pair(aName, bName)
	if err != nil {
		return err
	}
	var answer bool
	switch opname {
	case "disjoint":
		if a.kind == kindInterval {
			answer = a.iv.IsDisjoint(b.iv)
		} else {
			answer = a.pt.IsDisjoint(b.pt)
		}
	case "overlap":
		if a.kind == kindInterval {
			answer = a.iv.Overlap(b.iv)
		} else {
			answer = a.pt.Overlap(b.pt)
		}
	case "subset":
		if a.kind == kindInterval {
			answer = a.iv.IsSubset(b.iv)
		} else {
			answer = a.pt.IsSubset(b.pt)
		}
	case "propsub":
		if a.kind == kindInterval {
			answer = a.iv.IsProperSubset(b.iv)
		} else {
			answer = a.pt.IsProperSubset(b.pt)
		}
	}
	printPredicate(opname, aName, bName, answer)
	return nil
}

func (calc *Calc) containsOp(name, arg string) error {
	obj, err := calc.lookup(name)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("probe value not numeric: %s", arg)
	}
	var answer bool
	if obj.kind == kindInterval {
		answer = obj.iv.Contains(v)
	} else {
		answer = obj.pt.Contains(v)
	}
	printContains(name, v, answer)
	return nil
}

func (calc *Calc) shrinkOp(opname string, args []string) error {
	obj, err := calc.lookup(args[0])
	if err != nil {
		return err
	}
	bound, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bound not numeric: %s", args[1])
	}
	var result object
	if obj.kind == kindInterval {
		result = object{kind: kindInterval}
		switch opname {
		case "shrinkl":
			result.iv = obj.iv.ShrinkLeft(bound)
		case "shrinkr":
			result.iv = obj.iv.ShrinkRight(bound)
		case "sshrinkl":
			result.iv = obj.iv.StrictShrinkLeft(bound)
		case "sshrinkr":
			result.iv = obj.iv.StrictShrinkRight(bound)
		}
	} else {
		result = object{kind: kindPoint}
		switch opname {
		case "shrinkl":
			result.pt = sets.ShrinkLeft(obj.pt, bound)
		case "shrinkr":
			result.pt = sets.ShrinkRight(obj.pt, bound)
		case "sshrinkl":
			result.pt = sets.StrictShrinkLeft(obj.pt, bound)
		case "sshrinkr":
			result.pt = sets.StrictShrinkRight(obj.pt, bound)
		}
	}
	return calc.deliver(opname, args, 2, result)
}

// deliver prints an operation result and stores it if a destination name
// was given as the argument at index destInx.
func (calc *Calc) deliver(opname string, args []string, destInx int, result object) error {
	printResult(opname, result)
	if len(args) > destInx {
		calc.store(args[destInx], result)
		tracer().Infof("stored result as '%s'", args[destInx])
	}
	return nil
}

func (calc *Calc) boundOp(opname, name string) error {
	obj, err := calc.lookup(name)
	if err != nil {
		return err
	}
	var empty bool
	if obj.kind == kindInterval {
		empty = obj.iv.IsEmpty()
	} else {
		empty = sets.IsEmpty(obj.pt)
	}
	if empty {
		// an empty set has no bounds; in library code this would be a
		// contract violation, at the prompt it is a user error
		return fmt.Errorf("'%s' is empty and has no bounds", name)
	}
	var bound int
	if obj.kind == kindInterval {
		if opname == "lower" {
			bound = obj.iv.Lower()
		} else {
			bound = obj.iv.Upper()
		}
	} else {
		if opname == "lower" {
			bound = obj.pt.Lower()
		} else {
			bound = obj.pt.Upper()
		}
	}
	printBound(opname, name, bound)
	return nil
}

func (calc *Calc) sizeOp(name string) error {
	obj, err := calc.lookup(name)
	if err != nil {
		return err
	}
	if obj.kind == kindInterval {
		printSize(name, obj.iv.Size())
	} else {
		printSize(name, obj.pt.Size())
	}
	return nil
}
