package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// prettyNumbers formats counts and bounds with digit grouping; interval
// cardinalities get large quickly.
var prettyNumbers = message.NewPrinter(language.English)

func printObject(name string, obj object) {
	pterm.Printf("%s = %v  (%s)\n", name, obj, obj.kind)
}

func printResult(opname string, result object) {
	pterm.Printf("%s: %v\n", opname, result)
}

func printPredicate(opname, aName, bName string, answer bool) {
	pterm.Printf("%s(%s, %s) = %v\n", opname, aName, bName, answer)
}

func printContains(name string, v int, answer bool) {
	pterm.Printf("%s contains %s = %v\n", name, prettyNumbers.Sprintf("%d", v), answer)
}

func printBound(opname, name string, bound int) {
	pterm.Printf("%s(%s) = %s\n", opname, name, prettyNumbers.Sprintf("%d", bound))
}

func printSize(name string, size int) {
	pterm.Printf("size(%s) = %s\n", name, prettyNumbers.Sprintf("%d", size))
}

func (calc *Calc) listOp() {
	if len(calc.names) == 0 {
		pterm.Println("no sets defined")
		return
	}
	data := [][]string{
		{"Name", "Kind", "Value", "Size"},
	}
	for _, name := range calc.names {
		obj := calc.objects[name]
		size := obj.pt.Size()
		if obj.kind == kindInterval {
			size = obj.iv.Size()
		}
		data = append(data, []string{
			name,
			obj.kind.String(),
			obj.String(),
			prettyNumbers.Sprintf("%d", size),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// dumpOp spews the internal representation of a set, mainly useful when
// chasing canonicalization questions.
func (calc *Calc) dumpOp(name string) error {
	obj, err := calc.lookup(name)
	if err != nil {
		return err
	}
	if obj.kind == kindInterval {
		spew.Dump(obj.iv)
	} else {
		spew.Dump(obj.pt)
	}
	return nil
}
