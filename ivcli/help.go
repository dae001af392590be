package main

import (
	"github.com/pterm/pterm"
)

func help() {
	pterm.Info.Println("Interval set calculator")
	pterm.Println(`
	Sets are either integer intervals or point sets with at most one element.
	Define them with literals:

	    set a [1,10]      interval from 1 to 10, inclusive
	    set e []          the empty interval
	    set p {5}         point set holding 5
	    set q {}          the empty point set

	Operations print their result; those taking an optional DEST argument
	store it as a new named set, e.g.

	    inter a b c
	    shrinkl a 5 d
	`)
	for _, c := range commands.Commands() {
		pterm.Printf("    %s\n", c.Usage)
	}
}
