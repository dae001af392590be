package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/interval/internal/cli"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'interval.cli'
func tracer() tracing.Trace {
	return tracing.Select("interval.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.interval.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	pterm.Info.Println("Welcome to the interval set calculator") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("iv > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	calc := &Calc{repl: repl, objects: make(map[string]object)}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	calc.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Calc is our interpreter object. It holds the named sets a session has
// defined so far.
type Calc struct {
	repl    *readline.Instance
	objects map[string]object
	names   []string // insertion order, for listings
}

// REPL starts interactive mode.
func (calc *Calc) REPL() {
	for {
		line, err := calc.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		name, args := cli.Tokenize(line)
		if name == "" {
			continue
		}
		if err := commands.Check(name, args); err != nil {
			pterm.Error.Println(err)
			continue
		}
		tracer().Debugf("command %s %v", name, args)
		quit, err := calc.execute(strings.ToLower(name), args)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commands = cli.NewTable(
	cli.Command{Name: "set", MinArgs: 2, MaxArgs: 2, Usage: "set NAME LITERAL        (LITERAL is [lo,hi], [], {v} or {})"},
	cli.Command{Name: "show", MinArgs: 1, MaxArgs: 1, Usage: "show NAME"},
	cli.Command{Name: "list", MinArgs: 0, MaxArgs: 0, Usage: "list"},
	cli.Command{Name: "size", MinArgs: 1, MaxArgs: 1, Usage: "size NAME"},
	cli.Command{Name: "lower", MinArgs: 1, MaxArgs: 1, Usage: "lower NAME"},
	cli.Command{Name: "upper", MinArgs: 1, MaxArgs: 1, Usage: "upper NAME"},
	cli.Command{Name: "inter", MinArgs: 2, MaxArgs: 3, Usage: "inter A B [DEST]"},
	cli.Command{Name: "union", MinArgs: 2, MaxArgs: 3, Usage: "union A B [DEST]        (intervals only)"},
	cli.Command{Name: "diff", MinArgs: 2, MaxArgs: 3, Usage: "diff A B [DEST]"},
	cli.Command{Name: "disjoint", MinArgs: 2, MaxArgs: 2, Usage: "disjoint A B"},
	cli.Command{Name: "overlap", MinArgs: 2, MaxArgs: 2, Usage: "overlap A B"},
	cli.Command{Name: "subset", MinArgs: 2, MaxArgs: 2, Usage: "subset A B"},
	cli.Command{Name: "propsub", MinArgs: 2, MaxArgs: 2, Usage: "propsub A B"},
	cli.Command{Name: "contains", MinArgs: 2, MaxArgs: 2, Usage: "contains NAME VALUE"},
	cli.Command{Name: "shrinkl", MinArgs: 2, MaxArgs: 3, Usage: "shrinkl NAME BOUND [DEST]"},
	cli.Command{Name: "shrinkr", MinArgs: 2, MaxArgs: 3, Usage: "shrinkr NAME BOUND [DEST]"},
	cli.Command{Name: "sshrinkl", MinArgs: 2, MaxArgs: 3, Usage: "sshrinkl NAME BOUND [DEST]"},
	cli.Command{Name: "sshrinkr", MinArgs: 2, MaxArgs: 3, Usage: "sshrinkr NAME BOUND [DEST]"},
	cli.Command{Name: "dump", MinArgs: 1, MaxArgs: 1, Usage: "dump NAME"},
	cli.Command{Name: "help", MinArgs: 0, MaxArgs: 0, Usage: "help"},
	cli.Command{Name: "quit", MinArgs: 0, MaxArgs: 0, Usage: "quit"},
)

func (calc *Calc) execute(name string, args []string) (quit bool, err error) {
	switch name {
	case "quit":
		return true, nil
	case "help":
		help()
	case "set":
		err = calc.setOp(args[0], args[1])
	case "show":
		err = calc.showOp(args[0])
	case "list":
		calc.listOp()
	case "size":
		err = calc.sizeOp(args[0])
	case "lower", "upper":
		err = calc.boundOp(name, args[0])
	case "inter", "union", "diff":
		err = calc.binarySetOp(name, args)
	case "disjoint", "overlap", "subset", "propsub":
		err = calc.predicateOp(name, args[0], args[1])
	case "contains":
		err = calc.containsOp(args[0], args[1])
	case "shrinkl", "shrinkr", "sshrinkl", "sshrinkr":
		err = calc.shrinkOp(name, args)
	case "dump":
		err = calc.dumpOp(args[0])
	default:
		err = fmt.Errorf("unknown command '%s'", name)
	}
	return false, err
}

func (calc *Calc) store(name string, obj object) {
	if _, ok := calc.objects[name]; !ok {
		calc.names = append(calc.names, name)
	}
	calc.objects[name] = obj
}

func (calc *Calc) lookup(name string) (object, error) {
	obj, ok := calc.objects[name]
	if !ok {
		return object{}, fmt.Errorf("no set named '%s'", name)
	}
	return obj, nil
}
