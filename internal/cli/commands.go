// Package cli holds command-table scaffolding shared by the interactive
// tools of this module.
package cli

import (
	"fmt"
	"strings"
)

// Command describes one REPL command: its name, the number of arguments
// it expects, and a one-line usage string.
type Command struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for variadic
	Usage   string
}

// Table is an ordered command table.
type Table struct {
	commands []Command
	index    map[string]int
}

// NewTable builds a table from a fixed command list. Command names are
// matched case-insensitively.
func NewTable(commands ...Command) *Table {
	t := &Table{
		commands: commands,
		index:    make(map[string]int, len(commands)),
	}
	for i, c := range commands {
		t.index[strings.ToLower(c.Name)] = i
	}
	return t
}

// Lookup finds a command by name.
func (t *Table) Lookup(name string) (Command, bool) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return Command{}, false
	}
	return t.commands[i], true
}

// Commands returns the commands in table order, for help listings.
func (t *Table) Commands() []Command {
	return t.commands
}

// Check verifies the argument count for a command line.
func (t *Table) Check(name string, args []string) error {
	c, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown command '%s'", name)
	}
	if len(args) < c.MinArgs {
		return fmt.Errorf("usage: %s", c.Usage)
	}
	if c.MaxArgs >= 0 && len(args) > c.MaxArgs {
		return fmt.Errorf("usage: %s", c.Usage)
	}
	return nil
}

// Tokenize splits a command line into the command name and its arguments.
// It returns an empty name for blank lines.
func Tokenize(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
