// Package dbg holds the contract-check utility shared by the set-algebra
// packages. Checks are compiled in by default and removed with build tag
// 'unchecked'.
package dbg

import "fmt"

// Assert panics with a formatted message if cond is false and checks are
// compiled in. With build tag 'unchecked' the condition is never evaluated
// by callers guarding on Enabled, and Assert itself becomes a no-op.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
