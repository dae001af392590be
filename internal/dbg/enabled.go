//go:build !unchecked

package dbg

// Enabled reports whether contract checks are compiled into this build.
const Enabled = true
