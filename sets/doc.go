/*
Package sets defines the set-algebra protocol shared by the set-like types
of this module, together with Optional, a set restricted to cardinality
zero or one.

Every capability of the protocol, from cardinality and bounds to
intersection, difference, disjointness, containment, subset ordering,
overlap and bound-shrinking, is a separate interface. Composite
set types (such as interval.Interval) implement the capabilities they
support; Optional forwards to those implementations and only decides the
empty-set boundary cases itself. Optional in turn satisfies the same
interfaces, so a zero-or-one-element set can stand in wherever a
set-algebra-capable type is expected, including as the element of another
Optional.

# Status

Stable. The protocol is the contract layer of this module; changes here
ripple into every set representation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'interval.sets'
func tracer() tracing.Trace {
	return tracing.Select("interval.sets")
}
