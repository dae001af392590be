/*
Package interval implements closed intervals over integer types,
participating in the set-algebra protocol of package sets.

An interval [lo, hi] denotes the set of all integers between lo and hi,
inclusive. Intervals implement every capability of the protocol
(cardinality, bounds, intersection, difference, disjointness, containment,
subset ordering, overlap and bound-shrinking), so they compose with the
degenerate set types of package sets: an Optional[Interval[T]] forwards
its substantive comparisons to the interval's own implementations.

Operations are pure value semantics: no operation mutates its receiver,
and no shared state is involved. Concurrent use needs no synchronization
beyond what the caller does with its own variables.

A note on difference: closed intervals are not closed under general set
difference, since removing a strict interior would split the interval in
two. Difference therefore only trims at the ends and leaves the receiver
unchanged when the subtrahend lies strictly inside it. Containers for
arbitrary unions of intervals are outside the scope of this module.

# Status

Stable for integer bound types. Floating-point bounds raise
open/half-open boundary questions that closed integer intervals avoid,
and are not planned.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package interval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'interval.core'
func tracer() tracing.Trace {
	return tracing.Select("interval.core")
}
