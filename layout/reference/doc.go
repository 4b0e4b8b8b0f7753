/*
Package reference is a minimal, in-tree Shaper and Solver implementing
layout's external-collaborator interfaces. It exists only so the layout
adapter's contract is exercisable by tests without a real
Flex/Grid engine or text shaper; it is not a target for production
quality layout.

Shaper measures each word at a fixed per-character advance, the kind of
placeholder metric real shapers replace with font hinting data. Solver
performs a simple block box model: block children stack vertically at
their parent's content width, and a run of shaped text greedily wraps
at the available width using the already-measured word widths (it
never re-invokes Shaper).

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package reference

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.layout.reference'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.layout.reference")
}
