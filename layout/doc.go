/*
Package layout adapts a cascade.Tree into the tree shape an external
box-model solver consumes, and turns the solver's result back into
positioned boxes the renderer can walk.

A real Flex/Grid solver and a real text shaper are both explicitly out
of scope here; they are external collaborators wisp only talks to
through an interface; no embeddable Go flex/grid box-model solver or
text shaper is a fit for a general-purpose dependency in this tree. So
Solver and Shaper are defined as plain interfaces, with layout/reference
providing a minimal implementation that exists purely to make the
adapter's contract tests runnable.

Each text leaf's Shaper output is wrapped in a TextMeasurer before the
solver ever sees it: Shape runs exactly once per text node per layout
cycle, but the solver drives SetSize/ShapeUntilScroll on the resulting
TextMeasurer as many times as its own algorithm needs, re-wrapping the
same measured words at a new candidate width each time.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.layout'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.layout")
}
