/*
Package render walks a StyledNode tree and its matching Positioned
layout tree in lockstep, emitting draw calls to a Backend. The concrete
rasterizer/compositor a Backend talks to is, like the Flex/Grid solver
and the text shaper, outside this module's scope: wisp only defines the
interface a backend implements and drives it.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.render'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.render")
}
