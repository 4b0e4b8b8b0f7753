/*
Package arena implements wisp's document store: an arena of generational
node identifiers wired as an intrusive doubly-linked sibling list, plus
an identifier index for O(1) getElementById lookups.

Nodes never move and are never referenced through Go pointers held by
clients; only through Handle, a (slot, generation) pair. Freeing a slot
bumps its generation, so a Handle retained past a RemoveNode call is
detectably stale on its next use, rather than silently dangling or
aliasing a newly-allocated node that happened to reuse the same slot.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp, from which this module's tree-handling idioms
are adapted.
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.arena'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.arena")
}
