/*
Package script wraps a Document behind single-threaded interior
mutability and exposes the bounded DOM/timer surface a script
interpreter is given: identity-stable NodeHandle wrappers, a
cooperative min-heap timer queue, and the
getElementById/querySelector/createElement/appendChild/
addEventListener/setTimeout/console.* globals.

The script interpreter core itself; the thing that actually parses
and runs a scripting language; is an external collaborator, exactly
like layout.Solver and layout.Shaper: this package defines the
Runtime/Value/Callback contract an embedder's interpreter satisfies and
ships an in-tree script/fake test double for its own tests.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.script'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.script")
}
