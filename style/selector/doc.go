/*
Package selector implements wisp's CSS selector grammar: parsing a
selector string into a small AST, computing the (id, class, tag)
specificity triple used to order the cascade, and matching a selector
against an arena node's ancestor chain.

github.com/andybalholm/cascadia's Selector type compiles to an opaque
matcher function; exactly the right tool when all you need is a
yes/no match, but it cannot hand back the specificity triple or the
rightmost-compound bucket key the cascade's k-way merge requires
without re-deriving them from the selector text a second time. This
package is a from-scratch but narrowly-scoped replacement covering tag,
#id, and .class compounds joined by descendant and child combinators.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.selector'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.selector")
}
