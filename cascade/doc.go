/*
Package cascade implements wisp's cascade and inheritance engine: given
a Document and a compiled cssom.Stylesheet, it builds a tree of
StyledNode, each holding exactly the declarations its own matched
rules (plus any inline style) contributed, leaving inheritance to be
resolved lazily by walking StyledNode.Parent.

Pairing a full *style.PropertyMap with every node and matching every
rule against every node in a single linear pass (the straightforward
approach) scales with rules times nodes. This package keeps the
styled-tree shape but replaces that matching strategy with a streaming
merge across cssom's pre-sorted, rightmost-compound buckets
(style/cssom, style/selector): no rule is tested against a node unless
one of its bucket keys (id, a class, its tag, or the universal bucket)
could plausibly match.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.cascade")
}
