/*
Package style holds the typed CSS value model, property grouping, and
user-agent default stylesheet that the cascade engine computes over.

Rather than keeping property values as raw, uninterpreted strings
resolved lazily by rendering code, wisp parses each declaration once
into a typed Value so the cascade and layout adapter never re-parse CSS
text. The property-grouping and shorthand-expansion machinery stays
organized the same way regardless: a flat key/value lookup backed by
named groups for tooling and introspection.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp, from which this package's property-grouping
design is adapted.
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.style'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.style")
}
