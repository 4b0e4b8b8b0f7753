/*
Package cssom is wisp's stylesheet compiler: it turns raw CSS text into
a Stylesheet whose rules are pre-sorted and bucketed by their
selector's rightmost compound, so the cascade engine can run a
streaming k-way merge across the four buckets instead of matching every
rule against every node.

A lazy, per-node matching strategy (walk every rule against every node,
matched via an opaque selector library, specificity approximated from
the selector string after the fact) doesn't expose what a merge-based
cascade needs up front, so this package computes exact specificity from
a real selector AST (style/selector) at compile time and bucket-indexes
rules instead of scanning them linearly.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.cssom")
}
