/*
Package htmlfeed adapts golang.org/x/net/html's low-level Tokenizer into
wisp's document store.

It drives the Tokenizer directly rather than calling html.Parse: the
full HTML5 tree-construction algorithm is out of scope; only a handful
of implicit-closure rules plus verbatim raw-text handling for
<script>/<style> are needed, both of which the Tokenizer already
exposes cheaply.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp, from which this module's tree-handling idioms
are adapted.
*/
package htmlfeed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer for this package. We are tracing to 'wisp.htmlfeed'.
func tracer() tracing.Trace {
	return tracing.Select("wisp.htmlfeed")
}
