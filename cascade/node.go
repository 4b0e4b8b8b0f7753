package cascade

import (
	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/style"
)

// StyledNode mirrors one arena node, carrying only the declarations
// its own matched rules (and inline style) produced: most nodes in a
// typical document match no rule of their own and simply hold a nil
// *style.PropertyMap, costing nothing beyond the StyledNode itself.
// Allocating a full property map per node regardless, and amortizing
// it with a persistent/structurally-shared data structure, is one way
// to pay for this; wisp instead never allocates the map at all for the
// common no-own-declarations case, and the Go garbage collector
// reclaims the maps that are allocated once every StyledNode
// referencing one is gone.
type StyledNode struct {
	Handle   arena.Handle
	Kind     arena.Kind
	Tag      string
	Parent   *StyledNode
	children []*StyledNode
	props    *style.PropertyMap
}

// Children returns the node's styled children in document order.
func (n *StyledNode) Children() []*StyledNode {
	return n.children
}

// OwnProperties returns the node's own PropertyMap, or nil if no rule
// matched it and it carries no inline style. Never an ancestor's map:
// each StyledNode's props is either its own allocation or nil, never a
// pointer aliased from Parent (see StyledNode's doc comment).
func (n *StyledNode) OwnProperties() *style.PropertyMap {
	return n.props
}

// Property resolves key's computed value: an inheritable property not
// set on n walks up through Parent until it finds a declaration or runs
// out of ancestors; a non-inheritable property only ever looks at n's
// own value. Either way, an unset property falls back to the
// user-agent default for n's tag.
func (n *StyledNode) Property(key string) style.Value {
	inheritable := style.IsInheritable(key)
	for cur := n; cur != nil; cur = cur.Parent {
		if v, ok := cur.props.Get(key); ok {
			return v
		}
		if !inheritable {
			break
		}
	}
	if v, ok := style.Defaults(n.Tag).Get(key); ok {
		return v
	}
	return style.Value{}
}
