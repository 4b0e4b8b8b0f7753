package arena

import (
	"fmt"
	"io"

	tp "github.com/xlab/treeprint"
)

// Dump writes a human-readable tree of the document, rooted at h (pass
// d.Root() for the whole document), to w. Useful in tests and tooling
// for inspecting tree shape without stepping through Children calls.
func (d *Document) Dump(w io.Writer, h Handle) {
	root := tp.New()
	d.dumpInto(root, h)
	fmt.Fprint(w, root.String())
}

func (d *Document) dumpInto(branch tp.Tree, h Handle) {
	n := d.a.resolve(h)
	if n == nil {
		branch.AddNode("<stale>")
		return
	}
	label := nodeLabel(n)
	sub := branch
	if h != d.root {
		sub = branch.AddBranch(label)
	} else {
		sub.SetValue(label)
	}
	for _, ch := range d.Children(h) {
		d.dumpInto(sub, ch)
	}
}

func nodeLabel(n *node) string {
	switch n.kind {
	case KindRoot:
		return "#root"
	case KindText:
		return fmt.Sprintf("#text %q", n.text)
	default:
		label := "<" + n.tag
		if n.id != "" {
			label += " id=" + n.id
		}
		for _, c := range n.classes {
			label += " ." + c
		}
		return label + ">"
	}
}
