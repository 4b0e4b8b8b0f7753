package cascade

import (
	"fmt"
	"io"

	tp "github.com/xlab/treeprint"
)

// Dump writes a human-readable tree of a styled tree to w, the
// styled-tree counterpart of arena.Document.Dump; useful in tests and
// tooling for inspecting what the cascade actually resolved for a
// node without stepping through Property calls one key at a time.
func Dump(w io.Writer, sn *StyledNode) {
	root := tp.New()
	dumpInto(root, sn, true)
	fmt.Fprint(w, root.String())
}

func dumpInto(branch tp.Tree, sn *StyledNode, isRoot bool) {
	label := nodeLabel(sn)
	sub := branch
	if !isRoot {
		sub = branch.AddBranch(label)
	} else {
		sub.SetValue(label)
	}
	for _, ch := range sn.Children() {
		dumpInto(sub, ch, false)
	}
}

func nodeLabel(sn *StyledNode) string {
	switch {
	case sn.Tag == "" && sn.Parent == nil:
		return "#root"
	case sn.props == nil:
		if sn.Tag == "" {
			return "#text"
		}
		return "<" + sn.Tag + ">"
	default:
		return fmt.Sprintf("<%s> (%d own declarations)", sn.Tag, sn.props.Size())
	}
}
