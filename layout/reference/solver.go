package reference

import "github.com/veridian-labs/wisp/layout"

// Solver is a minimal block-box-model layout: block children stack
// vertically at their parent's content width, inset by padding and
// border-width; shaped text wraps greedily against that content width
// using pre-measured word widths.
type Solver struct{}

// Layout lays out root as the single block filling the viewport.
func (Solver) Layout(root *layout.SolverNode, viewportW, viewportH float64) (*layout.Positioned, error) {
	return layoutBlock(root, 0, 0, viewportW), nil
}

func layoutBlock(node *layout.SolverNode, x, y, availW float64) *layout.Positioned {
	if node.Display == "none" {
		return &layout.Positioned{Handle: node.Handle}
	}

	edgeW := node.PaddingLeft + node.PaddingRight + 2*node.BorderWidth
	edgeH := node.PaddingTop + node.PaddingBottom + 2*node.BorderWidth

	contentW := availW - edgeW
	if !node.Width.Auto {
		contentW = node.Width.Px
	}
	contentX := x + node.BorderWidth + node.PaddingLeft
	contentY := y + node.BorderWidth + node.PaddingTop

	cursorY := contentY
	var children []*layout.Positioned
	for _, ch := range node.Children {
		if ch.Shaped != nil {
			children = append(children, layoutText(ch, contentX, cursorY, contentW))
			cursorY += children[len(children)-1].Box.Height
			continue
		}
		childY := cursorY + ch.MarginTop
		childPos := layoutBlock(ch, contentX+ch.MarginLeft, childY, contentW-ch.MarginLeft-ch.MarginRight)
		children = append(children, childPos)
		cursorY = childY + childPos.Box.Height + ch.MarginBottom
	}

	contentHeight := cursorY - contentY
	if !node.Height.Auto {
		contentHeight = node.Height.Px
	}
	return &layout.Positioned{
		Handle: node.Handle,
		Box: layout.Box{
			X: x, Y: y,
			Width:  contentW + edgeW,
			Height: contentHeight + edgeH,
		},
		Children: children,
	}
}

// layoutText positions one shaped text run within the available
// content width. It probes the run's intrinsic width first (an
// effectively unbounded SetSize call) so a run that fits on one line
// at its own width is not stretched to fill the container; either way
// the words are only ever shaped once, by Shaper.Shape back in
// Adapter.Build; both calls here just re-wrap that one measurement.
func layoutText(node *layout.SolverNode, x, y, availW float64) *layout.Positioned {
	const unbounded = 1 << 30
	node.Shaped.SetSize(unbounded)
	_, intrinsic := node.Shaped.ShapeUntilScroll()

	width := availW
	if intrinsic.Width <= availW {
		width = intrinsic.Width
	}
	node.Shaped.SetSize(width)
	_, box := node.Shaped.ShapeUntilScroll()

	return &layout.Positioned{
		Handle: node.Handle,
		Box:    layout.Box{X: x, Y: y, Width: width, Height: box.Height},
	}
}
