package layout

import (
	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/cascade"
	"github.com/veridian-labs/wisp/style"
)

// Adapter builds a SolverNode tree from a cascade.Tree, resolving
// every length against the viewport and the cascade's computed
// font-size, and pre-shaping every text node exactly once.
type Adapter struct {
	Shaper         Shaper
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSizePx float64
}

// Build walks tree depth-first and returns the root SolverNode.
func (a *Adapter) Build(doc *arena.Document, tree *cascade.Tree) *SolverNode {
	return a.buildNode(doc, tree.Root, a.RootFontSizePx)
}

func (a *Adapter) buildNode(doc *arena.Document, sn *cascade.StyledNode, parentFontSizePx float64) *SolverNode {
	if sn.Kind == arena.KindText {
		text, _ := doc.Text(sn.Handle)
		shaped := a.Shaper.Shape(text, parentFontSizePx)
		return &SolverNode{Handle: sn.Handle, Shaped: NewTextMeasurer(&shaped)}
	}

	node := &SolverNode{Handle: sn.Handle, Display: "block"}
	fontSizePx := parentFontSizePx
	if sn.Kind == arena.KindElement {
		node.Display = sn.Property("display").Keyword
		if node.Display == "none" {
			return node // subtree intentionally excluded from the box tree
		}
		if px, ok := sn.Property("font-size").ResolveLengthPx(a.ViewportWidth, a.ViewportHeight, parentFontSizePx, a.RootFontSizePx); ok {
			fontSizePx = px
		}
		node.Width = a.resolveLength(sn.Property("width"), fontSizePx)
		node.Height = a.resolveLength(sn.Property("height"), fontSizePx)
		node.MarginTop = a.resolvePx(sn.Property("margin-top"), fontSizePx)
		node.MarginRight = a.resolvePx(sn.Property("margin-right"), fontSizePx)
		node.MarginBottom = a.resolvePx(sn.Property("margin-bottom"), fontSizePx)
		node.MarginLeft = a.resolvePx(sn.Property("margin-left"), fontSizePx)
		node.PaddingTop = a.resolvePx(sn.Property("padding-top"), fontSizePx)
		node.PaddingRight = a.resolvePx(sn.Property("padding-right"), fontSizePx)
		node.PaddingBottom = a.resolvePx(sn.Property("padding-bottom"), fontSizePx)
		node.PaddingLeft = a.resolvePx(sn.Property("padding-left"), fontSizePx)
		node.BorderWidth = a.resolvePx(sn.Property("border-width"), fontSizePx)
	}
	for _, ch := range sn.Children() {
		node.Children = append(node.Children, a.buildNode(doc, ch, fontSizePx))
	}
	return node
}

func (a *Adapter) resolveLength(v style.Value, fontSizePx float64) Length {
	if v.Kind == style.KindAuto || v.Kind == style.KindKeyword {
		return Length{Auto: true}
	}
	if px, ok := v.ResolveLengthPx(a.ViewportWidth, a.ViewportHeight, fontSizePx, a.RootFontSizePx); ok {
		return Length{Px: px}
	}
	return Length{Auto: true}
}

func (a *Adapter) resolvePx(v style.Value, fontSizePx float64) float64 {
	px, _ := v.ResolveLengthPx(a.ViewportWidth, a.ViewportHeight, fontSizePx, a.RootFontSizePx)
	return px
}
