package render

import (
	"image/color"

	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/cascade"
	"github.com/veridian-labs/wisp/layout"
	"github.com/veridian-labs/wisp/style"
)

// defaultTextColor is used when a text node's inherited "color" failed
// to resolve to an actual color value (should not happen once Defaults
// seeds every tag, but Walk must not panic on a malformed tree).
var defaultTextColor = color.RGBA{A: 0xff}

// Walk drives backend with the draw calls for one document: it visits
// styled and positioned together, in lockstep, child by child. Both
// trees share child ordering and are keyed by the same arena.Handle;
// layout.Adapter.Build and a Solver.Layout are required to preserve
// that invariant, so Walk never needs to re-match nodes between the two
// trees by anything other than position.
func Walk(doc *arena.Document, styled *cascade.StyledNode, positioned *layout.Positioned, backend Backend) {
	walk(doc, styled, positioned, backend)
}

func walk(doc *arena.Document, sn *cascade.StyledNode, pos *layout.Positioned, backend Backend) {
	if sn == nil || pos == nil {
		return
	}

	switch sn.Kind {
	case arena.KindText:
		drawText(doc, sn, pos, backend)
		return
	case arena.KindElement:
		if sn.Property("display").Keyword == "none" {
			return
		}
		drawBox(sn, pos, backend)
	}

	children := sn.Children()
	for i, child := range children {
		if i >= len(pos.Children) {
			break
		}
		walk(doc, child, pos.Children[i], backend)
	}
}

func drawBox(sn *cascade.StyledNode, pos *layout.Positioned, backend Backend) {
	if bg := sn.Property("background-color"); bg.Kind == style.KindColor {
		backend.FillRect(pos.Box, bg.Color)
	}
	if bw, ok := sn.Property("border-width").ResolveLengthPx(0, 0, 0, 0); ok && bw > 0 {
		if bc := sn.Property("border-color"); bc.Kind == style.KindColor {
			backend.StrokeRect(pos.Box, bc.Color, bw)
		}
	}
}

func drawText(doc *arena.Document, sn *cascade.StyledNode, pos *layout.Positioned, backend Backend) {
	text, ok := doc.Text(sn.Handle)
	if !ok {
		return
	}
	fontSizePx := 16.0
	if sn.Parent != nil {
		if v := sn.Parent.Property("font-size"); v.Kind == style.KindLengthPx {
			fontSizePx = v.Num
		}
	}
	c := defaultTextColor
	if sn.Parent != nil {
		if v := sn.Parent.Property("color"); v.Kind == style.KindColor {
			c = v.Color
		}
	}
	backend.DrawGlyphs(pos.Box, text, fontSizePx, c)
}
