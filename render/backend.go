package render

import (
	"image/color"

	"github.com/veridian-labs/wisp/layout"
)

// Backend receives draw calls from Walk. A concrete implementation
// talks to whatever rasterizer or compositor the embedding device
// provides; wisp only defines the calls it makes.
type Backend interface {
	FillRect(box layout.Box, c color.RGBA)
	StrokeRect(box layout.Box, c color.RGBA, width float64)
	DrawGlyphs(box layout.Box, text string, fontSizePx float64, c color.RGBA)
}
