package reference

import (
	"strings"

	"github.com/veridian-labs/wisp/layout"
)

// charWidthFactor approximates a monospaced glyph advance as a
// fraction of font size; real shapers replace this with hinted glyph
// metrics from an actual font.
const charWidthFactor = 0.6

// Shaper is a placeholder text shaper: each word's width is its
// rune count times the font size times charWidthFactor.
type Shaper struct {
	ShapeCalls int // exposed for tests asserting shape-once-per-cycle
}

// Shape measures text into words and a uniform line height.
func (s *Shaper) Shape(text string, fontSizePx float64) layout.ShapedText {
	s.ShapeCalls++
	words := strings.Fields(text)
	out := layout.ShapedText{
		Words:      make([]layout.ShapedWord, len(words)),
		SpaceWidth: charWidthFactor * fontSizePx,
		LineHeight: fontSizePx * 1.2,
	}
	for i, w := range words {
		out.Words[i] = layout.ShapedWord{
			Text:  w,
			Width: float64(len([]rune(w))) * charWidthFactor * fontSizePx,
		}
	}
	return out
}
