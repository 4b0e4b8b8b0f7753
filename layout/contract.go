package layout

import "github.com/veridian-labs/wisp/arena"

// Box is an axis-aligned, top-left-origin rectangle in pixels.
type Box struct {
	X, Y, Width, Height float64
}

// Length is a resolved box-model input: either a definite pixel value
// or "auto", left for the solver to compute from context. Unit
// resolution (px/vw/vh/em/rem) happens before the solver ever sees a
// Length; it only ever receives Px or Auto. Percentages are not
// resolved: a % width or height reaches the solver as Auto.
type Length struct {
	Px   float64
	Auto bool
}

// ShapedWord is one already-measured word, positioned by the solver
// during line-wrapping without re-invoking the Shaper.
type ShapedWord struct {
	Text  string
	Width float64
}

// ShapedText is the one-time-per-cycle output of shaping a text node's
// content: enough per-word measurements for a solver to wrap lines
// itself, plus the line height to stack wrapped lines with.
type ShapedText struct {
	Words      []ShapedWord
	SpaceWidth float64
	LineHeight float64
}

// Shaper measures text. The adapter calls Shape exactly once per text
// node per layout cycle; the ShapedText it returns is then wrapped in
// a TextMeasurer, which is what the solver actually calls, as many
// times as its algorithm needs, without Shape ever running again.
type Shaper interface {
	Shape(text string, fontSizePx float64) ShapedText
}

// TextMeasurer is the measurement context the Layout Adapter attaches
// to each pre-shaped text SolverNode. A solver drives it through
// SetSize/ShapeUntilScroll once per candidate width, and may repeat
// that pair as many times as its algorithm needs, e.g. an
// intrinsic-width probe followed by the final column wrap, since both
// calls only ever re-wrap the words Shape already measured once in
// Build.
type TextMeasurer struct {
	shaped *ShapedText
	width  float64
}

// NewTextMeasurer wraps a Shaper's one-time-per-cycle output so a
// solver can re-wrap it at any number of candidate widths.
func NewTextMeasurer(shaped *ShapedText) *TextMeasurer {
	return &TextMeasurer{shaped: shaped}
}

// SetSize records availWidthPx as the width the next ShapeUntilScroll
// call wraps against.
func (m *TextMeasurer) SetSize(availWidthPx float64) {
	m.width = availWidthPx
}

// ShapeUntilScroll wraps the already-shaped words to the last SetSize
// width and reports the resulting lines and the actual bounding box
// occupied (its width is the longest wrapped line, never more than the
// SetSize width; its height is the wrapped line count times
// LineHeight). Safe to call repeatedly with a different SetSize width
// in between each call; it never touches the Shaper.
func (m *TextMeasurer) ShapeUntilScroll() ([][]ShapedWord, Box) {
	lines := wrapShapedWords(m.shaped, m.width)
	var maxW float64
	for _, line := range lines {
		if w := lineWidth(line, m.shaped.SpaceWidth); w > maxW {
			maxW = w
		}
	}
	return lines, Box{
		Width:  maxW,
		Height: float64(len(lines)) * m.shaped.LineHeight,
	}
}

func lineWidth(line []ShapedWord, spaceWidth float64) float64 {
	var w float64
	for i, word := range line {
		if i > 0 {
			w += spaceWidth
		}
		w += word.Width
	}
	return w
}

// wrapShapedWords greedily packs shaped words into lines no wider than
// availW, never re-measuring a word: all measurements here were taken
// once, up front, in Shaper.Shape.
func wrapShapedWords(shaped *ShapedText, availW float64) [][]ShapedWord {
	if len(shaped.Words) == 0 {
		return nil
	}
	var lines [][]ShapedWord
	var cur []ShapedWord
	var curW float64
	for _, w := range shaped.Words {
		add := w.Width
		if len(cur) > 0 {
			add += shaped.SpaceWidth
		}
		if len(cur) > 0 && curW+add > availW {
			lines = append(lines, cur)
			cur = nil
			curW = 0
			add = w.Width
		}
		cur = append(cur, w)
		curW += add
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// SolverNode is one node of the tree handed to a Solver: either an
// element's box-model inputs, or a pre-shaped leaf of text content.
// A display:none element is built as a childless SolverNode with
// Display "none"; the cascade still computes its style, but the layout
// adapter excludes its entire subtree from the box tree.
type SolverNode struct {
	Handle        arena.Handle
	Display       string // computed display keyword, e.g. "block", "inline", "none"
	Width         Length
	Height        Length
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64
	BorderWidth   float64
	Shaped        *TextMeasurer
	Children      []*SolverNode
}

// Positioned is a solver's output for one SolverNode: its resolved box
// plus its children's, in the same order as SolverNode.Children so a
// caller can walk a StyledNode tree and its Positioned tree in
// lockstep, the way render.Walk does.
type Positioned struct {
	Handle   arena.Handle
	Box      Box
	Children []*Positioned
}

// Solver computes a Positioned tree from a SolverNode tree and the
// viewport it is laid out within. Concrete Flex/Grid box-model
// algorithms live behind this interface, outside wisp's scope.
type Solver interface {
	Layout(root *SolverNode, viewportW, viewportH float64) (*Positioned, error)
}
