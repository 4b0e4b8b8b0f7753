package render_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/cascade"
	"github.com/veridian-labs/wisp/layout"
	"github.com/veridian-labs/wisp/layout/reference"
	"github.com/veridian-labs/wisp/render"
	"github.com/veridian-labs/wisp/style/cssom"
)

type op struct {
	kind  string
	box   layout.Box
	color color.RGBA
	text  string
}

type recordingBackend struct {
	ops []op
}

func (b *recordingBackend) FillRect(box layout.Box, c color.RGBA) {
	b.ops = append(b.ops, op{kind: "fill", box: box, color: c})
}

func (b *recordingBackend) StrokeRect(box layout.Box, c color.RGBA, width float64) {
	b.ops = append(b.ops, op{kind: "stroke", box: box, color: c})
}

func (b *recordingBackend) DrawGlyphs(box layout.Box, text string, fontSizePx float64, c color.RGBA) {
	b.ops = append(b.ops, op{kind: "glyphs", box: box, color: c, text: text})
}

func buildPipeline(t *testing.T, html, css string) (*arena.Document, *cascade.Tree, *layout.Positioned) {
	t.Helper()
	doc := arena.NewDocument()
	div := doc.CreateElement("div", []arena.Attr{{Key: "id", Value: "x"}})
	require.NoError(t, doc.AppendChild(doc.Root(), div))
	require.NoError(t, doc.AppendChild(div, doc.CreateText(html)))

	sheet, _, err := cssom.Compile(css, 0)
	require.NoError(t, err)
	tree := cascade.Build(doc, sheet)

	a := &layout.Adapter{Shaper: &reference.Shaper{}, ViewportWidth: 800, ViewportHeight: 600, RootFontSizePx: 16}
	solverTree := a.Build(doc, tree)

	solver := reference.Solver{}
	pos, err := solver.Layout(solverTree, 800, 600)
	require.NoError(t, err)
	return doc, tree, pos
}

func TestWalkEmitsFillRectForBackgroundColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wisp.render")
	defer teardown()

	doc, tree, pos := buildPipeline(t, "hello", `#x { background-color: blue; }`)
	backend := &recordingBackend{}
	render.Walk(doc, tree.Root, pos, backend)

	var fills, glyphs int
	for _, o := range backend.ops {
		switch o.kind {
		case "fill":
			fills++
		case "glyphs":
			glyphs++
			assert.Equal(t, "hello", o.text)
		}
	}
	assert.Equal(t, 1, fills)
	assert.Equal(t, 1, glyphs)
}

func TestWalkSkipsDisplayNoneSubtree(t *testing.T) {
	doc, tree, pos := buildPipeline(t, "hidden", `#x { display: none; background-color: blue; }`)
	backend := &recordingBackend{}
	render.Walk(doc, tree.Root, pos, backend)
	assert.Empty(t, backend.ops)
}

func TestWalkDrawsTextWithInheritedColor(t *testing.T) {
	doc, tree, pos := buildPipeline(t, "hi", `#x { color: green; }`)
	backend := &recordingBackend{}
	render.Walk(doc, tree.Root, pos, backend)

	require.Len(t, backend.ops, 1)
	assert.Equal(t, "glyphs", backend.ops[0].kind)
	assert.Equal(t, "hi", backend.ops[0].text)
	assert.Equal(t, color.RGBA{G: 0x80, A: 0xff}, backend.ops[0].color)
}
