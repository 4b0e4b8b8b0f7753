package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/layout"
)

func TestTextMeasurerReWrapsAtEachSetSizeWithoutReshaping(t *testing.T) {
	shaped := layout.ShapedText{
		Words: []layout.ShapedWord{
			{Text: "one", Width: 10},
			{Text: "two", Width: 10},
			{Text: "three", Width: 10},
			{Text: "four", Width: 10},
		},
		SpaceWidth: 2,
		LineHeight: 12,
	}
	m := layout.NewTextMeasurer(&shaped)

	// Wide enough for everything on one line.
	m.SetSize(1000)
	lines, box := m.ShapeUntilScroll()
	require.Len(t, lines, 1)
	assert.Equal(t, 12.0, box.Height)
	assert.InDelta(t, 46.0, box.Width, 0.01) // 4*10 + 3*2

	// Same measurer, narrower candidate width: re-wraps into two lines.
	m.SetSize(24)
	lines, box = m.ShapeUntilScroll()
	require.Len(t, lines, 2)
	assert.Equal(t, 24.0, box.Height)

	// And again, narrower still: one word per line.
	m.SetSize(5)
	lines, box = m.ShapeUntilScroll()
	require.Len(t, lines, 4)
	assert.Equal(t, 48.0, box.Height)
}
