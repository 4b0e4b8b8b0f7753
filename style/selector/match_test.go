package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/style/selector"
)

func buildTestDoc(t *testing.T) (*arena.Document, arena.Handle, arena.Handle, arena.Handle) {
	t.Helper()
	doc := arena.NewDocument()
	outer := doc.CreateElement("div", []arena.Attr{{Key: "id", Value: "outer"}})
	require.NoError(t, doc.AppendChild(doc.Root(), outer))
	mid := doc.CreateElement("section", nil)
	require.NoError(t, doc.AppendChild(outer, mid))
	leaf := doc.CreateElement("span", []arena.Attr{{Key: "class", Value: "hi lo"}})
	require.NoError(t, doc.AppendChild(mid, leaf))
	return doc, outer, mid, leaf
}

func TestMatchesTagAndClass(t *testing.T) {
	doc, _, _, leaf := buildTestDoc(t)

	cs, err := selector.Parse("span.hi")
	require.NoError(t, err)
	assert.True(t, selector.Matches(doc, leaf, cs))

	cs, err = selector.Parse("span.nope")
	require.NoError(t, err)
	assert.False(t, selector.Matches(doc, leaf, cs))
}

func TestMatchesDescendantCombinator(t *testing.T) {
	doc, _, _, leaf := buildTestDoc(t)

	cs, err := selector.Parse("#outer span")
	require.NoError(t, err)
	assert.True(t, selector.Matches(doc, leaf, cs))
}

func TestMatchesChildCombinatorRejectsGrandchild(t *testing.T) {
	doc, outer, _, leaf := buildTestDoc(t)

	cs, err := selector.Parse("#outer > span")
	require.NoError(t, err)
	assert.False(t, selector.Matches(doc, leaf, cs), "span is a grandchild of #outer, not a child")

	cs, err = selector.Parse("#outer > section")
	require.NoError(t, err)
	mid, ok := doc.FirstChild(outer)
	require.True(t, ok)
	assert.True(t, selector.Matches(doc, mid, cs))
}

func TestMatchesAny(t *testing.T) {
	doc, _, _, leaf := buildTestDoc(t)
	list, err := selector.ParseList("p, span.hi, a")
	require.NoError(t, err)
	assert.True(t, selector.MatchesAny(doc, leaf, list))
}

func TestMatchesUniversal(t *testing.T) {
	doc, _, _, leaf := buildTestDoc(t)
	cs, err := selector.Parse("*")
	require.NoError(t, err)
	assert.True(t, selector.Matches(doc, leaf, cs))
}
