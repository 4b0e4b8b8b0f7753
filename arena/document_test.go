package arena_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/arena"
)

func TestCreateAndAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wisp.arena")
	defer teardown()

	doc := arena.NewDocument()
	div := doc.CreateElement("div", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), div))

	kind, ok := doc.Kind(div)
	require.True(t, ok)
	assert.Equal(t, arena.KindElement, kind)

	parent, ok := doc.Parent(div)
	require.True(t, ok)
	assert.Equal(t, doc.Root(), parent)
}

func TestAppendChildRejectsTextAsParent(t *testing.T) {
	doc := arena.NewDocument()
	text := doc.CreateText("hi")
	div := doc.CreateElement("div", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), text))

	err := doc.AppendChild(text, div)
	assert.ErrorIs(t, err, arena.ErrInvalidParent)
}

func TestAppendChildRejectsCycle(t *testing.T) {
	doc := arena.NewDocument()
	outer := doc.CreateElement("div", nil)
	inner := doc.CreateElement("span", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), outer))
	require.NoError(t, doc.AppendChild(outer, inner))

	err := doc.AppendChild(inner, outer)
	assert.ErrorIs(t, err, arena.ErrCycle)
}

func TestAppendChildStaleHandle(t *testing.T) {
	doc := arena.NewDocument()
	div := doc.CreateElement("div", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), div))
	require.NoError(t, doc.RemoveNode(div))

	err := doc.AppendChild(doc.Root(), div)
	assert.ErrorIs(t, err, arena.ErrStaleHandle)
}

func TestSiblingChainConsistency(t *testing.T) {
	doc := arena.NewDocument()
	a := doc.CreateElement("a", nil)
	b := doc.CreateElement("b", nil)
	c := doc.CreateElement("c", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), a))
	require.NoError(t, doc.AppendChild(doc.Root(), b))
	require.NoError(t, doc.AppendChild(doc.Root(), c))

	assert.Equal(t, []arena.Handle{a, b, c}, doc.Children(doc.Root()))

	next, ok := doc.NextSibling(a)
	require.True(t, ok)
	assert.Equal(t, b, next)

	prev, ok := doc.PrevSibling(c)
	require.True(t, ok)
	assert.Equal(t, b, prev)
}

func TestReappendMovesNodeBetweenParents(t *testing.T) {
	doc := arena.NewDocument()
	div1 := doc.CreateElement("div", nil)
	div2 := doc.CreateElement("div", nil)
	span := doc.CreateElement("span", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), div1))
	require.NoError(t, doc.AppendChild(doc.Root(), div2))
	require.NoError(t, doc.AppendChild(div1, span))

	require.NoError(t, doc.AppendChild(div2, span))

	assert.Empty(t, doc.Children(div1))
	assert.Equal(t, []arena.Handle{span}, doc.Children(div2))
}

func TestIDMapConsistency(t *testing.T) {
	doc := arena.NewDocument()
	h1 := doc.CreateElement("div", nil)
	require.NoError(t, doc.SetAttribute(h1, "id", "a"))
	require.NoError(t, doc.AppendChild(doc.Root(), h1))

	got, ok := doc.GetElementByID("a")
	require.True(t, ok)
	assert.Equal(t, h1, got)

	require.NoError(t, doc.SetAttribute(h1, "id", "b"))
	_, ok = doc.GetElementByID("a")
	assert.False(t, ok)
	got, ok = doc.GetElementByID("b")
	require.True(t, ok)
	assert.Equal(t, h1, got)

	require.NoError(t, doc.RemoveNode(h1))
	_, ok = doc.GetElementByID("b")
	assert.False(t, ok)
}

func TestIDMapGuardsAgainstStaleReassignment(t *testing.T) {
	// h1 had id "x", gave it up; h2 claims "x". Removing h1's subtree
	// must not evict h2's mapping.
	doc := arena.NewDocument()
	h1 := doc.CreateElement("div", nil)
	h2 := doc.CreateElement("div", nil)
	require.NoError(t, doc.SetAttribute(h1, "id", "x"))
	require.NoError(t, doc.AppendChild(doc.Root(), h1))
	require.NoError(t, doc.AppendChild(doc.Root(), h2))

	require.NoError(t, doc.SetAttribute(h1, "id", "y")) // h1 no longer owns "x" in id_map terms
	require.NoError(t, doc.SetAttribute(h2, "id", "x"))
	require.NoError(t, doc.RemoveNode(h1))

	got, ok := doc.GetElementByID("x")
	require.True(t, ok)
	assert.Equal(t, h2, got)
}

func TestRemoveNodeIsIdempotent(t *testing.T) {
	doc := arena.NewDocument()
	div := doc.CreateElement("div", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), div))

	require.NoError(t, doc.RemoveNode(div))
	err := doc.RemoveNode(div)
	assert.ErrorIs(t, err, arena.ErrStaleHandle)
}

func TestRemoveNodeFreesSubtreeIteratively(t *testing.T) {
	doc := arena.NewDocument()
	root := doc.CreateElement("div", nil)
	require.NoError(t, doc.AppendChild(doc.Root(), root))
	cur := root
	const depth = 5000
	for i := 0; i < depth; i++ {
		ch := doc.CreateElement("div", nil)
		require.NoError(t, doc.AppendChild(cur, ch))
		cur = ch
	}

	require.NoError(t, doc.RemoveNode(root))
	assert.False(t, doc.Exists(cur))
}

func TestAttributeRoundTrip(t *testing.T) {
	doc := arena.NewDocument()
	div := doc.CreateElement("div", nil)
	require.NoError(t, doc.SetAttribute(div, "data-foo", "bar"))

	got, ok := doc.GetAttribute(div, "data-foo")
	require.True(t, ok)
	assert.Equal(t, "bar", got)
}

func TestClassListFromCreateElement(t *testing.T) {
	doc := arena.NewDocument()
	div := doc.CreateElement("div", []arena.Attr{{Key: "class", Value: "a b  c"}})
	assert.Equal(t, []string{"a", "b", "c"}, doc.Classes(div))
	assert.True(t, doc.HasClass(div, "b"))
}

func TestAttachedVsDetached(t *testing.T) {
	doc := arena.NewDocument()
	div := doc.CreateElement("div", nil)
	_, attached := doc.Parent(div)
	assert.False(t, attached, "freshly created element must be detached")

	require.NoError(t, doc.AppendChild(doc.Root(), div))
	_, attached = doc.Parent(div)
	assert.True(t, attached)
}
