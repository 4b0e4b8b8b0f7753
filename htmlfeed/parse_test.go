package htmlfeed_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/htmlfeed"
)

func tagsOf(t *testing.T, doc *arena.Document, h arena.Handle) []string {
	t.Helper()
	var out []string
	for _, ch := range doc.Children(h) {
		if kind, _ := doc.Kind(ch); kind == arena.KindElement {
			tag, _ := doc.Tag(ch)
			out = append(out, tag)
		}
	}
	return out
}

func TestParseBasicTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wisp.htmlfeed")
	defer teardown()

	doc, err := htmlfeed.Parse(strings.NewReader(`<html><body><div id="a"><span>hi</span></div></body></html>`))
	require.NoError(t, err)

	div, ok := doc.GetElementByID("a")
	require.True(t, ok)
	tag, _ := doc.Tag(div)
	assert.Equal(t, "div", tag)

	children := doc.Children(div)
	require.Len(t, children, 1)
	spanTag, _ := doc.Tag(children[0])
	assert.Equal(t, "span", spanTag)

	text, ok := doc.Text(doc.Children(children[0])[0])
	require.True(t, ok)
	assert.Equal(t, "hi", text)
}

func TestImplicitClosureOfTableCells(t *testing.T) {
	doc, err := htmlfeed.Parse(strings.NewReader(`<table><tr><td>a<td>b<td>c</tr></table>`))
	require.NoError(t, err)

	var tr arena.Handle
	var walk func(h arena.Handle)
	walk = func(h arena.Handle) {
		for _, ch := range doc.Children(h) {
			if tag, ok := doc.Tag(ch); ok && tag == "tr" {
				tr = ch
			}
			walk(ch)
		}
	}
	walk(doc.Root())
	require.False(t, tr.IsNull())

	assert.Equal(t, []string{"td", "td", "td"}, tagsOf(t, doc, tr))
}

func TestImplicitClosureOfDiv(t *testing.T) {
	doc, err := htmlfeed.Parse(strings.NewReader(`<body><div>one<div>two</div></body>`))
	require.NoError(t, err)

	var body arena.Handle
	for _, ch := range doc.Children(doc.Root()) {
		if tag, ok := doc.Tag(ch); ok && tag == "html" {
			for _, c2 := range doc.Children(ch) {
				if t2, ok := doc.Tag(c2); ok && t2 == "body" {
					body = c2
				}
			}
		}
		if tag, ok := doc.Tag(ch); ok && tag == "body" {
			body = ch
		}
	}
	require.False(t, body.IsNull())
	// two sibling divs, not one nested inside the other, because the
	// second <div> auto-closes the first via implicit closure.
	assert.Equal(t, []string{"div", "div"}, tagsOf(t, doc, body))
}

func TestImplicitClosureOfParagraphByBlockElement(t *testing.T) {
	doc, err := htmlfeed.Parse(strings.NewReader(`<body><p>one<div>two</div></body>`))
	require.NoError(t, err)

	var body arena.Handle
	for _, ch := range doc.Children(doc.Root()) {
		if tag, ok := doc.Tag(ch); ok && tag == "body" {
			body = ch
		}
	}
	require.False(t, body.IsNull())
	// <div> closes the open <p> instead of nesting inside it, so the
	// two end up as siblings of body.
	assert.Equal(t, []string{"p", "div"}, tagsOf(t, doc, body))

	var p arena.Handle
	for _, ch := range doc.Children(body) {
		if tag, ok := doc.Tag(ch); ok && tag == "p" {
			p = ch
		}
	}
	require.False(t, p.IsNull())
	assert.Empty(t, tagsOf(t, doc, p), "div must not end up nested inside p")
}

func TestStyleContentHarvested(t *testing.T) {
	doc, err := htmlfeed.Parse(strings.NewReader(`<head><style>p { color: red; }</style></head>`))
	require.NoError(t, err)

	require.Len(t, doc.StyleTexts, 1)
	assert.Contains(t, doc.StyleTexts[0], "color: red")
}

func TestWhitespaceIsPreservedInTextNodes(t *testing.T) {
	doc, err := htmlfeed.Parse(strings.NewReader(`<p>  two   words  </p>`))
	require.NoError(t, err)

	var p arena.Handle
	var walk func(h arena.Handle)
	walk = func(h arena.Handle) {
		for _, ch := range doc.Children(h) {
			if tag, ok := doc.Tag(ch); ok && tag == "p" {
				p = ch
			}
			walk(ch)
		}
	}
	walk(doc.Root())
	require.False(t, p.IsNull())

	text, ok := doc.Text(doc.Children(p)[0])
	require.True(t, ok)
	assert.Equal(t, "  two   words  ", text)
}
