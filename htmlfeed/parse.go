package htmlfeed

import (
	"io"

	"golang.org/x/net/html"

	"github.com/veridian-labs/wisp/arena"
)

// BlockBoundaries is the set of tags treated as implicit-closure
// boundaries. Opening one of these while the same tag is the innermost
// open element closes that element first instead of nesting it, and
// opening one while a <p> is open (with no other boundary tag between
// them) closes the <p>, so "<p>one<div>two</div>" yields <p> and <div>
// as siblings rather than nesting <div> inside <p>. Exported so a host
// can extend it for tags beyond this core's own HTML5-parity guesswork.
var BlockBoundaries = map[string]bool{
	"div":   true,
	"body":  true,
	"td":    true,
	"th":    true,
	"table": true,
}

// frame is one entry of the open-element stack: the tag name (empty
// for the synthetic root frame) and the arena handle it was inserted
// under.
type frame struct {
	tag string
	h   arena.Handle
}

// Parse tokenizes r as HTML and builds a Document tree from it. Only
// Root/Element/Text nodes are produced; comments and doctypes are
// consumed but not represented. <style> element bodies are harvested
// verbatim into doc.StyleTexts instead of becoming text nodes.
func Parse(r io.Reader) (*arena.Document, error) {
	doc := arena.NewDocument()
	z := html.NewTokenizer(r)
	stack := []frame{{h: doc.Root()}}

	for {
		tt := z.Next()
		top := &stack[len(stack)-1]

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return doc, err
			}
			return doc, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			stack = closeImplicit(stack, tok.Data)
			top = &stack[len(stack)-1]
			h := doc.CreateElement(tok.Data, attrsOf(tok))
			if err := doc.AppendChild(top.h, h); err != nil {
				tracer().Errorf("append <%s>: %v", tok.Data, err)
				continue
			}
			if tt == html.StartTagToken {
				stack = append(stack, frame{tag: tok.Data, h: h})
			}

		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == tok.Data {
					stack = stack[:i]
					break
				}
			}

		case html.TextToken:
			text := z.Token().Data
			if top.tag == "style" {
				doc.StyleTexts = append(doc.StyleTexts, text)
				continue
			}
			h := doc.CreateText(text)
			if err := doc.AppendChild(top.h, h); err != nil {
				tracer().Errorf("append text: %v", err)
			}

		case html.CommentToken, html.DoctypeToken:
			// no corresponding Node kind.
		}
	}
}

// closeImplicit pops the frames that opening tag should implicitly
// close. Two cases: tag reopens the same tag as the innermost open
// element (div-in-div, td-in-td) and just that frame closes; or tag is a
// boundary tag opening while a <p> is open above the nearest other
// boundary ancestor, and the <p> (and anything nested inside it)
// closes so tag lands as its sibling instead of its child.
func closeImplicit(stack []frame, tag string) []frame {
	if !BlockBoundaries[tag] || len(stack) <= 1 {
		return stack
	}
	if stack[len(stack)-1].tag == tag {
		return stack[:len(stack)-1]
	}
	for i := len(stack) - 1; i > 0; i-- {
		if stack[i].tag == "p" {
			return stack[:i]
		}
		if BlockBoundaries[stack[i].tag] {
			break
		}
	}
	return stack
}

func attrsOf(tok html.Token) []arena.Attr {
	if len(tok.Attr) == 0 {
		return nil
	}
	out := make([]arena.Attr, len(tok.Attr))
	for i, a := range tok.Attr {
		out[i] = arena.Attr{Key: a.Key, Value: a.Val}
	}
	return out
}
