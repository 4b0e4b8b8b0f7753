package cascade

import (
	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/style/selector"
)

// MatchSelector parses rawSelector and reports whether the element at
// h matches it. Exported standalone so script's querySelector can
// reuse the exact same selector grammar and matching semantics the
// cascade uses.
func MatchSelector(doc *arena.Document, h arena.Handle, rawSelector string) (bool, error) {
	sel, err := selector.Parse(rawSelector)
	if err != nil {
		return false, err
	}
	return selector.Matches(doc, h, sel), nil
}

// QuerySelector returns the first element in document order, searched
// depth-first starting at root, that matches rawSelector.
func QuerySelector(doc *arena.Document, root arena.Handle, rawSelector string) (arena.Handle, bool, error) {
	sel, err := selector.Parse(rawSelector)
	if err != nil {
		return arena.NullHandle, false, err
	}
	h, ok := findFirst(doc, root, sel)
	return h, ok, nil
}

// QuerySelectorAll returns every element in document order matching
// rawSelector, which may be a comma-separated list; an element is
// included once if it matches any member.
func QuerySelectorAll(doc *arena.Document, root arena.Handle, rawSelector string) ([]arena.Handle, error) {
	list, err := selector.ParseList(rawSelector)
	if err != nil {
		return nil, err
	}
	var out []arena.Handle
	findAll(doc, root, list, &out)
	return out, nil
}

func findFirst(doc *arena.Document, h arena.Handle, sel selector.ComplexSelector) (arena.Handle, bool) {
	for _, ch := range doc.Children(h) {
		if kind, ok := doc.Kind(ch); ok && kind == arena.KindElement && selector.Matches(doc, ch, sel) {
			return ch, true
		}
		if found, ok := findFirst(doc, ch, sel); ok {
			return found, true
		}
	}
	return arena.NullHandle, false
}

func findAll(doc *arena.Document, h arena.Handle, list []selector.ComplexSelector, out *[]arena.Handle) {
	for _, ch := range doc.Children(h) {
		if kind, ok := doc.Kind(ch); ok && kind == arena.KindElement && selector.MatchesAny(doc, ch, list) {
			*out = append(*out, ch)
		}
		findAll(doc, ch, list, out)
	}
}
