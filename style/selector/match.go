package selector

import "github.com/veridian-labs/wisp/arena"

// Matches reports whether the element at h satisfies sel, matching the
// rightmost compound against h itself and then walking h's ancestor
// chain right-to-left through the remaining compounds; the standard
// CSS matching order, which lets a cheap rightmost-compound test reject
// most candidates before any ancestor walk happens.
func Matches(doc *arena.Document, h arena.Handle, sel ComplexSelector) bool {
	last := len(sel.Compounds) - 1
	if !matchesCompound(doc, h, sel.Compounds[last]) {
		return false
	}
	cur := h
	for i := last; i > 0; i-- {
		switch sel.Combinators[i-1] {
		case Child:
			parent, ok := doc.Parent(cur)
			if !ok || !matchesCompound(doc, parent, sel.Compounds[i-1]) {
				return false
			}
			cur = parent
		default: // Descendant
			parent, ok := findMatchingAncestor(doc, cur, sel.Compounds[i-1])
			if !ok {
				return false
			}
			cur = parent
		}
	}
	return true
}

// MatchesAny reports whether h satisfies any member of a selector list.
func MatchesAny(doc *arena.Document, h arena.Handle, list []ComplexSelector) bool {
	for _, sel := range list {
		if Matches(doc, h, sel) {
			return true
		}
	}
	return false
}

func findMatchingAncestor(doc *arena.Document, h arena.Handle, c Compound) (arena.Handle, bool) {
	for cur := h; ; {
		parent, ok := doc.Parent(cur)
		if !ok {
			return arena.NullHandle, false
		}
		if matchesCompound(doc, parent, c) {
			return parent, true
		}
		cur = parent
	}
}

func matchesCompound(doc *arena.Document, h arena.Handle, c Compound) bool {
	kind, ok := doc.Kind(h)
	if !ok || kind != arena.KindElement {
		return false
	}
	if !c.Universal && c.Tag != "" {
		if tag, _ := doc.Tag(h); tag != c.Tag {
			return false
		}
	}
	if c.ID != "" && doc.ID(h) != c.ID {
		return false
	}
	for _, cl := range c.Classes {
		if !doc.HasClass(h, cl) {
			return false
		}
	}
	return true
}
