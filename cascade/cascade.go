package cascade

import (
	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/style"
	"github.com/veridian-labs/wisp/style/cssom"
	"github.com/veridian-labs/wisp/style/selector"
)

// Tree is a built styled tree plus a handle index, so the layout
// adapter and renderer can look a StyledNode up by the arena.Handle
// it originated from without re-walking.
type Tree struct {
	Root     *StyledNode
	byHandle map[arena.Handle]*StyledNode
}

// Lookup returns the StyledNode for h, if the tree contains one.
func (t *Tree) Lookup(h arena.Handle) (*StyledNode, bool) {
	n, ok := t.byHandle[h]
	return n, ok
}

// Build computes the full styled tree for doc under sheet. Declarations
// are resolved depth-first, so a child can always consult its
// already-built parent for inheritance.
func Build(doc *arena.Document, sheet *cssom.Stylesheet) *Tree {
	t := &Tree{byHandle: make(map[arena.Handle]*StyledNode)}
	t.Root = t.buildNode(doc, doc.Root(), nil, sheet)
	return t
}

func (t *Tree) buildNode(doc *arena.Document, h arena.Handle, parent *StyledNode, sheet *cssom.Stylesheet) *StyledNode {
	kind, _ := doc.Kind(h)
	sn := &StyledNode{Handle: h, Kind: kind, Parent: parent}

	if kind == arena.KindElement {
		tag, _ := doc.Tag(h)
		sn.Tag = tag
		pm := style.NewPropertyMap()
		applied := mergeApply(doc, h, candidateStreams(doc, h, sheet), pm)
		if inline, ok := doc.GetAttribute(h, "style"); ok && inline != "" {
			if decls, err := cssom.CompileInline(inline); err != nil {
				tracer().Errorf("inline style on %s: %v", h, err)
			} else {
				for _, kv := range decls {
					pm.Set(kv.Key, kv.Value)
				}
				applied = applied || len(decls) > 0
			}
		}
		if applied {
			sn.props = pm
		}
		// else: leave sn.props nil. Property() walks Parent for
		// inheritable keys and falls back to the UA default for
		// everything else, so a bare StyledNode is already a correct
		// (and cheapest possible) representation of "no own rules".
	}
	t.byHandle[h] = sn

	for _, ch := range doc.Children(h) {
		sn.children = append(sn.children, t.buildNode(doc, ch, sn, sheet))
	}
	return sn
}

// candidateStreams collects every bucket that could plausibly hold a
// rule matching h: its id bucket, one bucket per class it carries, its
// tag bucket, and the universal bucket. Each is already sorted
// ascending by (specificity, rule_index).
func candidateStreams(doc *arena.Document, h arena.Handle, sheet *cssom.Stylesheet) [][]cssom.CompiledRule {
	var streams [][]cssom.CompiledRule
	if id := doc.ID(h); id != "" {
		if s, ok := sheet.ByID[id]; ok && len(s) > 0 {
			streams = append(streams, s)
		}
	}
	for _, c := range doc.Classes(h) {
		if s, ok := sheet.ByClass[c]; ok && len(s) > 0 {
			streams = append(streams, s)
		}
	}
	if tag, ok := doc.Tag(h); ok {
		if s, ok := sheet.ByTag[tag]; ok && len(s) > 0 {
			streams = append(streams, s)
		}
	}
	if len(sheet.Universal) > 0 {
		streams = append(streams, sheet.Universal)
	}
	return streams
}

// mergeApply streams the candidate buckets in increasing
// (specificity, rule_index) order and applies each matching rule's
// declarations in that order, so a later (higher-priority) rule's
// values simply overwrite an earlier one's in pm: a streaming k-way
// merge with no intermediate merged slice ever materialized.
func mergeApply(doc *arena.Document, h arena.Handle, streams [][]cssom.CompiledRule, pm *style.PropertyMap) bool {
	heads := make([]int, len(streams))
	applied := false
	for {
		minIdx := -1
		for i, s := range streams {
			for heads[i] < len(s) && !selector.Matches(doc, h, s[heads[i]].Selector) {
				heads[i]++
			}
			if heads[i] >= len(s) {
				continue
			}
			if minIdx == -1 || rankLess(s[heads[i]], streams[minIdx][heads[minIdx]]) {
				minIdx = i
			}
		}
		if minIdx == -1 {
			return applied
		}
		rule := streams[minIdx][heads[minIdx]]
		for _, kv := range rule.Declarations {
			pm.Set(kv.Key, kv.Value)
		}
		applied = true
		heads[minIdx]++
	}
}

func rankLess(a, b cssom.CompiledRule) bool {
	if a.Specificity != b.Specificity {
		return a.Specificity.Less(b.Specificity)
	}
	return a.Index < b.Index
}
