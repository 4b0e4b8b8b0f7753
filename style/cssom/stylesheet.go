package cssom

import (
	"sort"
	"strings"

	"github.com/veridian-labs/wisp/style"
	"github.com/veridian-labs/wisp/style/cssom/douceuradapter"
	"github.com/veridian-labs/wisp/style/selector"
)

// shorthands is the set of property keys that expand into four
// directional longhands (style.ExpandShorthand's repertoire).
var shorthands = map[string]bool{"margin": true, "padding": true}

// backgroundColorOnly is the set of shorthand property keys this
// compiler maps to a single longhand, keeping only their color
// component and dropping image/position/repeat/attachment.
var backgroundColorOnly = map[string]string{"background": "background-color"}

// CompiledRule is one selector/declaration-list pair, already parsed
// and specificity-scored, ready to be merged by the cascade.
type CompiledRule struct {
	Selector     selector.ComplexSelector
	Specificity  selector.Specificity
	Index        int
	Declarations []style.KeyValue
}

// Stylesheet is a compiled, bucketed set of rules. Each bucket is kept
// sorted ascending by (Specificity, Index), so applying a bucket's
// rules to a node in slice order and letting each later rule overwrite
// matching keys produces the correct cascade result.
type Stylesheet struct {
	ByID      map[string][]CompiledRule
	ByClass   map[string][]CompiledRule
	ByTag     map[string][]CompiledRule
	Universal []CompiledRule
}

func newStylesheet() *Stylesheet {
	return &Stylesheet{
		ByID:    make(map[string][]CompiledRule),
		ByClass: make(map[string][]CompiledRule),
		ByTag:   make(map[string][]CompiledRule),
	}
}

// Compile parses cssText and bucket-indexes its rules. startIndex is
// the source-order index to assign the first rule (pass the running
// total when compiling multiple <style> blocks in document order, so
// rule_index tie-breaking is stable across the whole document).
func Compile(cssText string, startIndex int) (*Stylesheet, int, error) {
	rules, err := douceuradapter.Parse(cssText)
	if err != nil {
		return nil, startIndex, err
	}
	sheet := newStylesheet()
	idx := startIndex
	for _, r := range rules {
		selList, err := selector.ParseList(r.Selectors)
		if err != nil {
			tracer().Errorf("skipping rule with unparsable selector %q: %v", r.Selectors, err)
			idx++
			continue
		}
		decls := compileDeclarations(r.Declarations)
		for _, sel := range selList {
			cr := CompiledRule{
				Selector:     sel,
				Specificity:  sel.Specificity(),
				Index:        idx,
				Declarations: decls,
			}
			sheet.file(cr)
		}
		idx++
	}
	sheet.sortBuckets()
	return sheet, idx, nil
}

// Merge appends other's rules into sheet and re-sorts every touched
// bucket. Used to combine multiple <style> elements (and eventually
// linked stylesheets) into one compiled set.
func (s *Stylesheet) Merge(other *Stylesheet) {
	for k, v := range other.ByID {
		s.ByID[k] = append(s.ByID[k], v...)
	}
	for k, v := range other.ByClass {
		s.ByClass[k] = append(s.ByClass[k], v...)
	}
	for k, v := range other.ByTag {
		s.ByTag[k] = append(s.ByTag[k], v...)
	}
	s.Universal = append(s.Universal, other.Universal...)
	s.sortBuckets()
}

func (s *Stylesheet) file(cr CompiledRule) {
	kind, key := cr.Selector.RightmostBucketKey()
	switch kind {
	case selector.BucketID:
		s.ByID[key] = append(s.ByID[key], cr)
	case selector.BucketClass:
		s.ByClass[key] = append(s.ByClass[key], cr)
	case selector.BucketTag:
		s.ByTag[key] = append(s.ByTag[key], cr)
	default:
		s.Universal = append(s.Universal, cr)
	}
}

func (s *Stylesheet) sortBuckets() {
	less := func(b []CompiledRule) func(i, j int) bool {
		return func(i, j int) bool {
			if b[i].Specificity != b[j].Specificity {
				return b[i].Specificity.Less(b[j].Specificity)
			}
			return b[i].Index < b[j].Index
		}
	}
	for _, b := range s.ByID {
		sort.SliceStable(b, less(b))
	}
	for _, b := range s.ByClass {
		sort.SliceStable(b, less(b))
	}
	for _, b := range s.ByTag {
		sort.SliceStable(b, less(b))
	}
	sort.SliceStable(s.Universal, less(s.Universal))
}

func compileDeclarations(decls []douceuradapter.Declaration) []style.KeyValue {
	var out []style.KeyValue
	for _, d := range decls {
		if longhand, ok := backgroundColorOnly[d.Property]; ok {
			fields := strings.Fields(d.Value)
			if len(fields) == 0 {
				continue
			}
			out = append(out, style.KeyValue{Key: longhand, Value: style.ParseValue(fields[0])})
			continue
		}
		if shorthands[d.Property] {
			fields := strings.Fields(d.Value)
			values := make([]style.Value, len(fields))
			for i, f := range fields {
				values[i] = style.ParseValue(f)
			}
			expanded, err := style.ExpandShorthand(d.Property, values)
			if err != nil {
				tracer().Errorf("shorthand %q: %v", d.Property, err)
				continue
			}
			out = append(out, expanded...)
			continue
		}
		out = append(out, style.KeyValue{Key: d.Property, Value: style.ParseValue(d.Value)})
	}
	return out
}

// CompileInline parses the contents of a style="..." attribute into a
// flat declaration list, with no selector of its own; the cascade
// applies it last, after every matched stylesheet rule.
func CompileInline(raw string) ([]style.KeyValue, error) {
	decls, err := douceuradapter.ParseDeclarations(raw)
	if err != nil {
		return nil, err
	}
	return compileDeclarations(decls), nil
}
