/*
Package douceuradapter wraps github.com/aymerick/douceur's CSS parser,
translating its css.Stylesheet/css.Rule/css.Declaration types into the
flat, dependency-free shapes style/cssom compiles from.

There is only one stylesheet backend here, so this package skips the
interface indirection a multi-backend design would need and returns
plain structs directly.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/parser"
)

// Declaration is one "property: value [!important]" pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a single CSS rule: a raw (possibly comma-separated) selector
// list and its declarations, in source order.
type Rule struct {
	Selectors    string
	Declarations []Declaration
}

// Parse parses a stylesheet's full text into its rules, in source
// order, which the compiler uses as the rule_index tie breaker.
func Parse(cssText string) ([]Rule, error) {
	sheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, err
	}
	out := make([]Rule, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		rule := Rule{Selectors: r.Prelude}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, Declaration{
				Property:  d.Property,
				Value:     d.Value,
				Important: d.Important,
			})
		}
		out = append(out, rule)
	}
	return out, nil
}

// ParseDeclarations parses a bare declaration list with no selector,
// e.g. the contents of an inline style="..." attribute.
func ParseDeclarations(raw string) ([]Declaration, error) {
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil, err
	}
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		out = append(out, Declaration{Property: d.Property, Value: d.Value, Important: d.Important})
	}
	return out, nil
}
