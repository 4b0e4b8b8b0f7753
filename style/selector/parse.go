package selector

import "fmt"

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

func isNameByte(b byte) bool {
	return b == '-' || b == '_' || b >= 0x80 || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Parse parses a single complex selector, e.g. "div.foo > span#bar .baz".
// Only tag/universal, #id, and .class simple selectors are recognized,
// joined by descendant (whitespace) and child (">") combinators;
// pseudo-classes, attribute selectors, and sibling combinators are out
// of scope.
func Parse(raw string) (ComplexSelector, error) {
	var compounds []Compound
	var combinators []Combinator

	i, n := 0, len(raw)
	for i < n {
		sawSpace := false
		for i < n && isSpace(raw[i]) {
			sawSpace = true
			i++
		}
		if i >= n {
			break
		}
		comb := Descendant
		if raw[i] == '>' {
			comb = Child
			i++
			for i < n && isSpace(raw[i]) {
				i++
			}
		} else if !sawSpace && len(compounds) > 0 {
			return ComplexSelector{}, fmt.Errorf("selector: expected combinator at %q", raw[i:])
		}

		start := i
		for i < n && !isSpace(raw[i]) && raw[i] != '>' {
			i++
		}
		token := raw[start:i]
		if token == "" {
			return ComplexSelector{}, fmt.Errorf("selector: empty compound in %q", raw)
		}
		c, err := parseCompound(token)
		if err != nil {
			return ComplexSelector{}, err
		}
		if len(compounds) > 0 {
			combinators = append(combinators, comb)
		}
		compounds = append(compounds, c)
	}
	if len(compounds) == 0 {
		return ComplexSelector{}, fmt.Errorf("selector: empty selector")
	}
	return ComplexSelector{Compounds: compounds, Combinators: combinators, Raw: raw}, nil
}

func parseCompound(s string) (Compound, error) {
	var c Compound
	i, n := 0, len(s)

	if i < n && s[i] != '#' && s[i] != '.' {
		start := i
		for i < n && (isNameByte(s[i]) || s[i] == '*') {
			i++
		}
		tag := s[start:i]
		if tag == "*" {
			c.Universal = true
		} else {
			c.Tag = tag
		}
	}
	for i < n {
		switch s[i] {
		case '#':
			i++
			start := i
			for i < n && isNameByte(s[i]) {
				i++
			}
			if s[start:i] == "" {
				return Compound{}, fmt.Errorf("selector: empty id in %q", s)
			}
			if c.ID != "" {
				return Compound{}, fmt.Errorf("selector: multiple ids in %q", s)
			}
			c.ID = s[start:i]
		case '.':
			i++
			start := i
			for i < n && isNameByte(s[i]) {
				i++
			}
			if s[start:i] == "" {
				return Compound{}, fmt.Errorf("selector: empty class in %q", s)
			}
			c.Classes = append(c.Classes, s[start:i])
		default:
			return Compound{}, fmt.Errorf("selector: unexpected character %q in %q", s[i], s)
		}
	}
	if !c.Universal && c.Tag == "" && c.ID == "" && len(c.Classes) == 0 {
		return Compound{}, fmt.Errorf("selector: empty compound")
	}
	return c, nil
}

// ParseList splits a comma-separated selector list and parses each
// member: a rule's selector may be a list, matching if any member
// matches.
func ParseList(raw string) ([]ComplexSelector, error) {
	var out []ComplexSelector
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			part := trim(raw[start:i])
			if part != "" {
				cs, err := Parse(part)
				if err != nil {
					return nil, err
				}
				out = append(out, cs)
			}
			start = i + 1
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("selector: empty selector list")
	}
	return out, nil
}

func trim(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}
