package style

import (
	"image/color"
	"strconv"
	"strings"
)

// Kind tags the shape of a parsed CSS value: lengths, percentages, the
// two viewport units, font-relative units, a resolved color, a bare
// number, a keyword, and the auto/none tokens.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindLengthPx
	KindPercent
	KindViewportW
	KindViewportH
	KindEm
	KindRem
	KindNumber
	KindColor
	KindAuto
	KindNone
)

// Value is a single parsed property value. Only the fields relevant to
// Kind are meaningful; the rest are zero.
type Value struct {
	Kind    Kind
	Num     float64
	Keyword string
	Color   color.RGBA
}

// namedColors is the small palette recognized by name; anything
// outside it falls through to #RRGGBB hex parsing.
var namedColors = map[string]color.RGBA{
	"red":   {R: 0xff, A: 0xff},
	"green": {G: 0x80, A: 0xff},
	"blue":  {B: 0xff, A: 0xff},
	"black": {A: 0xff},
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// keywords recognized outside of named colors; anything else parses as
// a generic KindKeyword value, left for the consuming property to make
// sense of (e.g. "block", "inline", "ltr").
var bareTokens = map[string]Kind{
	"auto": KindAuto,
	"none": KindNone,
}

// ParseValue parses a single CSS value token (not a comma/space
// separated list; callers split lists themselves) into a typed Value.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	low := strings.ToLower(s)

	if kind, ok := bareTokens[low]; ok {
		return Value{Kind: kind, Keyword: low}
	}
	if c, ok := namedColors[low]; ok {
		return Value{Kind: KindColor, Color: c}
	}
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHexColor(s); ok {
			return Value{Kind: KindColor, Color: c}
		}
	}
	if strings.HasSuffix(low, "px") {
		if n, ok := parseFloat(low[:len(low)-2]); ok {
			return Value{Kind: KindLengthPx, Num: n}
		}
	}
	if strings.HasSuffix(low, "%") {
		if n, ok := parseFloat(low[:len(low)-1]); ok {
			return Value{Kind: KindPercent, Num: n}
		}
	}
	if strings.HasSuffix(low, "vw") {
		if n, ok := parseFloat(low[:len(low)-2]); ok {
			return Value{Kind: KindViewportW, Num: n}
		}
	}
	if strings.HasSuffix(low, "vh") {
		if n, ok := parseFloat(low[:len(low)-2]); ok {
			return Value{Kind: KindViewportH, Num: n}
		}
	}
	if strings.HasSuffix(low, "rem") {
		if n, ok := parseFloat(low[:len(low)-3]); ok {
			return Value{Kind: KindRem, Num: n}
		}
	}
	if strings.HasSuffix(low, "em") {
		if n, ok := parseFloat(low[:len(low)-2]); ok {
			return Value{Kind: KindEm, Num: n}
		}
	}
	if n, ok := parseFloat(low); ok {
		return Value{Kind: KindNumber, Num: n}
	}
	return Value{Kind: KindKeyword, Keyword: low}
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	expand := func(c byte) byte {
		v, err := strconv.ParseUint(string([]byte{c, c}), 16, 8)
		if err != nil {
			return 0
		}
		return byte(v)
	}
	switch len(s) {
	case 3:
		return color.RGBA{R: expand(s[0]), G: expand(s[1]), B: expand(s[2]), A: 0xff}, true
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{
			R: byte(v >> 16),
			G: byte(v >> 8),
			B: byte(v),
			A: 0xff,
		}, true
	}
	return color.RGBA{}, false
}

// ResolveLengthPx resolves v to an absolute pixel value given the
// viewport dimensions and the font sizes needed for em/rem resolution,
// reused by the layout adapter. Percentages, bare numbers and
// non-length kinds (keywords, auto, none, color) return (0, false).
func (v Value) ResolveLengthPx(viewportW, viewportH, fontSizePx, rootFontSizePx float64) (float64, bool) {
	switch v.Kind {
	case KindLengthPx:
		return v.Num, true
	case KindViewportW:
		return v.Num / 100 * viewportW, true
	case KindViewportH:
		return v.Num / 100 * viewportH, true
	case KindEm:
		return v.Num * fontSizePx, true
	case KindRem:
		return v.Num * rootFontSizePx, true
	}
	return 0, false
}
