package style

import "fmt"

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// ExpandShorthand expands a 1-to-4-value directional shorthand
// (margin, padding) into its four longhand key/value pairs, following
// the CSS "feaze" distribution rule for 1/2/3/4-value shorthands,
// operating on already-tokenized Values rather than re-parsing
// property strings.
//
//	margin: 3px        -> margin-{top,right,bottom,left}: 3px
//	margin: 3px 6px     -> top/bottom: 3px, right/left: 6px
//	margin: 1px 2px 3px -> top:1px right/left:2px bottom:3px
//	margin: 1 2 3 4     -> top:1 right:2 bottom:3 left:4
func ExpandShorthand(key string, fields []Value) ([]KeyValue, error) {
	switch key {
	case "margin", "padding":
		return feazeCompound4(key, fields)
	}
	return nil, fmt.Errorf("style: %q is not a directional shorthand", key)
}

func feazeCompound4(prefix string, fields []Value) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("style: expected 1-4 values for %s, got %d", prefix, l)
	}
	pick := func(i int) Value {
		switch l {
		case 1:
			return fields[0]
		case 2:
			return fields[i%2]
		case 3:
			if i == 3 {
				return fields[1]
			}
			return fields[i]
		default:
			return fields[i]
		}
	}
	out := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		out[i] = KeyValue{Key: prefix + "-" + dir, Value: pick(i)}
	}
	return out, nil
}
