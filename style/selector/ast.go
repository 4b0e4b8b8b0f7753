package selector

// Combinator joins two compound selectors within a complex selector.
type Combinator uint8

const (
	// Descendant matches any ancestor, not just the immediate parent.
	Descendant Combinator = iota
	// Child matches only the immediate parent.
	Child
)

// Compound is one simple-selector sequence: an optional tag name (or
// the universal selector), an optional id, and zero or more classes,
// all of which must match the same element.
type Compound struct {
	Tag       string
	Universal bool
	ID        string
	Classes   []string
}

// ComplexSelector is a sequence of compounds joined by combinators,
// read left (outermost ancestor) to right (the element the rule
// targets). len(Combinators) == len(Compounds)-1.
type ComplexSelector struct {
	Compounds   []Compound
	Combinators []Combinator
	Raw         string
}

// Specificity is the (id, class, tag) triple CSS orders cascading
// declarations by, most significant first.
type Specificity struct {
	IDs     int
	Classes int
	Tags    int
}

// Less reports whether s sorts before other, i.e. other wins when both
// match the same element.
func (s Specificity) Less(other Specificity) bool {
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	return s.Tags < other.Tags
}

// Specificity computes the selector's specificity triple by summing
// across every compound in the chain.
func (cs ComplexSelector) Specificity() Specificity {
	var s Specificity
	for _, c := range cs.Compounds {
		if c.ID != "" {
			s.IDs++
		}
		s.Classes += len(c.Classes)
		if c.Tag != "" {
			s.Tags++
		}
	}
	return s
}

// BucketKind names which of the cascade's four bucket families a
// selector's rightmost compound indexes into.
type BucketKind uint8

const (
	BucketID BucketKind = iota
	BucketClass
	BucketTag
	BucketUniversal
)

// RightmostBucketKey returns the bucket a rule should be filed under,
// keyed off the last compound of its selector: the same rightmost-
// compound-first strategy real CSS engines use so a simple id/class/tag
// test, rather than a full selector match, can reject most rules
// immediately.
func (cs ComplexSelector) RightmostBucketKey() (BucketKind, string) {
	last := cs.Compounds[len(cs.Compounds)-1]
	if last.ID != "" {
		return BucketID, last.ID
	}
	if len(last.Classes) > 0 {
		return BucketClass, last.Classes[0]
	}
	if last.Tag != "" {
		return BucketTag, last.Tag
	}
	return BucketUniversal, ""
}
