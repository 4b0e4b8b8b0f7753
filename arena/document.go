package arena

// Document owns an arena of nodes, the single Root node, the raw
// stylesheet text blocks harvested from <style> elements, and an
// id-to-handle index for O(1) getElementById.
type Document struct {
	a          *arena
	root       Handle
	StyleTexts []string
	idMap      map[string]Handle
}

// NewDocument creates an empty Document containing only its Root node.
func NewDocument() *Document {
	a := newArena()
	d := &Document{a: a, idMap: make(map[string]Handle)}
	d.root = a.alloc(node{kind: KindRoot, parent: NullHandle})
	return d
}

// Root returns the handle of the document's single root node.
func (d *Document) Root() Handle {
	return d.root
}

// CreateElement creates a new, detached element node with the given
// tag name and attributes. An "id" or "class" attribute is unpacked
// into the dedicated id/classes fields as well as kept in attrs, so
// GetAttribute round-trips whatever SetAttribute(h, k, v) last stored.
// A non-empty id is also entered into the id index.
func (d *Document) CreateElement(tag string, attrs []Attr) Handle {
	n := node{kind: KindElement, tag: tag, parent: NullHandle}
	for _, at := range attrs {
		n.attrs = append(n.attrs, at)
		switch at.Key {
		case "id":
			n.id = at.Value
		case "class":
			n.classes = splitClasses(at.Value)
		}
	}
	h := d.a.alloc(n)
	if n.id != "" {
		d.idMap[n.id] = h
	}
	return h
}

// CreateText creates a new, detached text node.
func (d *Document) CreateText(text string) Handle {
	return d.a.alloc(node{kind: KindText, text: text, parent: NullHandle})
}

func splitClasses(v string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(v); i++ {
		if i < len(v) && v[i] != ' ' && v[i] != '\t' && v[i] != '\n' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, v[start:i])
			start = -1
		}
	}
	return out
}

// isDescendantOf reports whether candidate is h itself or a descendant
// of h, walking parent pointers from candidate.
func (d *Document) isDescendantOf(candidate, h Handle) bool {
	for cur := candidate; !cur.IsNull(); {
		if cur == h {
			return true
		}
		n := d.a.resolve(cur)
		if n == nil {
			return false
		}
		cur = n.parent
	}
	return false
}

// unlink removes child from its current sibling chain and clears its
// parent/sibling links. It is a no-op if child is already detached.
func (d *Document) unlink(child Handle) {
	cn := d.a.resolve(child)
	if cn == nil || cn.parent.IsNull() {
		return
	}
	pn := d.a.resolve(cn.parent)
	if pn == nil {
		cn.parent = NullHandle
		return
	}
	if prev := d.a.resolve(cn.prevSibling); prev != nil {
		prev.nextSibling = cn.nextSibling
	} else {
		pn.firstChild = cn.nextSibling
	}
	if next := d.a.resolve(cn.nextSibling); next != nil {
		next.prevSibling = cn.prevSibling
	} else {
		pn.lastChild = cn.prevSibling
	}
	cn.parent = NullHandle
	cn.prevSibling = NullHandle
	cn.nextSibling = NullHandle
}

// AppendChild unlinks child from its current siblings (if attached),
// then links it as the last child of parent.
func (d *Document) AppendChild(parent, child Handle) error {
	pn := d.a.resolve(parent)
	cn := d.a.resolve(child)
	if pn == nil || cn == nil {
		return ErrStaleHandle
	}
	if pn.kind == KindText {
		return ErrInvalidParent
	}
	if d.isDescendantOf(parent, child) {
		return ErrCycle
	}
	d.unlink(child)
	cn.parent = parent
	if last := d.a.resolve(pn.lastChild); last != nil {
		last.nextSibling = child
		cn.prevSibling = pn.lastChild
	} else {
		pn.firstChild = child
	}
	pn.lastChild = child
	return nil
}

// RemoveNode unlinks h from its parent, then iteratively (queue-based,
// never recursive, so deep subtrees do not overflow small host stacks)
// frees the whole subtree rooted at h. For
// each freed element carrying an id, the id_map entry is removed only
// if it still points at the exact handle being freed, guarding against
// a stale entry left by a prior id reassignment elsewhere in the tree.
func (d *Document) RemoveNode(h Handle) error {
	n := d.a.resolve(h)
	if n == nil {
		return ErrStaleHandle
	}
	d.unlink(h)
	queue := []Handle{h}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cn := d.a.resolve(cur)
		if cn == nil {
			continue
		}
		if cn.kind == KindElement && cn.id != "" {
			if existing, ok := d.idMap[cn.id]; ok && existing == cur {
				delete(d.idMap, cn.id)
			}
		}
		for ch := cn.firstChild; !ch.IsNull(); {
			next := d.a.resolve(ch).nextSibling
			queue = append(queue, ch)
			ch = next
		}
		d.a.free(cur)
	}
	return nil
}

// SetAttribute inserts or overwrites an attribute. Setting "id" removes
// the old id (if any) from id_map before inserting the new one, which
// also displaces any prior mapping for the new value.
func (d *Document) SetAttribute(h Handle, key, value string) error {
	n := d.a.resolve(h)
	if n == nil {
		return ErrStaleHandle
	}
	if n.kind != KindElement {
		return ErrInvalidParent
	}
	if key == "id" {
		if n.id != "" {
			if existing, ok := d.idMap[n.id]; ok && existing == h {
				delete(d.idMap, n.id)
			}
		}
		n.id = value
		if value != "" {
			d.idMap[value] = h
		}
	}
	if key == "class" {
		n.classes = splitClasses(value)
	}
	if i := n.attrIndex(key); i >= 0 {
		n.attrs[i].Value = value
	} else {
		n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	}
	return nil
}

// GetAttribute returns an element's attribute value.
func (d *Document) GetAttribute(h Handle, key string) (string, bool) {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return "", false
	}
	if i := n.attrIndex(key); i >= 0 {
		return n.attrs[i].Value, true
	}
	return "", false
}

// GetElementByID performs a direct id_map lookup.
func (d *Document) GetElementByID(id string) (Handle, bool) {
	h, ok := d.idMap[id]
	return h, ok
}

// Exists reports whether h currently resolves to a live node.
func (d *Document) Exists(h Handle) bool {
	return d.a.resolve(h) != nil
}

// Kind returns the node kind behind h, or false if h is stale.
func (d *Document) Kind(h Handle) (Kind, bool) {
	n := d.a.resolve(h)
	if n == nil {
		return 0, false
	}
	return n.kind, true
}

// Tag returns an element's tag name.
func (d *Document) Tag(h Handle) (string, bool) {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return "", false
	}
	return n.tag, true
}

// Text returns a text node's content.
func (d *Document) Text(h Handle) (string, bool) {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindText {
		return "", false
	}
	return n.text, true
}

// ID returns an element's id attribute, which may be empty.
func (d *Document) ID(h Handle) string {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return ""
	}
	return n.id
}

// Classes returns an element's ordered class list.
func (d *Document) Classes(h Handle) []string {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return nil
	}
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// HasClass reports whether an element carries class c.
func (d *Document) HasClass(h Handle, c string) bool {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return false
	}
	return n.hasClass(c)
}

// Attrs returns an element's attribute list in insertion order.
func (d *Document) Attrs(h Handle) []Attr {
	n := d.a.resolve(h)
	if n == nil || n.kind != KindElement {
		return nil
	}
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Parent returns h's parent, or (NullHandle, false) for the root or a
// stale handle.
func (d *Document) Parent(h Handle) (Handle, bool) {
	n := d.a.resolve(h)
	if n == nil || n.parent.IsNull() {
		return NullHandle, false
	}
	return n.parent, true
}

// FirstChild returns h's first child, if any.
func (d *Document) FirstChild(h Handle) (Handle, bool) {
	n := d.a.resolve(h)
	if n == nil || n.firstChild.IsNull() {
		return NullHandle, false
	}
	return n.firstChild, true
}

// NextSibling returns the sibling immediately following h, if any.
func (d *Document) NextSibling(h Handle) (Handle, bool) {
	n := d.a.resolve(h)
	if n == nil || n.nextSibling.IsNull() {
		return NullHandle, false
	}
	return n.nextSibling, true
}

// PrevSibling returns the sibling immediately preceding h, if any.
func (d *Document) PrevSibling(h Handle) (Handle, bool) {
	n := d.a.resolve(h)
	if n == nil || n.prevSibling.IsNull() {
		return NullHandle, false
	}
	return n.prevSibling, true
}

// Children returns h's children in sibling order.
func (d *Document) Children(h Handle) []Handle {
	n := d.a.resolve(h)
	if n == nil {
		return nil
	}
	var out []Handle
	for ch := n.firstChild; !ch.IsNull(); {
		out = append(out, ch)
		next := d.a.resolve(ch)
		if next == nil {
			break
		}
		ch = next.nextSibling
	}
	return out
}
