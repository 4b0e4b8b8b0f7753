package arena

import "fmt"

// Handle is an opaque, generational reference into an Arena. The zero
// Handle is never issued by the arena and denotes "no node."
type Handle struct {
	slot uint32
	gen  uint32
}

// NullHandle is the handle value denoting "no node." It is never equal
// to a Handle returned from Create*.
var NullHandle = Handle{}

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

func (h Handle) String() string {
	if h.IsNull() {
		return "<null>"
	}
	return fmt.Sprintf("#%d.%d", h.slot, h.gen)
}
