package script

import (
	"runtime"
	"sync"

	"github.com/veridian-labs/wisp/arena"
)

// NodeHandle is the script-visible wrapper over one arena node, a
// small w3cdom-shaped facade over the arena's raw Handle. Repeated
// lookups of the same underlying node must hand back the identical
// wrapper as long as it is still reachable from script; handleCache
// is what makes that true.
type NodeHandle struct {
	doc       *arena.Document
	handle    arena.Handle
	listeners map[string][]Callback
}

// Handle returns the underlying arena handle, for bridge-internal use.
func (n *NodeHandle) Handle() arena.Handle { return n.handle }

// TagName returns the element's tag name, or "" for a text node.
func (n *NodeHandle) TagName() string {
	tag, _ := n.doc.Tag(n.handle)
	return tag
}

// GetAttribute returns an attribute's value and whether it is set.
func (n *NodeHandle) GetAttribute(key string) (string, bool) {
	return n.doc.GetAttribute(n.handle, key)
}

// SetAttribute sets an attribute's value, going through the same
// id_map-maintaining path as every other caller of Document.
func (n *NodeHandle) SetAttribute(key, value string) error {
	return n.doc.SetAttribute(n.handle, key, value)
}

// RemoveChild detaches child and iteratively frees its subtree.
func (n *NodeHandle) RemoveChild(child *NodeHandle) error {
	return n.doc.RemoveNode(child.handle)
}

// addListener registers cb for event without dispatching it. Callers
// must already hold the owning Bridge's lock.
func (n *NodeHandle) addListener(event string, cb Callback) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Callback)
	}
	n.listeners[event] = append(n.listeners[event], cb)
}

// Listeners returns the callbacks registered for event, in
// registration order. Exposed so a host or test can confirm
// registration happened, since this package never fires them itself.
func (n *NodeHandle) Listeners(event string) []Callback {
	return n.listeners[event]
}

// cacheEntry pairs a live wrapper with the epoch it was minted under,
// so a cleanup firing for a since-replaced wrapper can tell it is
// stale instead of evicting a newer entry out from under it.
type cacheEntry struct {
	wrapper *NodeHandle
	epoch   uint64
}

type cleanupArg struct {
	handle arena.Handle
	epoch  uint64
}

// handleCache maps an arena.Handle to its single live NodeHandle
// wrapper, evicting entries via runtime.AddCleanup when the script
// heap drops the last reference to a wrapper. The cleanup below only
// ever deletes a map entry; it must never reach into the arena itself,
// since wrapper finalization must not delete arena nodes, or new
// allocations reusing a freed slot+generation would corrupt a stale
// wrapper's view of it.
type handleCache struct {
	mu      sync.Mutex
	entries map[arena.Handle]cacheEntry
	epoch   uint64
}

func newHandleCache() *handleCache {
	return &handleCache{entries: make(map[arena.Handle]cacheEntry)}
}

// wrap returns the cached wrapper for h, minting and registering one
// if none is currently live.
func (c *handleCache) wrap(doc *arena.Document, h arena.Handle) *NodeHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[h]; ok {
		return e.wrapper
	}
	c.epoch++
	epoch := c.epoch
	nh := &NodeHandle{doc: doc, handle: h}
	c.entries[h] = cacheEntry{wrapper: nh, epoch: epoch}
	runtime.AddCleanup(nh, c.evict, cleanupArg{handle: h, epoch: epoch})
	return nh
}

func (c *handleCache) evict(arg cleanupArg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[arg.handle]; ok && e.epoch == arg.epoch {
		delete(c.entries, arg.handle)
	}
}
