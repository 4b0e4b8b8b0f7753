package script

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/veridian-labs/wisp/arena"
	"github.com/veridian-labs/wisp/cascade"
)

// Bridge wraps a Document behind single-threaded interior mutability
// and exposes the script-facing DOM/timer/console surface. It is the
// single authoritative owner of the Document for the duration of a
// script evaluation: exactly one call into it may be outstanding at
// any time.
type Bridge struct {
	mu      sync.Mutex
	doc     *arena.Document
	cache   *handleCache
	timers  *TimerQueue
	console *Console
}

// NewBridge wraps doc, logging console output to os.Stdout.
func NewBridge(doc *arena.Document) *Bridge {
	return &Bridge{
		doc:     doc,
		cache:   newHandleCache(),
		timers:  NewTimerQueue(),
		console: NewConsole(os.Stdout),
	}
}

// Console returns the bridge's console.log|warn|error surface.
func (b *Bridge) Console() *Console { return b.console }

// withLock enforces the single-borrow rule: the script runtime is
// single-threaded, so a call into the bridge must never observe
// another call already in flight (that would mean the embedder's
// interpreter re-entered the bridge from inside a bridge call, or
// called it from a second goroutine). Either is a bug in the bridge or
// its embedder, not a recoverable condition, so it panics rather than
// silently queueing or serializing around it: the idiomatic Go
// analogue of a Rust RefCell's double-mutable-borrow panic.
func (b *Bridge) withLock(fn func()) {
	if !b.mu.TryLock() {
		panic("script: borrow violation: reentrant Document access")
	}
	defer b.mu.Unlock()
	fn()
}

// GetElementByID looks up id via the Document's id_map and returns a
// cached wrapper, or nil if no element currently carries that id.
func (b *Bridge) GetElementByID(id string) *NodeHandle {
	var out *NodeHandle
	b.withLock(func() {
		h, ok := b.doc.GetElementByID(id)
		if !ok {
			return
		}
		out = b.cache.wrap(b.doc, h)
	})
	return out
}

// QuerySelector parses selector with the same grammar stylesheet
// selectors use and returns the first DFS-matching element as a
// cached wrapper, or nil if nothing matches.
func (b *Bridge) QuerySelector(sel string) (*NodeHandle, error) {
	var (
		out *NodeHandle
		err error
	)
	b.withLock(func() {
		h, ok, e := cascade.QuerySelector(b.doc, b.doc.Root(), sel)
		if e != nil {
			err = e
			return
		}
		if !ok {
			return
		}
		out = b.cache.wrap(b.doc, h)
	})
	return out, err
}

// CreateElement returns a fresh detached element wrapped as a cached
// NodeHandle.
func (b *Bridge) CreateElement(tag string) *NodeHandle {
	var out *NodeHandle
	b.withLock(func() {
		h := b.doc.CreateElement(tag, nil)
		out = b.cache.wrap(b.doc, h)
	})
	return out
}

// AppendChild forwards to the Document's append, unlinking child from
// its current siblings first if it was already attached.
func (b *Bridge) AppendChild(parent, child *NodeHandle) error {
	var err error
	b.withLock(func() {
		err = b.doc.AppendChild(parent.handle, child.handle)
	})
	return err
}

// AddEventListener registers the pair but never dispatches it: there
// is no event system in this core to fire it from, only registration
// for a host to inspect.
func (b *Bridge) AddEventListener(h *NodeHandle, event string, cb Callback) {
	b.withLock(func() {
		h.addListener(event, cb)
	})
}

// SetTimeout schedules cb to fire at now+delay and returns its id.
func (b *Bridge) SetTimeout(cb Callback, delay time.Duration) uint32 {
	var id uint32
	b.withLock(func() {
		id = b.timers.Schedule(cb, time.Now().Add(delay))
	})
	return id
}

// Pump fires every due timer, per TimerQueue.Pump, using the current
// wall-clock time.
func (b *Bridge) Pump() {
	b.withLock(func() {
		b.timers.Pump(time.Now(), b.console)
	})
}

// String is a debug helper, not part of the script-facing surface.
func (b *Bridge) String() string {
	return fmt.Sprintf("script.Bridge{pending timers: %d}", b.timers.Len())
}
