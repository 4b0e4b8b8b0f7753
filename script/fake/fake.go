/*
Package fake is a tiny in-tree test double for script.Runtime/
script.Value/script.Callback: script's own tests need *some*
interpreter to drive TimerQueue/Bridge through, and a real ECMAScript
engine is out of scope, so this package stands in for one.

License

Governed by a 3-Clause BSD license, in the lineage of
github.com/npillmayer/fp.
*/
package fake

import "github.com/veridian-labs/wisp/script"

// Runtime is a no-op script.Runtime: it boxes a *script.NodeHandle as
// a script.Value by returning it unchanged, since this fake has no
// script-level object model of its own to box into.
type Runtime struct{}

var _ script.Runtime = Runtime{}

func (Runtime) WrapNode(n *script.NodeHandle) script.Value { return n }

// Callback is a script.Callback backed by a plain Go closure, plus a
// call counter so tests can assert how many times (and in what order,
// via a shared log) a timer or listener actually fired.
type Callback struct {
	fn    func() error
	Calls int
}

var _ script.Callback = &Callback{}

// NewCallback wraps fn as a script.Callback.
func NewCallback(fn func() error) *Callback {
	return &Callback{fn: fn}
}

func (c *Callback) Invoke() error {
	c.Calls++
	if c.fn == nil {
		return nil
	}
	return c.fn()
}
