package phineas

import "sync/atomic"

// HoverTracker wraps a HoverListener and remembers whether the pointer is
// currently inside it, so the listener only hears about transitions.
type HoverTracker struct {
	listener HoverListener
	inside   atomic.Bool
}

// NewHoverTracker returns a tracker for l that starts outside.
func NewHoverTracker(l HoverListener) *HoverTracker {
	if l == nil {
		panic("phineas: cannot track nil hover listener")
	}
	return &HoverTracker{listener: l}
}

// Listener returns the wrapped listener.
func (t *HoverTracker) Listener() HoverListener { return t.listener }

// Inside reports whether the pointer was last reported inside.
func (t *HoverTracker) Inside() bool { return t.inside.Load() }

// ReportMouseIn calls OnEnter if the pointer was outside. Repeated reports
// are ignored.
func (t *HoverTracker) ReportMouseIn() {
	if t.inside.CompareAndSwap(false, true) {
		t.listener.OnEnter()
	}
}

// ReportMouseOut calls OnLeave if the pointer was inside. Repeated reports
// are ignored.
func (t *HoverTracker) ReportMouseOut() {
	if t.inside.CompareAndSwap(true, false) {
		t.listener.OnLeave()
	}
}

// Check reports the pointer position (x, y) against the listener's current
// bounds.
func (t *HoverTracker) Check(x, y float64) {
	if t.listener.Bounds().Contains(x, y) {
		t.ReportMouseIn()
	} else {
		t.ReportMouseOut()
	}
}
