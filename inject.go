package phineas

import "github.com/hajimehoshi/ebiten/v2"

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Poll.
func (in *Input) InjectMove(x, y float64) {
	in.enqueue(InputEvent{Type: EventPointerMove, X: x, Y: y})
}

// InjectPress queues a left button press at (x, y).
func (in *Input) InjectPress(x, y float64) {
	in.enqueue(InputEvent{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left button release at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.enqueue(InputEvent{Type: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectKey queues a press and release of key with the given modifiers.
// Consumes two ticks.
func (in *Input) InjectKey(key ebiten.Key, mods KeyModifiers) {
	in.enqueue(InputEvent{Type: EventKeyDown, Key: key, Modifiers: mods})
	in.enqueue(InputEvent{Type: EventKeyUp, Key: key, Modifiers: mods})
}

// InjectScroll queues a wheel movement of notches; negative is up.
func (in *Input) InjectScroll(notches int) {
	in.enqueue(InputEvent{Type: EventWheel, Notches: notches})
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

func (in *Input) enqueue(e InputEvent) {
	in.mu.Lock()
	in.queue = append(in.queue, e)
	in.mu.Unlock()
}

// processInjected pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input should be skipped).
func (in *Input) processInjected() bool {
	in.mu.Lock()
	if len(in.queue) == 0 {
		in.mu.Unlock()
		return false
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	in.mu.Unlock()

	switch evt.Type {
	case EventPointerDown, EventPointerUp:
		in.dispatchPointer(evt)
	case EventWheel:
		evt.X, evt.Y = in.lastX, in.lastY
		in.Dispatch(evt)
	default:
		in.Dispatch(evt)
	}
	return true
}
