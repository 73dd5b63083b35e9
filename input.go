package phineas

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EntityStore is the interface for optional ECS integration.
// When set, every input event dispatched by Input is forwarded to the store.
type EntityStore interface {
	EmitEvent(event InputEvent)
}

// InputEvent is one pointer, key or wheel event.
type InputEvent struct {
	Type      EventType
	X, Y      float64     // pointer position; valid for pointer events
	Button    MouseButton // valid for EventPointerDown and EventPointerUp
	Key       ebiten.Key  // valid for EventKeyDown and EventKeyUp
	Modifiers KeyModifiers
	Notches   int // valid for EventWheel; negative is up
}

// Input routes input events to the listeners currently in a Registry.
//
// Every dispatch reads one registry snapshot per listener category, so
// listeners added or removed by a callback take effect on the next event.
type Input struct {
	reg   *Registry
	store EntityStore

	mu    sync.Mutex
	queue []InputEvent // injected, consumed one per Poll

	hasPos       bool
	lastX, lastY float64
	wheelAccum   float64
	keyBuf       []ebiten.Key
}

// NewInput creates a dispatcher delivering to the listeners in reg.
func NewInput(reg *Registry) *Input {
	if reg == nil {
		panic("phineas: nil registry")
	}
	return &Input{reg: reg}
}

// SetEntityStore sets the optional ECS bridge. Pass nil to detach it.
func (in *Input) SetEntityStore(store EntityStore) {
	in.store = store
}

// Dispatch delivers e to the matching listeners.
//
// Pointer moves go to global move listeners and then to hover trackers.
// Left button presses and releases go to global click listeners with
// absolute coordinates, then to each click listener whose bounds contain
// the point, with coordinates relative to the bounds origin. Other buttons
// reach only the entity store.
func (in *Input) Dispatch(e InputEvent) {
	switch e.Type {
	case EventPointerMove:
		in.lastX, in.lastY, in.hasPos = e.X, e.Y, true
		for _, l := range in.reg.GlobalMoveListeners() {
			l.OnMouseMove(e.X, e.Y)
		}
		for _, t := range in.reg.HoverTrackers() {
			t.Check(e.X, e.Y)
		}
	case EventPointerDown:
		if e.Button == MouseButtonLeft {
			for _, l := range in.reg.GlobalClickListeners() {
				l.OnGlobalLeftDown(e.X, e.Y)
			}
			for _, l := range in.reg.ClickListeners() {
				if b := l.Bounds(); b.Contains(e.X, e.Y) {
					l.OnLeftDown(e.X-b.X, e.Y-b.Y)
				}
			}
		}
	case EventPointerUp:
		if e.Button == MouseButtonLeft {
			for _, l := range in.reg.GlobalClickListeners() {
				l.OnGlobalLeftRelease(e.X, e.Y)
			}
			for _, l := range in.reg.ClickListeners() {
				if b := l.Bounds(); b.Contains(e.X, e.Y) {
					l.OnLeftRelease(e.X-b.X, e.Y-b.Y)
				}
			}
		}
	case EventKeyDown:
		ke := KeyEvent{Key: e.Key, Modifiers: e.Modifiers}
		for _, l := range in.reg.KeyListeners() {
			l.KeyPressed(ke)
		}
	case EventKeyUp:
		ke := KeyEvent{Key: e.Key, Modifiers: e.Modifiers}
		for _, l := range in.reg.KeyListeners() {
			l.KeyReleased(ke)
		}
	case EventWheel:
		if e.Notches == 0 {
			return
		}
		for _, l := range in.reg.ScrollListeners() {
			l.OnWheelMove(e.Notches)
		}
	}
	if in.store != nil {
		in.store.EmitEvent(e)
	}
}

// dispatchPointer delivers a press or release, preceded by a move if the
// pointer is not already at the event position.
func (in *Input) dispatchPointer(e InputEvent) {
	if !in.hasPos || e.X != in.lastX || e.Y != in.lastY {
		in.Dispatch(InputEvent{Type: EventPointerMove, X: e.X, Y: e.Y, Modifiers: e.Modifiers})
	}
	in.Dispatch(e)
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

var polledButtons = [...]struct {
	eb ebiten.MouseButton
	mb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Poll reads this tick's input state from ebiten and dispatches it. If a
// synthetic event is queued, exactly one is consumed instead and real
// pointer, key and wheel input is skipped for the tick. Must be called from
// the game's Update.
func (in *Input) Poll() {
	if in.processInjected() {
		return
	}
	mods := readModifiers()

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !in.hasPos || x != in.lastX || y != in.lastY {
		in.Dispatch(InputEvent{Type: EventPointerMove, X: x, Y: y, Modifiers: mods})
	}
	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			in.Dispatch(InputEvent{Type: EventPointerDown, X: x, Y: y, Button: b.mb, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			in.Dispatch(InputEvent{Type: EventPointerUp, X: x, Y: y, Button: b.mb, Modifiers: mods})
		}
	}

	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.Dispatch(InputEvent{Type: EventKeyDown, Key: k, Modifiers: mods})
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.Dispatch(InputEvent{Type: EventKeyUp, Key: k, Modifiers: mods})
	}

	// ebiten reports wheel-up as positive; listeners expect negative.
	_, dy := ebiten.Wheel()
	if n := in.accumulateWheel(-dy); n != 0 {
		in.Dispatch(InputEvent{Type: EventWheel, X: x, Y: y, Notches: n, Modifiers: mods})
	}
}

// accumulateWheel adds a fractional wheel delta and returns the whole
// notches it completes. Trackpads report sub-notch deltas.
func (in *Input) accumulateWheel(delta float64) int {
	in.wheelAccum += delta
	n := int(in.wheelAccum)
	in.wheelAccum -= float64(n)
	return n
}
