package phineas

import "github.com/hajimehoshi/ebiten/v2"

// DefaultDepth is the depth of a drawable that has no layering preference.
const DefaultDepth = 0

// Drawable is anything that can draw itself onto the screen.
// Lower depths are drawn later, on top of higher depths.
type Drawable interface {
	Draw(screen *ebiten.Image)
	Depth() int
}

// StepListener is notified once per tick, before that tick's render pass.
type StepListener interface {
	OnStep(milliseconds int64)
}

// KeyListener receives key presses and releases.
type KeyListener interface {
	KeyPressed(e KeyEvent)
	KeyReleased(e KeyEvent)
}

// Boundable occupies an axis-aligned bounding box in screen coordinates.
type Boundable interface {
	Bounds() Rect
}

// HoverListener is told when the pointer enters or leaves its bounds.
type HoverListener interface {
	Boundable
	OnEnter()
	OnLeave()
}

// ClickListener receives left button presses and releases inside its bounds.
// Coordinates are relative to the top-left corner of the bounds.
type ClickListener interface {
	Boundable
	OnLeftDown(relX, relY float64)
	OnLeftRelease(relX, relY float64)
}

// GlobalClickListener receives every left button press and release, wherever
// it happens. Coordinates are absolute.
type GlobalClickListener interface {
	OnGlobalLeftDown(x, y float64)
	OnGlobalLeftRelease(x, y float64)
}

// GlobalMoveListener receives every pointer movement.
type GlobalMoveListener interface {
	OnMouseMove(x, y float64)
}

// ScrollListener receives wheel movement in notches; negative is up.
type ScrollListener interface {
	OnWheelMove(notches int)
}

// Compound is an entity made of other entities. Adding or removing a
// compound adds or removes each of its components (recursively) before the
// compound's own capabilities.
type Compound interface {
	Components() []any
}
