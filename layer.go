package phineas

import (
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Placeable is anything with a position that can be moved.
type Placeable interface {
	Position() Vec2
	SetPosition(x, y float64)
}

// --- MoveableLayer ---

// MoveableLayer moves a set of Placeables together, for example a scrolling
// background or a panel of widgets. It only tracks membership; add the
// members to the game separately. Safe for concurrent use.
type MoveableLayer struct {
	mu       sync.Mutex
	contents []Placeable
}

// NewMoveableLayer creates a layer holding items.
func NewMoveableLayer(items ...Placeable) *MoveableLayer {
	l := &MoveableLayer{}
	for _, p := range items {
		l.Add(p)
	}
	return l
}

// Add puts p in the layer. It panics if p is nil or its dynamic type is not
// comparable.
func (l *MoveableLayer) Add(p Placeable) {
	if p == nil {
		panic("phineas: cannot add nil placeable")
	}
	mustComparable(p)
	l.mu.Lock()
	l.contents = append(l.contents, p)
	l.mu.Unlock()
}

// Remove takes the first occurrence of p out of the layer. Reports whether
// p was found.
func (l *MoveableLayer) Remove(p Placeable) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	var ok bool
	l.contents, ok = removeFirst(l.contents, p)
	return ok
}

// Len returns the number of members.
func (l *MoveableLayer) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.contents)
}

// Move shifts every member by (dx, dy).
func (l *MoveableLayer) Move(dx, dy float64) {
	l.mu.Lock()
	members := slices.Clone(l.contents)
	l.mu.Unlock()
	for _, p := range members {
		pos := p.Position()
		p.SetPosition(pos.X+dx, pos.Y+dy)
	}
}

// MoveX shifts every member horizontally by dx.
func (l *MoveableLayer) MoveX(dx float64) { l.Move(dx, 0) }

// MoveY shifts every member vertically by dy.
func (l *MoveableLayer) MoveY(dy float64) { l.Move(0, dy) }

// --- CompoundDrawable ---

// CompoundDrawable draws several drawables as one unit at a single depth,
// in the order they were added. The parts are not registered on their own;
// use a Compound entity for that instead.
type CompoundDrawable struct {
	Layer int
	parts []Drawable
}

// NewCompoundDrawable creates a compound drawable at DefaultDepth.
func NewCompoundDrawable(parts ...Drawable) *CompoundDrawable {
	return &CompoundDrawable{Layer: DefaultDepth, parts: parts}
}

// Add appends d to the parts.
func (c *CompoundDrawable) Add(d Drawable) {
	if d == nil {
		panic("phineas: cannot add nil drawable")
	}
	mustComparable(d)
	c.parts = append(c.parts, d)
}

// Remove drops the first occurrence of d. Reports whether d was found.
func (c *CompoundDrawable) Remove(d Drawable) bool {
	var ok bool
	c.parts, ok = removeFirst(c.parts, d)
	return ok
}

// Parts returns the parts in draw order. The returned slice MUST NOT be
// mutated.
func (c *CompoundDrawable) Parts() []Drawable { return c.parts }

// Draw draws each part in order.
func (c *CompoundDrawable) Draw(screen *ebiten.Image) {
	for _, d := range c.parts {
		d.Draw(screen)
	}
}

// Depth returns the compound's Layer. The parts' own depths are ignored.
func (c *CompoundDrawable) Depth() int { return c.Layer }
