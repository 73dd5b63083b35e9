package phineas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Box is a solid-color rectangle. It is Drawable, Boundable and Placeable.
type Box struct {
	X, Y, Width, Height float64
	Color               Color
	Layer               int // depth; lower draws on top
}

// NewBox creates a box at (x, y) with the given size and color at
// DefaultDepth.
func NewBox(x, y, w, h float64, c Color) *Box {
	return &Box{X: x, Y: y, Width: w, Height: h, Color: c, Layer: DefaultDepth}
}

// Draw fills the box's rectangle on screen.
func (b *Box) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		b.Color.RGBA(), false)
}

// Depth returns the box's Layer.
func (b *Box) Depth() int { return b.Layer }

// Bounds returns the box's rectangle in screen coordinates.
func (b *Box) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Center returns the center point of the box.
func (b *Box) Center() Vec2 {
	return Vec2{b.X + b.Width/2, b.Y + b.Height/2}
}

// Position returns the top-left corner.
func (b *Box) Position() Vec2 { return Vec2{b.X, b.Y} }

// SetPosition moves the top-left corner to (x, y).
func (b *Box) SetPosition(x, y float64) { b.X, b.Y = x, y }
