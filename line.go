package phineas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Line is a straight stroked segment between two points. It is Drawable,
// Boundable and Placeable.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float32 // stroke width in pixels
	Color          Color
	Layer          int
}

// NewLine creates a 1px line from (x1, y1) to (x2, y2) at DefaultDepth.
func NewLine(x1, y1, x2, y2 float64, c Color) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: 1, Color: c, Layer: DefaultDepth}
}

// Draw strokes the segment on screen.
func (l *Line) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen,
		float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
		l.Width, l.Color.RGBA(), true)
}

// Depth returns the line's Layer.
func (l *Line) Depth() int { return l.Layer }

// Bounds returns the smallest rectangle containing both end points.
// Horizontal and vertical lines have a zero height or width.
func (l *Line) Bounds() Rect {
	x, y := min(l.X1, l.X2), min(l.Y1, l.Y2)
	return Rect{X: x, Y: y, Width: max(l.X1, l.X2) - x, Height: max(l.Y1, l.Y2) - y}
}

// Position returns the top-left corner of the line's bounds.
func (l *Line) Position() Vec2 {
	return Vec2{min(l.X1, l.X2), min(l.Y1, l.Y2)}
}

// SetPosition translates both end points so the bounds' top-left corner is
// at (x, y).
func (l *Line) SetPosition(x, y float64) {
	p := l.Position()
	dx, dy := x-p.X, y-p.Y
	l.X1 += dx
	l.X2 += dx
	l.Y1 += dy
	l.Y2 += dy
}
