package phineas

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size of the font returned by DefaultFont.
const DefaultFontSize = 12

// --- Font ---

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := LoadFont(goregular.TTF, DefaultFontSize)
	if err != nil {
		panic("phineas: embedded Go Regular font: " + err.Error())
	}
	return f
})

// DefaultFont returns Go Regular at DefaultFontSize. It is loaded on first
// use and shared.
func DefaultFont() *Font { return defaultFont() }

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Measure returns the width and height of s rendered in f.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace { return f.face }

// --- Text ---

// Text is a single block of colored text anchored at its top-left corner.
// Newlines start a new line. It is Drawable, Boundable and Placeable.
type Text struct {
	X, Y    float64
	Content string
	Color   Color
	Font    *Font // nil uses DefaultFont
	Layer   int
}

// NewText creates text at (x, y) in the default font at DefaultDepth.
func NewText(x, y float64, content string, c Color) *Text {
	return &Text{X: x, Y: y, Content: content, Color: c, Layer: DefaultDepth}
}

func (t *Text) font() *Font {
	if t.Font != nil {
		return t.Font
	}
	return DefaultFont()
}

// Draw renders the text on screen.
func (t *Text) Draw(screen *ebiten.Image) {
	if t.Content == "" {
		return
	}
	f := t.font()
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(t.Color.RGBA())
	op.LineSpacing = f.lh
	text.Draw(screen, t.Content, f.face, op)
}

// Depth returns the text's Layer.
func (t *Text) Depth() int { return t.Layer }

// Bounds returns the area covered by the rendered text.
func (t *Text) Bounds() Rect {
	w, h := t.font().Measure(t.Content)
	return Rect{X: t.X, Y: t.Y, Width: w, Height: h}
}

// Position returns the top-left corner.
func (t *Text) Position() Vec2 { return Vec2{t.X, t.Y} }

// SetPosition moves the top-left corner to (x, y).
func (t *Text) SetPosition(x, y float64) { t.X, t.Y = x, y }
