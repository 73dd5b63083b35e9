package phineas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshMillis is how often the overlay text is redrawn.
const fpsRefreshMillis = 500

// FPSOverlay displays the current FPS and TPS in the top-left corner. It is
// both a Drawable, drawn above everything else, and a StepListener that
// refreshes its text roughly twice a second.
type FPSOverlay struct {
	X, Y float64

	img     *ebiten.Image
	elapsed int64
	dirty   bool
}

// NewFPSOverlay creates an overlay at the top-left corner of the screen.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{dirty: true}
}

// OnStep schedules a redraw once enough time has passed.
func (o *FPSOverlay) OnStep(milliseconds int64) {
	o.elapsed += milliseconds
	if o.elapsed < fpsRefreshMillis {
		return
	}
	o.elapsed = 0
	o.dirty = true
}

// Depth places the overlay above every other drawable.
func (o *FPSOverlay) Depth() int { return math.MinInt32 }

// Draw renders the cached FPS text, redrawing it first if it is stale.
func (o *FPSOverlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(o.img, op)
}
