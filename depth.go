package phineas

import "github.com/hajimehoshi/ebiten/v2"

// depthHandle wraps a registered drawable with the depth it had at
// registration and a registry-wide sequence number. Handles are totally
// ordered: higher depth first, then registration order.
type depthHandle struct {
	drawable Drawable
	depth    int
	seq      uint64
}

// Draw forwards to the wrapped drawable.
func (h depthHandle) Draw(screen *ebiten.Image) {
	h.drawable.Draw(screen)
}

// Depth returns the depth captured at registration.
func (h depthHandle) Depth() int {
	return h.depth
}

// compareHandles orders a before b when a must be drawn first.
// Two handles compare equal only if they carry the same sequence number.
func compareHandles(a, b depthHandle) int {
	switch {
	case a.depth > b.depth:
		return -1
	case a.depth < b.depth:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}
