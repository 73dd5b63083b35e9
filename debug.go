package phineas

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and registry metrics.
// Only populated when debug mode is on.
type debugStats struct {
	drawTime  time.Duration
	drawables int
	counts    Counts
}

// debugLog writes frame stats to the game's logger.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	g.log.Info("frame",
		zap.Uint64("tick", g.ticks),
		zap.Duration("draw", stats.drawTime),
		zap.Int("drawables", stats.drawables),
		zap.Int("step_listeners", stats.counts.Steps),
		zap.Int("key_listeners", stats.counts.Keys),
		zap.Int("hover_listeners", stats.counts.Hovers),
		zap.Int("click_listeners", stats.counts.Clicks+stats.counts.GlobalClicks),
		zap.Int("collision_buckets", len(g.world.Buckets())))
}
