package phineas

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/phineas/collision"
)

// Broadphase returns the objects whose pairs should be checked for
// collisions this tick. Every pair of returned objects is handed to the
// game's collision World.
type Broadphase func() []any

// Game is the top-level object that owns the registry, staged mutations,
// collision world and input state, and drives them from ebiten's loop.
// It implements ebiten.Game.
type Game struct {
	cfg   Config
	log   *zap.Logger
	debug bool

	reg    *Registry
	stager Stager
	world  *collision.World
	input  *Input
	runner *ScriptRunner

	broadphase Broadphase
	fps        *FPSOverlay

	// ClearColor fills the screen before drawables are drawn. A zero Color
	// leaves the screen as ebiten provides it.
	ClearColor Color

	screenshotQueue []string

	stopped  atomic.Bool
	clock    func() time.Time
	lastTick time.Time
	ticks    uint64
}

// NewGame creates a game for cfg. A nil logger discards all output.
func NewGame(cfg Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	reg := NewRegistry()
	g := &Game{
		cfg:   cfg,
		log:   log,
		debug: cfg.Debug.Enabled,
		reg:   reg,
		world: collision.NewWorld(),
		input: NewInput(reg),
		clock: time.Now,
	}
	if cfg.Debug.ShowFPS {
		g.fps = NewFPSOverlay()
		reg.AddEntity(g.fps)
	}
	return g
}

// Registry returns the game's entity registry.
func (g *Game) Registry() *Registry { return g.reg }

// World returns the game's collision world.
func (g *Game) World() *collision.World { return g.world }

// Input returns the game's input dispatcher.
func (g *Game) Input() *Input { return g.input }

// Logger returns the game's logger.
func (g *Game) Logger() *zap.Logger { return g.log }

// Config returns the configuration the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Ticks returns the number of completed steps.
func (g *Game) Ticks() uint64 { return g.ticks }

// SetBroadphase sets the source of collision candidates checked each tick.
// Pass nil to disable per-tick collision checks.
func (g *Game) SetBroadphase(fn Broadphase) { g.broadphase = fn }

// SetScriptRunner attaches a ScriptRunner. The runner advances once per
// Update, before input is polled.
func (g *Game) SetScriptRunner(r *ScriptRunner) { g.runner = r }

// SetEntityStore sets the optional ECS bridge for input events.
func (g *Game) SetEntityStore(store EntityStore) { g.input.SetEntityStore(store) }

// SetDebugMode enables or disables per-frame stats logging.
func (g *Game) SetDebugMode(enabled bool) { g.debug = enabled }

// AddEntity stages e to be added at the start of the next tick. Safe to
// call from any goroutine and from inside listeners.
func (g *Game) AddEntity(e any) { g.stager.StageAdd(e) }

// RemoveEntity stages e to be removed at the start of the next tick.
func (g *Game) RemoveEntity(e any) { g.stager.StageRemove(e) }

// Stop ends the game loop at the next Update.
func (g *Game) Stop() { g.stopped.Store(true) }

// Update advances the script runner, polls input and steps the game.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if g.runner != nil {
		g.runner.step(g)
	}
	g.input.Poll()
	return g.Step(context.Background())
}

// Step runs one tick without touching real input: staged entity changes are
// applied, step listeners are told how many milliseconds passed since the
// previous tick, then the broad phase candidates are checked for collisions.
func (g *Game) Step(ctx context.Context) error {
	if err := g.stager.Apply(ctx, g.reg); err != nil {
		return err
	}

	now := g.clock()
	elapsed := int64(1000 / max(g.cfg.Loop.TPS, 1))
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick).Milliseconds()
	}
	g.lastTick = now

	for _, l := range g.reg.StepListeners() {
		l.OnStep(elapsed)
	}
	if g.broadphase != nil {
		g.world.EvaluateAll(g.broadphase())
	}
	g.ticks++
	return nil
}

// Draw renders every registered drawable in depth order, then captures any
// queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != (Color{}) {
		screen.Fill(g.ClearColor.RGBA())
	}

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	drawables := g.reg.Drawables()
	for _, d := range drawables {
		d.Draw(screen)
	}

	if g.debug {
		g.debugLog(debugStats{
			drawTime:  time.Since(t0),
			drawables: len(drawables),
			counts:    g.reg.Counts(),
		})
	}

	g.flushScreenshots(screen)
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens a window configured from g's Config and runs g until the window
// closes or Stop is called.
func Run(g *Game) error {
	w := g.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(g.cfg.Loop.TPS)

	g.log.Info("game starting",
		zap.String("title", w.Title),
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
		zap.Int("tps", g.cfg.Loop.TPS))

	err := ebiten.RunGame(g)
	if err != nil {
		g.log.Error("game stopped with error", zap.Error(err), zap.Uint64("ticks", g.ticks))
		return err
	}
	g.log.Info("game stopped", zap.Uint64("ticks", g.ticks))
	return nil
}
