package phineas

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBarrierInterrupted is returned when a caller gives up waiting for the
// registry write barrier. Nothing the caller asked for has been applied.
var ErrBarrierInterrupted = errors.New("phineas: registry barrier interrupted")

// registryState is one immutable generation of the registry. Slices are
// never written after the state is published; writers build a new state.
type registryState struct {
	handles      []depthHandle // sorted by compareHandles
	drawables    []Drawable    // handles' drawables, same order
	steps        []StepListener
	keys         []KeyListener
	hovers       []*HoverTracker
	clicks       []ClickListener
	globalClicks []GlobalClickListener
	moves        []GlobalMoveListener
	scrolls      []ScrollListener
}

// Counts reports how many entries each registry collection holds.
type Counts struct {
	Drawables    int
	Steps        int
	Keys         int
	Hovers       int
	Clicks       int
	GlobalClicks int
	GlobalMoves  int
	Scrolls      int
}

// Registry owns every drawable and listener of a running game.
//
// Reads return immutable snapshots and never block: a caller iterating a
// snapshot is unaffected by writers. Writers are serialized by a barrier and
// publish a complete new generation at once, so a reader sees each entity
// fully present or fully absent. The registry holds references only; it
// never creates or destroys entities.
type Registry struct {
	state   atomic.Pointer[registryState]
	barrier *semaphore.Weighted
	seq     uint64 // guarded by barrier
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{barrier: semaphore.NewWeighted(1)}
	r.state.Store(&registryState{})
	return r
}

// Apply runs fn with exclusive write access and publishes its changes as a
// single generation. If ctx ends while waiting for the barrier, Apply
// returns an error wrapping ErrBarrierInterrupted and fn is not called.
//
// fn must make its changes through b only; calling the Registry's own write
// methods from fn deadlocks.
func (r *Registry) Apply(ctx context.Context, fn func(b *Batch)) error {
	if err := r.barrier.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrBarrierInterrupted, err)
	}
	defer r.barrier.Release(1)

	b := &Batch{reg: r, st: *r.state.Load()}
	defer func() { b.reg = nil }()
	fn(b)
	if b.dirty == 0 {
		return nil
	}
	if b.dirty&ownDrawables != 0 {
		b.st.drawables = make([]Drawable, len(b.st.handles))
		for i, h := range b.st.handles {
			b.st.drawables[i] = h.drawable
		}
	}
	st := b.st
	r.state.Store(&st)
	return nil
}

func (r *Registry) update(fn func(b *Batch)) {
	// Background never ends, so the barrier cannot be interrupted.
	_ = r.Apply(context.Background(), fn)
}

// --- Snapshots ---

// Drawables returns the registered drawables in render order: highest depth
// first, equal depths in registration order. The returned slice MUST NOT be
// mutated.
func (r *Registry) Drawables() []Drawable {
	return r.state.Load().drawables
}

// StepListeners returns the step listeners in registration order. The
// returned slice MUST NOT be mutated.
func (r *Registry) StepListeners() []StepListener {
	return r.state.Load().steps
}

// KeyListeners returns the key listeners. The returned slice MUST NOT be
// mutated.
func (r *Registry) KeyListeners() []KeyListener {
	return r.state.Load().keys
}

// HoverTrackers returns the hover listeners wrapped in their trackers. The
// returned slice MUST NOT be mutated.
func (r *Registry) HoverTrackers() []*HoverTracker {
	return r.state.Load().hovers
}

// HoverListeners returns the unwrapped hover listeners.
func (r *Registry) HoverListeners() []HoverListener {
	hovers := r.state.Load().hovers
	out := make([]HoverListener, len(hovers))
	for i, h := range hovers {
		out[i] = h.Listener()
	}
	return out
}

// ClickListeners returns the click listeners. The returned slice MUST NOT
// be mutated.
func (r *Registry) ClickListeners() []ClickListener {
	return r.state.Load().clicks
}

// GlobalClickListeners returns the global click listeners. The returned
// slice MUST NOT be mutated.
func (r *Registry) GlobalClickListeners() []GlobalClickListener {
	return r.state.Load().globalClicks
}

// GlobalMoveListeners returns the global pointer movement listeners. The
// returned slice MUST NOT be mutated.
func (r *Registry) GlobalMoveListeners() []GlobalMoveListener {
	return r.state.Load().moves
}

// ScrollListeners returns the wheel listeners. The returned slice MUST NOT
// be mutated.
func (r *Registry) ScrollListeners() []ScrollListener {
	return r.state.Load().scrolls
}

// Counts returns the size of every collection in one consistent generation.
func (r *Registry) Counts() Counts {
	st := r.state.Load()
	return Counts{
		Drawables:    len(st.handles),
		Steps:        len(st.steps),
		Keys:         len(st.keys),
		Hovers:       len(st.hovers),
		Clicks:       len(st.clicks),
		GlobalClicks: len(st.globalClicks),
		GlobalMoves:  len(st.moves),
		Scrolls:      len(st.scrolls),
	}
}

// Clear removes every entity from the registry.
func (r *Registry) Clear() {
	r.update(func(b *Batch) {
		b.st = registryState{}
		b.dirty = ownAll
	})
}

// --- Immediate writes ---

// AddDrawable registers d for rendering. Adding a drawable that is already
// registered is a no-op. The depth is read once, here. Entities are
// identified with ==, so d's dynamic type must be comparable; AddDrawable
// panics otherwise.
func (r *Registry) AddDrawable(d Drawable) { r.update(func(b *Batch) { b.AddDrawable(d) }) }

// RemoveDrawable unregisters d. Removing an unknown drawable is a no-op.
func (r *Registry) RemoveDrawable(d Drawable) { r.update(func(b *Batch) { b.RemoveDrawable(d) }) }

// Redepth re-reads d's depth and moves it to its new place in render order.
// Reports false if d is not registered.
func (r *Registry) Redepth(d Drawable) bool {
	var ok bool
	r.update(func(b *Batch) { ok = b.Redepth(d) })
	return ok
}

// AttachStepListener registers l for step notifications.
func (r *Registry) AttachStepListener(l StepListener) {
	r.update(func(b *Batch) { b.AttachStepListener(l) })
}

// DetachStepListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachStepListener(l StepListener) {
	r.update(func(b *Batch) { b.DetachStepListener(l) })
}

// AttachKeyListener registers l for key events.
func (r *Registry) AttachKeyListener(l KeyListener) {
	r.update(func(b *Batch) { b.AttachKeyListener(l) })
}

// DetachKeyListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachKeyListener(l KeyListener) {
	r.update(func(b *Batch) { b.DetachKeyListener(l) })
}

// AttachHoverListener wraps l in a HoverTracker and registers it.
func (r *Registry) AttachHoverListener(l HoverListener) {
	r.update(func(b *Batch) { b.AttachHoverListener(l) })
}

// DetachHoverListener removes every tracker wrapping l.
func (r *Registry) DetachHoverListener(l HoverListener) {
	r.update(func(b *Batch) { b.DetachHoverListener(l) })
}

// AttachClickListener registers l for click events inside its bounds.
func (r *Registry) AttachClickListener(l ClickListener) {
	r.update(func(b *Batch) { b.AttachClickListener(l) })
}

// DetachClickListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachClickListener(l ClickListener) {
	r.update(func(b *Batch) { b.DetachClickListener(l) })
}

// AttachGlobalClickListener registers l for every click.
func (r *Registry) AttachGlobalClickListener(l GlobalClickListener) {
	r.update(func(b *Batch) { b.AttachGlobalClickListener(l) })
}

// DetachGlobalClickListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachGlobalClickListener(l GlobalClickListener) {
	r.update(func(b *Batch) { b.DetachGlobalClickListener(l) })
}

// AttachGlobalMoveListener registers l for every pointer movement.
func (r *Registry) AttachGlobalMoveListener(l GlobalMoveListener) {
	r.update(func(b *Batch) { b.AttachGlobalMoveListener(l) })
}

// DetachGlobalMoveListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachGlobalMoveListener(l GlobalMoveListener) {
	r.update(func(b *Batch) { b.DetachGlobalMoveListener(l) })
}

// AttachScrollListener registers l for wheel events.
func (r *Registry) AttachScrollListener(l ScrollListener) {
	r.update(func(b *Batch) { b.AttachScrollListener(l) })
}

// DetachScrollListener unregisters l. Unknown listeners are ignored.
func (r *Registry) DetachScrollListener(l ScrollListener) {
	r.update(func(b *Batch) { b.DetachScrollListener(l) })
}

// AddEntity registers e under every capability it implements. Compound
// components are added first. Like every Add and Attach method, it panics if
// e's dynamic type is not comparable.
func (r *Registry) AddEntity(e any) { r.update(func(b *Batch) { b.AddEntity(e) }) }

// RemoveEntity unregisters e from every capability it implements. Compound
// components are removed first.
func (r *Registry) RemoveEntity(e any) { r.update(func(b *Batch) { b.RemoveEntity(e) }) }

// --- Batch ---

const (
	ownDrawables uint16 = 1 << iota
	ownSteps
	ownKeys
	ownHovers
	ownClicks
	ownGlobalClicks
	ownMoves
	ownScrolls

	ownAll = ownDrawables | ownSteps | ownKeys | ownHovers | ownClicks | ownGlobalClicks | ownMoves | ownScrolls
)

// Batch is the write view handed to Registry.Apply. All changes made
// through one Batch become visible together. A Batch must not be used after
// its Apply call returns.
type Batch struct {
	reg   *Registry
	st    registryState
	dirty uint16 // collections already copied for this batch
}

// own makes the collection identified by bit private to this batch before
// its first write, so published generations are never mutated.
func own[T any](b *Batch, bit uint16, s []T) []T {
	if b.reg == nil {
		panic("phineas: batch used after Apply returned")
	}
	if b.dirty&bit != 0 {
		return s
	}
	b.dirty |= bit
	return slices.Clone(s)
}

// mustComparable panics unless v's dynamic type supports ==, which every
// registry lookup relies on.
func mustComparable(v any) {
	if t := reflect.TypeOf(v); t != nil && !t.Comparable() {
		panic(fmt.Sprintf("phineas: entity of type %s is not comparable; register a pointer instead", t))
	}
}

func removeFirst[T comparable](s []T, v T) ([]T, bool) {
	i := slices.Index(s, v)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// AddDrawable inserts d in render order. No-op if d is already present.
func (b *Batch) AddDrawable(d Drawable) {
	if d == nil {
		panic("phineas: cannot add nil drawable")
	}
	mustComparable(d)
	if b.indexOf(d) >= 0 {
		return
	}
	b.reg.seq++
	h := depthHandle{drawable: d, depth: d.Depth(), seq: b.reg.seq}
	b.st.handles = own(b, ownDrawables, b.st.handles)
	i, _ := slices.BinarySearchFunc(b.st.handles, h, compareHandles)
	b.st.handles = slices.Insert(b.st.handles, i, h)
}

// RemoveDrawable removes d. No-op if d is not present.
func (b *Batch) RemoveDrawable(d Drawable) {
	i := b.indexOf(d)
	if i < 0 {
		return
	}
	b.st.handles = own(b, ownDrawables, b.st.handles)
	b.st.handles = slices.Delete(b.st.handles, i, i+1)
}

// Redepth re-reads d's depth and reinserts it. The drawable keeps its
// registration sequence, so it stays ordered among equal depths.
func (b *Batch) Redepth(d Drawable) bool {
	i := b.indexOf(d)
	if i < 0 {
		return false
	}
	h := b.st.handles[i]
	h.depth = d.Depth()
	b.st.handles = own(b, ownDrawables, b.st.handles)
	b.st.handles = slices.Delete(b.st.handles, i, i+1)
	j, _ := slices.BinarySearchFunc(b.st.handles, h, compareHandles)
	b.st.handles = slices.Insert(b.st.handles, j, h)
	return true
}

func (b *Batch) indexOf(d Drawable) int {
	return slices.IndexFunc(b.st.handles, func(h depthHandle) bool { return h.drawable == d })
}

// AttachStepListener appends l.
func (b *Batch) AttachStepListener(l StepListener) {
	mustComparable(l)
	b.st.steps = append(own(b, ownSteps, b.st.steps), l)
}

// DetachStepListener removes the first registration of l.
func (b *Batch) DetachStepListener(l StepListener) {
	if slices.Contains(b.st.steps, l) {
		b.st.steps, _ = removeFirst(own(b, ownSteps, b.st.steps), l)
	}
}

// AttachKeyListener appends l.
func (b *Batch) AttachKeyListener(l KeyListener) {
	mustComparable(l)
	b.st.keys = append(own(b, ownKeys, b.st.keys), l)
}

// DetachKeyListener removes the first registration of l.
func (b *Batch) DetachKeyListener(l KeyListener) {
	if slices.Contains(b.st.keys, l) {
		b.st.keys, _ = removeFirst(own(b, ownKeys, b.st.keys), l)
	}
}

// AttachHoverListener wraps l in a new tracker and appends it.
func (b *Batch) AttachHoverListener(l HoverListener) {
	mustComparable(l)
	b.st.hovers = append(own(b, ownHovers, b.st.hovers), NewHoverTracker(l))
}

// DetachHoverListener removes every tracker whose listener is l.
func (b *Batch) DetachHoverListener(l HoverListener) {
	match := func(t *HoverTracker) bool { return t.Listener() == l }
	if slices.ContainsFunc(b.st.hovers, match) {
		b.st.hovers = slices.DeleteFunc(own(b, ownHovers, b.st.hovers), match)
	}
}

// AttachClickListener appends l.
func (b *Batch) AttachClickListener(l ClickListener) {
	mustComparable(l)
	b.st.clicks = append(own(b, ownClicks, b.st.clicks), l)
}

// DetachClickListener removes the first registration of l.
func (b *Batch) DetachClickListener(l ClickListener) {
	if slices.Contains(b.st.clicks, l) {
		b.st.clicks, _ = removeFirst(own(b, ownClicks, b.st.clicks), l)
	}
}

// AttachGlobalClickListener appends l.
func (b *Batch) AttachGlobalClickListener(l GlobalClickListener) {
	mustComparable(l)
	b.st.globalClicks = append(own(b, ownGlobalClicks, b.st.globalClicks), l)
}

// DetachGlobalClickListener removes the first registration of l.
func (b *Batch) DetachGlobalClickListener(l GlobalClickListener) {
	if slices.Contains(b.st.globalClicks, l) {
		b.st.globalClicks, _ = removeFirst(own(b, ownGlobalClicks, b.st.globalClicks), l)
	}
}

// AttachGlobalMoveListener appends l.
func (b *Batch) AttachGlobalMoveListener(l GlobalMoveListener) {
	mustComparable(l)
	b.st.moves = append(own(b, ownMoves, b.st.moves), l)
}

// DetachGlobalMoveListener removes the first registration of l.
func (b *Batch) DetachGlobalMoveListener(l GlobalMoveListener) {
	if slices.Contains(b.st.moves, l) {
		b.st.moves, _ = removeFirst(own(b, ownMoves, b.st.moves), l)
	}
}

// AttachScrollListener appends l.
func (b *Batch) AttachScrollListener(l ScrollListener) {
	mustComparable(l)
	b.st.scrolls = append(own(b, ownScrolls, b.st.scrolls), l)
}

// DetachScrollListener removes the first registration of l.
func (b *Batch) DetachScrollListener(l ScrollListener) {
	if slices.Contains(b.st.scrolls, l) {
		b.st.scrolls, _ = removeFirst(own(b, ownScrolls, b.st.scrolls), l)
	}
}

// AddEntity registers e under every capability it implements, components of
// a Compound first. A nil entity is ignored.
func (b *Batch) AddEntity(e any) {
	if c, ok := e.(Compound); ok {
		for _, part := range c.Components() {
			b.AddEntity(part)
		}
	}
	if d, ok := e.(Drawable); ok {
		b.AddDrawable(d)
	}
	if l, ok := e.(StepListener); ok {
		b.AttachStepListener(l)
	}
	if l, ok := e.(KeyListener); ok {
		b.AttachKeyListener(l)
	}
	if l, ok := e.(HoverListener); ok {
		b.AttachHoverListener(l)
	}
	if l, ok := e.(ClickListener); ok {
		b.AttachClickListener(l)
	}
	if l, ok := e.(GlobalClickListener); ok {
		b.AttachGlobalClickListener(l)
	}
	if l, ok := e.(GlobalMoveListener); ok {
		b.AttachGlobalMoveListener(l)
	}
	if l, ok := e.(ScrollListener); ok {
		b.AttachScrollListener(l)
	}
}

// RemoveEntity unregisters e from every capability it implements,
// components of a Compound first.
func (b *Batch) RemoveEntity(e any) {
	if c, ok := e.(Compound); ok {
		for _, part := range c.Components() {
			b.RemoveEntity(part)
		}
	}
	if d, ok := e.(Drawable); ok {
		b.RemoveDrawable(d)
	}
	if l, ok := e.(StepListener); ok {
		b.DetachStepListener(l)
	}
	if l, ok := e.(KeyListener); ok {
		b.DetachKeyListener(l)
	}
	if l, ok := e.(HoverListener); ok {
		b.DetachHoverListener(l)
	}
	if l, ok := e.(ClickListener); ok {
		b.DetachClickListener(l)
	}
	if l, ok := e.(GlobalClickListener); ok {
		b.DetachGlobalClickListener(l)
	}
	if l, ok := e.(GlobalMoveListener); ok {
		b.DetachGlobalMoveListener(l)
	}
	if l, ok := e.(ScrollListener); ok {
		b.DetachScrollListener(l)
	}
}
