// Package collision dispatches pairwise collision events by participant type.
//
// A caller declares interest once with a [Test] for a pair of concrete types
// and registers it with a [World]. The World groups tests sharing a pair into
// one bucket, runs the bucket's strategy once per instance pair, and calls
// every listener with arguments in the order that listener declared:
//
//	w := collision.NewWorld()
//	hits := collision.NewTest(overlap, func(b *Ball, wl *Wall) { b.Bounce() })
//	w.Register(hits)
//	w.Evaluate(wall, ball) // listener still receives (ball, wall)
//
// The World does no spatial partitioning. Candidate pairs come from the
// caller, either one at a time through [World.Evaluate] or all-pairs through
// [World.EvaluateAll].
package collision

import (
	"reflect"
	"sync"
)

// Registrable is satisfied by every *Test.
type Registrable interface {
	member
}

// World is the collision dispatch engine. It is safe for concurrent use.
type World struct {
	mu      sync.RWMutex
	buckets map[pairKey]*bucket
	order   []*bucket
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{buckets: make(map[pairKey]*bucket)}
}

// Register locates or lazily creates the bucket for t's pair and appends t.
// Buckets live for the lifetime of the World.
func (w *World) Register(t Registrable) {
	if t == nil {
		panic("collision: nil test")
	}
	p := t.Pair()
	w.mu.Lock()
	defer w.mu.Unlock()
	if b, ok := w.buckets[pairKey{p.first, p.second}]; ok {
		b.add(t)
		return
	}
	b := newBucket(t)
	w.buckets[pairKey{p.first, p.second}] = b
	w.buckets[pairKey{p.second, p.first}] = b
	w.order = append(w.order, b)
}

// RegisterFunc creates a Test for (A, B), registers it with w and returns it.
func RegisterFunc[A, B any](w *World, strategy Strategy[A, B], listeners ...Listener[A, B]) *Test[A, B] {
	t := NewTest(strategy, listeners...)
	w.Register(t)
	return t
}

// lookup returns the bucket for the runtime types of a and b and a snapshot
// of its members, or nil if no test was registered for that combination.
func (w *World) lookup(a, b any) (*bucket, []member) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	bk, ok := w.buckets[pairKey{reflect.TypeOf(a), reflect.TypeOf(b)}]
	if !ok {
		return nil, nil
	}
	return bk, bk.tests
}

// Evaluate tests a and b against the bucket registered for their types, in
// either order. It reports whether the strategy found a collision and
// listeners were notified. Pairs with no registered test are ignored.
func (w *World) Evaluate(a, b any) bool {
	bk, tests := w.lookup(a, b)
	if bk == nil {
		return false
	}
	p, err := bk.pair().Classify(a, b)
	if err != nil {
		// The bucket was found by these exact types.
		panic(err)
	}
	return bk.testAndFire(p, tests)
}

// EvaluateAll runs Evaluate on every unordered pair of objs and returns the
// number of collisions found. Cost is quadratic in len(objs).
func (w *World) EvaluateAll(objs []any) int {
	n := 0
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			if w.Evaluate(objs[i], objs[j]) {
				n++
			}
		}
	}
	return n
}

// Buckets returns the representative pair of every bucket in creation order.
func (w *World) Buckets() []TypePair {
	w.mu.RLock()
	defer w.mu.RUnlock()
	pairs := make([]TypePair, len(w.order))
	for i, b := range w.order {
		pairs[i] = b.pair()
	}
	return pairs
}

// Watches reports whether a test is registered for the runtime types of a
// and b in either order.
func (w *World) Watches(a, b any) bool {
	bk, _ := w.lookup(a, b)
	return bk != nil
}
