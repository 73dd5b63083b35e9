package collision

import "sync"

// Strategy decides whether two classified instances collide.
type Strategy[A, B any] func(first A, second B) bool

// Listener is called with the colliding instances in its declared order.
type Listener[A, B any] func(first A, second B)

// Always is a Strategy that reports every pair as colliding. Useful when the
// broad phase has already done the narrow test.
func Always[A, B any](A, B) bool { return true }

type listenerEntry[A, B any] struct {
	id uint32
	fn Listener[A, B]
}

// Test asks the World to look for collisions between instances of A and B
// and notify its listeners when the strategy reports one.
type Test[A, B any] struct {
	pair     TypePair
	strategy Strategy[A, B]

	mu        sync.Mutex
	listeners []listenerEntry[A, B] // copy-on-write
	nextID    uint32
}

// NewTest creates a test for the pair (A, B) using strategy.
// Panics if strategy is nil or if A and B cannot form a TypePair.
func NewTest[A, B any](strategy Strategy[A, B], listeners ...Listener[A, B]) *Test[A, B] {
	if strategy == nil {
		panic("collision: nil strategy")
	}
	t := &Test[A, B]{
		pair:     PairOf[A, B](),
		strategy: strategy,
	}
	for _, fn := range listeners {
		t.Attach(fn)
	}
	return t
}

// Pair returns the TypePair this test was declared with.
func (t *Test[A, B]) Pair() TypePair {
	return t.pair
}

// Attach adds a listener and returns a handle that detaches it.
func (t *Test[A, B]) Attach(fn Listener[A, B]) Handle {
	if fn == nil {
		panic("collision: nil listener")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	next := make([]listenerEntry[A, B], len(t.listeners), len(t.listeners)+1)
	copy(next, t.listeners)
	t.listeners = append(next, listenerEntry[A, B]{id: id, fn: fn})
	return Handle{id: id, owner: t}
}

// Listeners returns the number of attached listeners.
func (t *Test[A, B]) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}

func (t *Test[A, B]) detach(id uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.listeners {
		if t.listeners[i].id == id {
			next := make([]listenerEntry[A, B], 0, len(t.listeners)-1)
			next = append(next, t.listeners[:i]...)
			t.listeners = append(next, t.listeners[i+1:]...)
			return
		}
	}
}

func (t *Test[A, B]) snapshot() []listenerEntry[A, B] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.listeners
}

// collided runs the strategy on instances already ordered as (A, B).
func (t *Test[A, B]) collided(first, second any) bool {
	return t.strategy(first.(A), second.(B))
}

// fire notifies every listener; first and second must already be ordered
// as this test declared them.
func (t *Test[A, B]) fire(first, second any) {
	a, b := first.(A), second.(B)
	for _, l := range t.snapshot() {
		l.fn(a, b)
	}
}

// member is the type-erased view of a Test held by a bucket.
type member interface {
	Pair() TypePair
	collided(first, second any) bool
	fire(first, second any)
}

type detacher interface {
	detach(id uint32)
}

// Handle detaches a listener from its test.
type Handle struct {
	id    uint32
	owner detacher
}

// Remove detaches the listener. Calling it more than once, or on a zero
// Handle, is a no-op.
func (h Handle) Remove() {
	if h.owner == nil {
		return
	}
	h.owner.detach(h.id)
}
