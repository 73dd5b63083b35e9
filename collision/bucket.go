package collision

import "fmt"

// bucket groups every test registered for one TypePair. The first test
// added is the representative: its strategy runs once per instance pair and
// its declared order is the classification order.
type bucket struct {
	example member
	tests   []member // copy-on-write; guarded by World.mu
}

func newBucket(t member) *bucket {
	return &bucket{example: t, tests: []member{t}}
}

// pair returns the representative key of the bucket.
func (b *bucket) pair() TypePair {
	return b.example.Pair()
}

// add appends a test. Panics if its key is not equal to the bucket's key.
func (b *bucket) add(t member) {
	if !b.pair().Equal(t.Pair()) {
		panic(fmt.Sprintf("collision: test %v does not belong in bucket %v", t.Pair(), b.pair()))
	}
	next := make([]member, len(b.tests), len(b.tests)+1)
	copy(next, b.tests)
	b.tests = append(next, t)
}

// testAndFire runs the shared strategy on a classified pair and fans out to
// every member if it reports a collision.
func (b *bucket) testAndFire(p InstancePair, tests []member) bool {
	if !b.example.collided(p.First, p.Second) {
		return false
	}
	for _, t := range tests {
		if p.Pair.IsBackwardsTo(t.Pair()) {
			t.fire(p.Second, p.First)
		} else {
			t.fire(p.First, p.Second)
		}
	}
	return true
}
