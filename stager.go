package phineas

import (
	"context"
	"sync"
)

// Stager collects entity additions and removals requested during a tick and
// applies them to a Registry at a tick boundary. Staging never blocks on the
// registry and is safe from any goroutine, including from inside listener
// callbacks.
type Stager struct {
	mu      sync.Mutex
	adds    []any
	removes []any
}

// StageAdd queues e to be added at the next Apply.
func (s *Stager) StageAdd(e any) {
	s.mu.Lock()
	s.adds = append(s.adds, e)
	s.mu.Unlock()
}

// StageRemove queues e to be removed at the next Apply.
func (s *Stager) StageRemove(e any) {
	s.mu.Lock()
	s.removes = append(s.removes, e)
	s.mu.Unlock()
}

// Pending returns the number of queued additions and removals.
func (s *Stager) Pending() (adds, removes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.adds), len(s.removes)
}

// Apply drains the queues into reg as one published change. All removals are
// applied before any addition, each group in staging order, so an entity
// staged for both removal and addition ends up registered. Items staged while
// Apply runs are kept for the next call.
//
// If ctx ends while waiting for the registry barrier, Apply returns an error
// wrapping ErrBarrierInterrupted and the queues are left untouched.
func (s *Stager) Apply(ctx context.Context, reg *Registry) error {
	return reg.Apply(ctx, func(b *Batch) {
		s.mu.Lock()
		adds, removes := s.adds, s.removes
		s.adds, s.removes = nil, nil
		s.mu.Unlock()

		for _, e := range removes {
			b.RemoveEntity(e)
		}
		for _, e := range adds {
			b.AddEntity(e)
		}
	})
}
