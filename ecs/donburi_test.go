package ecs

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/phineas"
	"github.com/phanxgames/phineas/collision"
)

type ship struct{ name string }
type rock struct{ name string }

func TestDonburiStoreEmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}

	var received []phineas.InputEvent
	InputEventType.Subscribe(world, func(w donburi.World, e phineas.InputEvent) {
		received = append(received, e)
	})

	store.EmitEvent(phineas.InputEvent{
		Type:   phineas.EventPointerDown,
		X:      100,
		Y:      200,
		Button: phineas.MouseButtonLeft,
	})
	store.EmitEvent(phineas.InputEvent{
		Type:      phineas.EventKeyDown,
		Key:       ebiten.KeySpace,
		Modifiers: phineas.ModShift,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("received %d events, want 2", len(received))
	}
	if e := received[0]; e.Type != phineas.EventPointerDown || e.X != 100 || e.Y != 200 {
		t.Errorf("event[0] = %+v, want pointer down at (100, 200)", e)
	}
	if e := received[1]; e.Key != ebiten.KeySpace || e.Modifiers != phineas.ModShift {
		t.Errorf("event[1] = %+v, want shift+space", e)
	}
}

func TestDonburiStoreReceivesDispatchedInput(t *testing.T) {
	world := donburi.NewWorld()
	reg := phineas.NewRegistry()
	in := phineas.NewInput(reg)
	in.SetEntityStore(NewDonburiStore(world))

	var types []phineas.EventType
	InputEventType.Subscribe(world, func(w donburi.World, e phineas.InputEvent) {
		types = append(types, e.Type)
	})

	in.Dispatch(phineas.InputEvent{Type: phineas.EventPointerMove, X: 1, Y: 1})
	in.Dispatch(phineas.InputEvent{Type: phineas.EventWheel, Notches: -2})
	events.ProcessAllEvents(world)

	want := []phineas.EventType{phineas.EventPointerMove, phineas.EventWheel}
	if !slices.Equal(types, want) {
		t.Errorf("types = %v, want %v", types, want)
	}
}

func TestDonburiStoreMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InputEventType.Subscribe(world, func(w donburi.World, e phineas.InputEvent) { count1++ })
	InputEventType.Subscribe(world, func(w donburi.World, e phineas.InputEvent) { count2++ })

	store.EmitEvent(phineas.InputEvent{Type: phineas.EventPointerUp})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("subscriber counts = (%d, %d), want (1, 1)", count1, count2)
	}
}

func TestPublishCollisions(t *testing.T) {
	world := donburi.NewWorld()
	w := collision.NewWorld()
	test := collision.RegisterFunc(w, collision.Always[*ship, *rock])
	h := PublishCollisions(world, test)

	var got []CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		got = append(got, e)
	})

	s, r := &ship{"s"}, &rock{"r"}
	if !w.Evaluate(r, s) {
		t.Fatal("Evaluate = false, want true")
	}
	CollisionEventType.ProcessEvents(world)

	if len(got) != 1 {
		t.Fatalf("collision events = %d, want 1", len(got))
	}
	if got[0].First != any(s) || got[0].Second != any(r) {
		t.Errorf("event = (%v, %v), want (%v, %v)", got[0].First, got[0].Second, s, r)
	}
	if want := collision.PairOf[*ship, *rock](); got[0].Pair != want {
		t.Errorf("Pair = %v, want %v", got[0].Pair, want)
	}

	h.Remove()
	w.Evaluate(s, r)
	CollisionEventType.ProcessEvents(world)
	if len(got) != 1 {
		t.Errorf("collision events after Remove = %d, want 1", len(got))
	}
	if n := test.Listeners(); n != 0 {
		t.Errorf("Listeners = %d, want 0", n)
	}
}
