package collision

import (
	"errors"
	"reflect"
	"testing"
)

type ball struct{ name string }
type wall struct{ name string }
type paddle struct{}

// panics reports whether fn panicked.
func panics(fn func()) (did bool) {
	defer func() {
		if recover() != nil {
			did = true
		}
	}()
	fn()
	return false
}

func TestTypePairSymmetry(t *testing.T) {
	ab := PairOf[*ball, *wall]()
	ba := PairOf[*wall, *ball]()

	if !ab.Equal(ba) || !ba.Equal(ab) {
		t.Error("Equal should ignore order")
	}
	if !ab.IsBackwardsTo(ba) {
		t.Error("ab.IsBackwardsTo(ba) = false, want true")
	}
	if ab.IsBackwardsTo(ab) {
		t.Error("ab.IsBackwardsTo(ab) = true, want false")
	}
	if got := ab.Swap(); got != ba {
		t.Errorf("Swap = %v, want %v", got, ba)
	}
	if ab.Equal(PairOf[*ball, *paddle]()) {
		t.Error("pairs with different types should not be equal")
	}
}

func TestTypePairAccessors(t *testing.T) {
	p := PairOf[*wall, *ball]()
	if p.First() != reflect.TypeFor[*wall]() {
		t.Errorf("First = %v, want *collision.wall", p.First())
	}
	if p.Second() != reflect.TypeFor[*ball]() {
		t.Errorf("Second = %v, want *collision.ball", p.Second())
	}
	if got, want := p.String(), "(*collision.wall, *collision.ball)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestNewTypePairRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"same type", func() { PairOf[*ball, *ball]() }},
		{"interface type", func() { PairOf[any, *ball]() }},
		{"nil type", func() { NewTypePair(nil, reflect.TypeFor[*ball]()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !panics(tt.fn) {
				t.Error("expected panic")
			}
		})
	}
}

func TestClassify(t *testing.T) {
	b := &ball{"b"}
	w := &wall{"w"}
	p := PairOf[*wall, *ball]()

	for _, args := range [][2]any{{b, w}, {w, b}} {
		got, err := p.Classify(args[0], args[1])
		if err != nil {
			t.Fatalf("Classify(%v, %v): %v", args[0], args[1], err)
		}
		if got.First != any(w) || got.Second != any(b) {
			t.Errorf("Classify = (%v, %v), want (%v, %v)", got.First, got.Second, w, b)
		}
		if got.Pair != p {
			t.Errorf("Pair = %v, want %v", got.Pair, p)
		}
	}
}

func TestClassifyFailure(t *testing.T) {
	p := PairOf[*wall, *ball]()

	tests := []struct {
		name string
		a, b any
	}{
		{"neither matches", &paddle{}, &paddle{}},
		{"second missing", &wall{}, &paddle{}},
		{"both first type", &wall{}, &wall{}},
		{"value instead of pointer", wall{}, &ball{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Classify(tt.a, tt.b)
			if !errors.Is(err, ErrUnclassifiable) {
				t.Errorf("err = %v, want ErrUnclassifiable", err)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	p := PairOf[*wall, *ball]()
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"reversed", &ball{}, &wall{}, true},
		{"declared", &wall{}, &ball{}, true},
		{"same type twice", &wall{}, &wall{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Matches(tt.a, tt.b); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}
