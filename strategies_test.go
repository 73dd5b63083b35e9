package phineas

import (
	"testing"

	"github.com/phanxgames/phineas/collision"
)

type disc struct{ c Circle }
type peg struct{ c Circle }

func (d *disc) HitCircle() Circle { return d.c }
func (p *peg) HitCircle() Circle { return p.c }

func TestBoundsOverlap(t *testing.T) {
	overlap := BoundsOverlap[*puck, *goal]()
	p := &puck{box: Box{X: 0, Y: 0, Width: 10, Height: 10}}

	tests := []struct {
		name string
		g    Box
		want bool
	}{
		{"overlapping", Box{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching edge", Box{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"apart", Box{X: 11, Y: 11, Width: 5, Height: 5}, false},
		{"contained", Box{X: 2, Y: 2, Width: 1, Height: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlap(p, &goal{box: tt.g}); got != tt.want {
				t.Errorf("overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	overlap := CirclesOverlap[*disc, *peg]()
	d := &disc{Circle{0, 0, 5}}

	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"overlapping", Circle{6, 0, 2}, true},
		{"touching", Circle{8, 0, 3}, true},
		{"apart", Circle{10, 10, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlap(d, &peg{tt.c}); got != tt.want {
				t.Errorf("overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategyInWorldEitherOrder(t *testing.T) {
	w := collision.NewWorld()
	fired := 0
	collision.RegisterFunc(w, CirclesOverlap[*peg, *disc](), func(*peg, *disc) { fired++ })

	d := &disc{Circle{0, 0, 1}}
	p := &peg{Circle{1, 1, 1}}
	w.Evaluate(d, p)
	w.Evaluate(p, d)
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
}

func TestRectAndCircleContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 2}
	if !r.Contains(1, 1) || !r.Contains(3, 3) || r.Contains(3.1, 2) {
		t.Error("Rect.Contains edge handling")
	}
	c := Circle{0, 0, 1}
	if !c.Contains(1, 0) || c.Contains(1, 1) {
		t.Error("Circle.Contains edge handling")
	}
}
