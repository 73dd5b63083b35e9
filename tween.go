package phineas

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a StepListener that animates one or more float64 fields to
// target values with a shared duration and easing function. Register it
// with AddEntity; it stops writing once every field has arrived.
//
// There is no global animation manager. A finished tween stays registered
// until it is removed, typically from OnDone.
type Tween struct {
	duration float32 // seconds
	easing   ease.TweenFunc
	tweens   []*gween.Tween
	fields   []*float64
	done     bool

	// OnDone, if set, is called once from the step in which the tween
	// finishes.
	OnDone func()
}

// NewTween creates a tween moving *field from its current value to `to`
// over d using fn. A nil fn is linear.
func NewTween(field *float64, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Tween{duration: float32(d.Seconds()), easing: fn}
	return t.Also(field, to)
}

// Also adds another field to animate with the same duration and easing.
func (t *Tween) Also(field *float64, to float64) *Tween {
	t.tweens = append(t.tweens, gween.New(float32(*field), float32(to), t.duration, t.easing))
	t.fields = append(t.fields, field)
	return t
}

// OnStep advances every field by the elapsed time.
func (t *Tween) OnStep(milliseconds int64) {
	if t.done {
		return
	}
	dt := float32(milliseconds) / 1000
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		t.done = true
		if t.OnDone != nil {
			t.OnDone()
		}
	}
}

// Done reports whether every field has reached its target.
func (t *Tween) Done() bool {
	return t.done
}
