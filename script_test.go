package phineas

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - action: click
    x: 100
    y: 200
  - action: key
    key: Space
    mods: [shift, ctrl]
  - action: wait
    frames: 3
`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].key != ebiten.KeySpace || runner.steps[2].mods != ModShift|ModCtrl {
		t.Errorf("step 2 key=%v mods=%v", runner.steps[2].key, runner.steps[2].mods)
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "steps: [unclosed"},
		{"empty", "steps: []"},
		{"unknown action", "steps:\n  - action: dance\n"},
		{"unknown key", "steps:\n  - action: key\n    key: NotAKey\n"},
		{"unknown modifier", "steps:\n  - action: click\n    mods: [hyper]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStepClick(t *testing.T) {
	g, _ := newTestGame()
	a := &actor{bounds: Rect{Width: 200, Height: 200}}
	g.Registry().AddEntity(a)

	runner, err := LoadScript([]byte("steps:\n  - action: click\n    x: 50\n    y: 50\n"))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScriptRunner(runner)

	runner.step(g)
	if n := g.Input().Pending(); n != 2 {
		t.Fatalf("expected 2 queued events, got %d", n)
	}
	if runner.Done() {
		t.Error("runner should not be done while injections are pending")
	}

	g.Input().processInjected()
	g.Input().processInjected()

	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if len(a.downs) != 1 || a.downs[0] != [2]float64{50, 50} {
		t.Errorf("downs = %v, want [[50 50]]", a.downs)
	}
}

func TestRunnerStepWait(t *testing.T) {
	g, _ := newTestGame()
	runner, err := LoadScript([]byte(`
steps:
  - action: wait
    frames: 3
  - action: screenshot
    label: done
`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(g)
		if runner.Done() {
			t.Fatalf("done during wait at tick %d", i)
		}
	}
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", g.screenshotQueue)
	}
}

func TestRunnerStepScrollAndKey(t *testing.T) {
	g, _ := newTestGame()
	k := &keyRecorder{}
	s := &scrollRecorder{}
	g.Registry().AddEntity(k)
	g.Registry().AddEntity(s)

	runner, err := LoadScript([]byte(`
steps:
  - action: scroll
    notches: -1
  - action: key
    key: Enter
`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.step(g)
		g.Input().processInjected()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if len(s.notches) != 1 || s.notches[0] != -1 {
		t.Errorf("notches = %v, want [-1]", s.notches)
	}
	if len(k.events) != 2 {
		t.Errorf("key events = %v, want press and release", k.events)
	}
}
