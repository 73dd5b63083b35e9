package phineas

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action  string   `yaml:"action"`
	Label   string   `yaml:"label,omitempty"`
	X       float64  `yaml:"x,omitempty"`
	Y       float64  `yaml:"y,omitempty"`
	Key     string   `yaml:"key,omitempty"`
	Mods    []string `yaml:"mods,omitempty"`
	Notches int      `yaml:"notches,omitempty"`
	Frames  int      `yaml:"frames,omitempty"`

	key  ebiten.Key
	mods KeyModifiers
}

// script is the top-level YAML structure for an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var modifierNames = map[string]KeyModifiers{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"meta":  ModMeta,
}

// ScriptRunner sequences injected input and screenshots across ticks for
// automated testing. Attach to a Game via SetScriptRunner.
//
// A script looks like:
//
//	steps:
//	  - action: click
//	    x: 100
//	    y: 200
//	  - action: key
//	    key: Space
//	    mods: [shift]
//	  - action: wait
//	    frames: 3
//	  - action: screenshot
//	    label: after-click
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script and returns a runner ready to be
// attached to a Game.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse input script: no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func (st *scriptStep) resolve() error {
	switch st.Action {
	case "click", "press", "release", "move", "scroll", "wait", "screenshot":
	case "key":
		if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
			return fmt.Errorf("unknown key %q: %w", st.Key, err)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	for _, m := range st.Mods {
		mod, ok := modifierNames[m]
		if !ok {
			return fmt.Errorf("unknown modifier %q", m)
		}
		st.mods |= mod
	}
	return nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	in := g.Input()
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "press":
		in.InjectPress(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "key":
		in.InjectKey(st.key, st.mods)
	case "scroll":
		in.InjectScroll(st.Notches)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
