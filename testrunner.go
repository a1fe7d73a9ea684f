package sidescroll

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string     `json:"action"`
	Label  string     `json:"label,omitempty"`
	Key    ebiten.Key `json:"key,omitempty"`
	Frames int        `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner plays back a scripted sequence of key presses, waits and
// screenshots across frames, for automated runs of a game. Keys use
// ebiten's key names ("D", "ArrowLeft", "Space").
//
//	{"steps": [
//		{"action": "hold", "key": "D", "frames": 30},
//		{"action": "screenshot", "label": "ran-right"},
//		{"action": "quit"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON input script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("sidescroll: parse test script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("sidescroll: parse test script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "release", "tap", "hold", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("sidescroll: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: s.Steps}, nil
}

// SetTestRunner attaches a runner; it is stepped at the start of every
// Game.Update.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.testRunner = r
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Let queued injections drain before the next step.
	if len(g.injectQueue) > 0 {
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
	case "press":
		g.InjectKeyDown(st.Key)
	case "release":
		g.InjectKeyUp(st.Key)
	case "tap":
		g.InjectTap(st.Key)
	case "hold":
		g.InjectHold(st.Key, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	case "quit":
		g.InjectEvent(Event{Type: EventQuit})
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
