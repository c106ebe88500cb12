package grove

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action of a replay script as written in JSON.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Touch bool         `json:"touch,omitempty"`
	Quit  bool         `json:"quit,omitempty"`
	Steps []scriptStep `json:"steps"`
}

// step is a validated scriptStep with its key resolved.
type step struct {
	scriptStep
	key Key
}

// TestRunner replays a JSON script of input and screenshots against a Game,
// starting one action per tick. Each action waits for the input queued by
// the previous one to drain.
//
// Actions: "tap", "hold" and "release" take a key; "click", "press" and
// "lift" take x and y; "wait" takes frames; "screenshot" takes a label.
//
//	{"touch": false, "quit": true, "steps": [
//	  {"action": "click", "x": 720, "y": 630},
//	  {"action": "hold", "key": "right"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "walked"}
//	]}
type TestRunner struct {
	steps        []step
	next         int
	wait         int
	done         bool
	quitWhenDone bool
	input        *ScriptedInput
}

// LoadTestScript parses and validates a replay script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	steps := make([]step, len(s.Steps))
	for i, st := range s.Steps {
		steps[i].scriptStep = st
		switch st.Action {
		case "tap", "hold", "release":
			k, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			steps[i].key = k
		case "wait":
			if st.Frames < 0 {
				return nil, fmt.Errorf("parse test script: step %d: negative wait", i)
			}
		case "click", "press", "lift", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{
		steps:        steps,
		quitWhenDone: s.Quit,
		input:        NewScriptedInput(s.Touch),
	}, nil
}

// Done reports whether every step has run and its input was consumed.
func (r *TestRunner) Done() bool { return r.done }

// Input returns the scripted input the runner feeds.
func (r *TestRunner) Input() *ScriptedInput { return r.input }

type screenshotter interface {
	Screenshot(label string)
}

// step runs at most one action. Game.Update calls it before advancing input.
func (r *TestRunner) step(g screenshotter) {
	switch {
	case r.done, r.input.Pending() > 0:
		return
	case r.wait > 0:
		r.wait--
		return
	case r.next >= len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	switch st.Action {
	case "tap":
		r.input.InjectKeyTap(st.key)
	case "hold":
		r.input.InjectKeyDown(st.key)
	case "release":
		r.input.InjectKeyUp(st.key)
	case "click":
		r.input.InjectClick(st.X, st.Y)
	case "press":
		r.input.InjectPress(st.X, st.Y)
	case "lift":
		r.input.InjectRelease(st.X, st.Y)
	case "wait":
		// The current tick is the first waited one.
		r.wait = max(st.Frames-1, 0)
	case "screenshot":
		g.Screenshot(st.Label)
	}

	r.done = r.next >= len(r.steps) && r.wait == 0 && r.input.Pending() == 0
}
