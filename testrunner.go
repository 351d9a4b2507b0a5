package cellgrid

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Row    int     `json:"row,omitempty"`
	Col    int     `json:"col,omitempty"`
	Button string  `json:"button,omitempty"`
	Fields Fields  `json:"fields,omitempty"`
	Cursor string  `json:"cursor,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownTestActions = map[string]bool{
	"screenshot": true, "move": true, "click": true, "rightClick": true,
	"clickCell": true, "show": true, "hide": true, "cursor": true, "wait": true,
}

// TestRunner sequences injected input, cell updates and screenshots across
// frames for automated testing. Attach to a Grid via SetTestRunner.
//
// A script looks like:
//
//	{"steps": [
//		{"action": "show", "row": 1, "col": 1, "fields": {"icon": "bomb"}},
//		{"action": "wait", "frames": 30},
//		{"action": "clickCell", "row": 2, "col": 2, "button": "right"},
//		{"action": "screenshot", "label": "after-flag"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Grid via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownTestActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the grid. The runner's step method
// is called from Grid.Update before input processing each frame.
func (g *Grid) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Errors returns the errors returned by show and hide steps.
func (r *TestRunner) Errors() []error {
	return r.errs
}

// step advances the test runner by one frame. Called from Grid.Update.
func (r *TestRunner) step(g *Grid) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
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
	case "screenshot":
		g.Screenshot(st.Label)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "rightClick":
		g.InjectRightClick(st.X, st.Y)
	case "clickCell":
		action := ActionClick
		if st.Button == "right" {
			action = ActionRightClick
		}
		g.InjectCellClick(st.Row, st.Col, action)
	case "show":
		if _, err := g.Show(st.Row, st.Col, st.Fields); err != nil {
			r.errs = append(r.errs, err)
		}
	case "hide":
		if _, err := g.Hide(st.Row, st.Col, st.Fields); err != nil {
			r.errs = append(r.errs, err)
		}
	case "cursor":
		g.Cursor(st.Cursor)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
