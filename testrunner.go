package raybox

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string    `json:"action"`
	Label   string    `json:"label,omitempty"`
	Command string    `json:"command,omitempty"`
	Color   string    `json:"color,omitempty"`
	Element ElementID `json:"element,omitempty"`
	X       float64   `json:"x,omitempty"`
	Y       float64   `json:"y,omitempty"`
	FromX   float64   `json:"fromX,omitempty"`
	FromY   float64   `json:"fromY,omitempty"`
	ToX     float64   `json:"toX,omitempty"`
	ToY     float64   `json:"toY,omitempty"`
	Frames  int       `json:"frames,omitempty"`

	// color is Color parsed at load time.
	color Color
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, edit commands, and screenshots across
// ticks for automated visual checks. Attach to a Game via SetTestRunner.
//
// Supported actions: "press", "move", "release", "click", "rightClick",
// "clickElement", "drag", "command", "wait", and "screenshot". A "command"
// step may carry a "color" ("#rrggbb") that becomes the color of obstacles
// added from then on.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "move", "release", "click", "rightClick", "drag", "wait", "screenshot":
		case "clickElement":
			if st.Element == 0 {
				return nil, fmt.Errorf("parse test script: step %d: clickElement needs an element", i)
			}
		case "command":
			if _, ok := ParseCommand(st.Command); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown command %q", i, st.Command)
			}
			if st.Color != "" {
				c, err := ParseHexColor(st.Color)
				if err != nil {
					return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
				}
				st.color = c
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called from Game.Update before processInput each tick.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
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
	case "press":
		g.InjectPress(st.X, st.Y)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "release":
		g.InjectRelease(st.X, st.Y)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "rightClick":
		g.InjectSecondaryClick(st.X, st.Y)
	case "clickElement":
		// Missing elements are skipped so later steps still run.
		if sx, sy, ok := g.ScreenPosition(st.Element); ok {
			g.InjectClick(sx, sy)
		}
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "command":
		if st.Color != "" {
			g.NewObstacleColor = st.color
		}
		if cmd, ok := ParseCommand(st.Command); ok {
			g.Apply(cmd)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
