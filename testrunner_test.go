package raybox

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "command", "command": "delete"},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-delete"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Command != "delete" {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "wait" || runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"unknown command", `{"steps": [{"action": "command", "command": "explode"}]}`, `unknown command "explode"`},
		{"bad color", `{"steps": [{"action": "command", "command": "addDisc", "color": "teal"}]}`, `parse color "teal"`},
		{"clickElement without element", `{"steps": [{"action": "clickElement"}]}`, "needs an element"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	g := newTestGame()
	g.Scene.AddSource(50, 50)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	// First step: click queues press+release.
	runner.step(g)
	if len(g.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(g.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	drain(g)
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if _, ok := g.Controller.Selected(); !ok {
		t.Error("click did not select the source")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	g := newTestGame()

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frames 1-3: the wait step and its countdown.
	for i := 0; i < 3; i++ {
		runner.step(g)
		if runner.Done() {
			t.Fatalf("done during wait at frame %d", i+1)
		}
	}
	// Frame 4: screenshot step, runner finishes.
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", g.screenshotQueue)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(g)
	if len(g.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(g.injectQueue))
	}
}

func TestRunnerStep_Commands(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "command", "command": "addSource"},
		{"action": "command", "command": "addDisc"},
		{"action": "command", "command": "toggleRays"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		runner.step(g)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if len(g.Scene.Sources()) != 1 || len(g.Scene.Obstacles()) != 1 {
		t.Errorf("scene has %d sources, %d obstacles, want 1 and 1",
			len(g.Scene.Sources()), len(g.Scene.Obstacles()))
	}
	if g.Config.ShowRays {
		t.Error("toggleRays did not hide rays")
	}
}

func TestRunnerCommandColor(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "command", "command": "addMirror", "color": "#ff8000"},
		{"action": "command", "command": "addDisc"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(g)
	runner.step(g)

	obs := g.Scene.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("obstacles = %d, want 2", len(obs))
	}
	want := MustParseHexColor("#ff8000")
	if obs[0].Kind != ObstacleSegment || obs[0].Color != want {
		t.Errorf("mirror = %v %v, want segment %v", obs[0].Kind, obs[0].Color, want)
	}
	// The color sticks for later additions, like a picker.
	if obs[1].Color != want {
		t.Errorf("disc color = %v, want %v", obs[1].Color, want)
	}
	if got := obs[0].Color.Hex(); got != "#ff8000" {
		t.Errorf("Hex = %q, want #ff8000", got)
	}
}

func TestRunnerClickElementFollowsCamera(t *testing.T) {
	g := newTestGame()
	src := g.Scene.AddSource(100, 100)
	g.Camera.Pan(250, -40)

	runner, err := LoadTestScript([]byte(fmt.Sprintf(`{"steps": [
		{"action": "clickElement", "element": %d},
		{"action": "clickElement", "element": 999}
	]}`, src.ID)))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.step(g)
		g.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if id, ok := g.Controller.Selected(); !ok || id != src.ID {
		t.Errorf("Selected = %d, %v, want %d", id, ok, src.ID)
	}
}

func TestRunnerSelectAndDelete(t *testing.T) {
	g := newTestGame()
	src := g.Scene.AddSource(100, 100)
	keep := g.Scene.AddSource(300, 300)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 100, "y": 100},
		{"action": "command", "command": "delete"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)
	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.step(g)
		g.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if g.Scene.Contains(src.ID) {
		t.Error("clicked source not deleted")
	}
	if !g.Scene.Contains(keep.ID) {
		t.Error("other source deleted")
	}
}

func TestRunnerDone(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "only"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after single screenshot step")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(g)
	if len(g.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(g.injectQueue))
	}
	// Pending injections block the next step.
	runner.step(g)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	g.injectQueue = g.injectQueue[:0]
	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
