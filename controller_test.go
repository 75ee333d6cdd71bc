package raybox

import (
	"math"
	"testing"
)

// recordingStore captures emitted events for assertions.
type recordingStore struct {
	events []InteractionEvent
}

func (r *recordingStore) EmitEvent(e InteractionEvent) {
	r.events = append(r.events, e)
}

func (r *recordingStore) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func assertEventTypes(t *testing.T, got, want []EventType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func newTestController() (*Controller, *Scene, *recordingStore) {
	s := NewScene()
	c := NewController(s)
	store := &recordingStore{}
	c.SetEntityStore(store)
	return c, s, store
}

func TestControllerPointerDownEmpty(t *testing.T) {
	c, _, store := newTestController()
	if c.PointerDown(10, 10) {
		t.Error("PointerDown on empty space = true")
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if _, ok := c.Selected(); ok {
		t.Error("selection set on empty press")
	}
	if len(store.events) != 0 {
		t.Errorf("events = %v, want none", store.types())
	}
}

func TestControllerDragPreservesOffset(t *testing.T) {
	c, s, _ := newTestController()
	src := s.AddSource(100, 100)

	if !c.PointerDown(108, 94) {
		t.Fatal("PointerDown over source = false")
	}
	if c.State() != StateDragging {
		t.Fatalf("State = %v, want dragging", c.State())
	}
	if off := c.DragOffset(); off != (Vec2{8, -6}) {
		t.Errorf("DragOffset = %v, want (8,-6)", off)
	}

	c.PointerMove(208, 194)
	if src.X != 200 || src.Y != 200 {
		t.Errorf("source at (%v,%v), want (200,200)", src.X, src.Y)
	}
	c.PointerMove(58, 44)
	if src.X != 50 || src.Y != 50 {
		t.Errorf("source at (%v,%v), want (50,50)", src.X, src.Y)
	}

	c.PointerUp(58, 44)
	if c.State() != StateIdle {
		t.Errorf("State after PointerUp = %v, want idle", c.State())
	}
	if id, ok := c.Selected(); !ok || id != src.ID {
		t.Errorf("Selected after PointerUp = %d, %v, want %d", id, ok, src.ID)
	}
}

func TestControllerMoveWhileIdle(t *testing.T) {
	c, s, store := newTestController()
	src := s.AddSource(100, 100)
	c.PointerMove(300, 300)
	if src.X != 100 || src.Y != 100 {
		t.Errorf("idle move changed source to (%v,%v)", src.X, src.Y)
	}

	// Moves after release do not drag the still-selected element.
	c.PointerDown(100, 100)
	c.PointerUp(100, 100)
	c.PointerMove(300, 300)
	if src.X != 100 || src.Y != 100 {
		t.Errorf("move after release changed source to (%v,%v)", src.X, src.Y)
	}
	assertEventTypes(t, store.types(), []EventType{EventSelect})
}

func TestControllerEventSequence(t *testing.T) {
	c, s, store := newTestController()
	o := s.AddObstacle(ObstacleConfig{Kind: ObstacleDisc, X: 0, Y: 0, Size: 40})

	c.PointerDown(5, 0)
	c.PointerMove(10, 0)
	c.PointerMove(15, 0)
	c.PointerUp(15, 0)

	assertEventTypes(t, store.types(), []EventType{
		EventSelect, EventDragStart, EventDrag, EventDrag, EventDragEnd,
	})
	for _, e := range store.events {
		if e.ElementID != o.ID {
			t.Errorf("event %v for %d, want %d", e.Type, e.ElementID, o.ID)
		}
	}
	last := store.events[len(store.events)-1]
	if last.StartX != 5 || last.StartY != 0 {
		t.Errorf("DragEnd start = (%v,%v), want (5,0)", last.StartX, last.StartY)
	}
}

func TestControllerClickWithoutMoveHasNoDragEvents(t *testing.T) {
	c, s, store := newTestController()
	s.AddSource(0, 0)
	c.PointerDown(0, 0)
	c.PointerUp(0, 0)
	assertEventTypes(t, store.types(), []EventType{EventSelect})
}

func TestControllerDeleteSelected(t *testing.T) {
	c, s, store := newTestController()
	src := s.AddSource(0, 0)
	other := s.AddSource(100, 0)

	c.PointerDown(0, 0)
	c.PointerUp(0, 0)
	if !c.DeleteSelected() {
		t.Fatal("DeleteSelected = false")
	}
	if s.Contains(src.ID) {
		t.Error("selected source still in scene")
	}
	if !s.Contains(other.ID) {
		t.Error("unselected source removed")
	}
	if _, ok := c.Selected(); ok {
		t.Error("selection kept after delete")
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	assertEventTypes(t, store.types(), []EventType{EventSelect, EventDelete})
}

func TestControllerDeleteDuringDrag(t *testing.T) {
	c, s, _ := newTestController()
	src := s.AddSource(0, 0)
	c.PointerDown(0, 0)
	c.PointerMove(10, 10)
	if !c.DeleteSelected() {
		t.Fatal("DeleteSelected while dragging = false")
	}
	if s.Contains(src.ID) || c.State() != StateIdle {
		t.Error("delete during drag did not remove and reset")
	}
	// Further moves are harmless.
	c.PointerMove(20, 20)
	c.PointerUp(20, 20)
}

func TestControllerDeleteNothingSelected(t *testing.T) {
	c, s, store := newTestController()
	s.AddSource(0, 0)
	if c.DeleteSelected() {
		t.Error("DeleteSelected with no selection = true")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if len(store.events) != 0 {
		t.Errorf("events = %v, want none", store.types())
	}
}

func TestControllerCancel(t *testing.T) {
	c, s, store := newTestController()
	src := s.AddSource(0, 0)
	c.PointerDown(0, 0)
	c.Cancel()
	if _, ok := c.Selected(); ok {
		t.Error("Cancel kept selection")
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	c.PointerMove(50, 50)
	if src.X != 0 || src.Y != 0 {
		t.Error("move after Cancel dragged the source")
	}
	assertEventTypes(t, store.types(), []EventType{EventSelect, EventDeselect})

	// Cancel with nothing selected emits nothing.
	c.Cancel()
	if len(store.events) != 2 {
		t.Errorf("events = %v, want 2", store.types())
	}
}

func TestControllerPressEmptyClearsSelection(t *testing.T) {
	c, s, store := newTestController()
	s.AddSource(0, 0)
	c.PointerDown(0, 0)
	c.PointerUp(0, 0)
	c.PointerDown(500, 500)
	if _, ok := c.Selected(); ok {
		t.Error("press on empty space kept selection")
	}
	assertEventTypes(t, store.types(), []EventType{EventSelect, EventDeselect})
}

func TestControllerSelectionDroppedWhenRemovedElsewhere(t *testing.T) {
	c, s, _ := newTestController()
	src := s.AddSource(0, 0)
	c.PointerDown(0, 0)
	s.RemoveElement(src.ID)
	if _, ok := c.Selected(); ok {
		t.Error("stale selection reported")
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
}

func TestControllerRotateSelected(t *testing.T) {
	c, s, store := newTestController()
	o := s.AddObstacle(ObstacleConfig{Kind: ObstacleSegment, X: 0, Y: 0, Angle: 0.5})
	src := s.AddSource(500, 500)

	if c.RotateSelected(0.25) {
		t.Error("RotateSelected with no selection = true")
	}
	c.PointerDown(0, 0)
	c.PointerUp(0, 0)
	if !c.RotateSelected(0.25) {
		t.Fatal("RotateSelected = false")
	}
	assertNear(t, "Angle", o.Angle, 0.75)
	last := store.events[len(store.events)-1]
	if last.Type != EventRotate || math.Abs(last.Angle-0.75) > epsilon {
		t.Errorf("last event = %+v, want rotate to 0.75", last)
	}

	c.PointerDown(500, 500)
	c.PointerUp(500, 500)
	if c.RotateSelected(1) {
		t.Errorf("RotateSelected on source %d = true", src.ID)
	}
}

func TestControllerToggleMaterial(t *testing.T) {
	c, s, _ := newTestController()
	o := s.AddObstacle(ObstacleConfig{Kind: ObstacleDisc, X: 0, Y: 0})
	c.PointerDown(0, 0)
	c.PointerUp(0, 0)

	if !c.ToggleSelectedMaterial() || o.Material != MaterialAbsorptive {
		t.Fatalf("first toggle: Material = %v, want absorptive", o.Material)
	}
	if !c.ToggleSelectedMaterial() || o.Material != MaterialReflective {
		t.Fatalf("second toggle: Material = %v, want reflective", o.Material)
	}
}

func TestControllerAddEmits(t *testing.T) {
	c, s, store := newTestController()
	src := c.AddSource(1, 2)
	o := c.AddObstacle(ObstacleConfig{Kind: ObstacleDisc, X: 3, Y: 4})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	assertEventTypes(t, store.types(), []EventType{EventAdd, EventAdd})
	if store.events[0].ElementID != src.ID || store.events[1].ElementID != o.ID {
		t.Errorf("add events = %+v", store.events)
	}
}

func TestControllerWithoutStore(t *testing.T) {
	s := NewScene()
	c := NewController(s)
	s.AddSource(0, 0)
	c.PointerDown(0, 0)
	c.PointerMove(5, 5)
	c.PointerUp(5, 5)
	c.DeleteSelected()
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if c.Scene() != s {
		t.Error("Scene() mismatch")
	}
}
