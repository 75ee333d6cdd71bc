package raybox

// ControllerState is the drag state of a Controller.
type ControllerState uint8

const (
	StateIdle     ControllerState = iota // no element grabbed
	StateDragging                        // an element follows the pointer
)

// Controller maps pointer and keyboard commands onto Scene mutations.
//
// Pointer-down over an element selects it and starts a drag, remembering the
// offset between pointer and element so the element does not snap to the
// pointer. Pointer-up ends the drag but keeps the selection, so a Delete
// issued afterwards still applies. Cancel (the secondary action) and
// pointer-down over empty space clear the selection.
type Controller struct {
	scene *Scene
	store EntityStore

	state    ControllerState
	selected ElementID
	offset   Vec2
	start    Vec2
	moved    bool
}

// NewController creates a controller editing scene.
func NewController(scene *Scene) *Controller {
	return &Controller{scene: scene}
}

// Scene returns the scene the controller edits.
func (c *Controller) Scene() *Scene {
	return c.scene
}

// SetEntityStore sets the optional ECS bridge.
func (c *Controller) SetEntityStore(store EntityStore) {
	c.store = store
}

// State returns the current drag state.
func (c *Controller) State() ControllerState {
	return c.state
}

// Selected returns the selected element, if any. A selection whose element
// was removed by other means is dropped here.
func (c *Controller) Selected() (ElementID, bool) {
	if c.selected != 0 && !c.scene.Contains(c.selected) {
		c.selected = 0
		c.state = StateIdle
	}
	return c.selected, c.selected != 0
}

// DragOffset returns the pointer-to-element offset captured at pointer-down.
func (c *Controller) DragOffset() Vec2 {
	return c.offset
}

// PointerDown handles a primary press at scene position (x, y). It returns
// true if an element was grabbed.
func (c *Controller) PointerDown(x, y float64) bool {
	id, ok := c.scene.FindElementAt(x, y)
	if !ok {
		if c.selected != 0 {
			c.emit(EventDeselect, c.selected, x, y)
		}
		c.selected = 0
		c.state = StateIdle
		return false
	}
	ex, ey, _ := c.scene.Position(id)
	c.selected = id
	c.offset = Vec2{x - ex, y - ey}
	c.start = Vec2{x, y}
	c.moved = false
	c.state = StateDragging
	c.emit(EventSelect, id, x, y)
	return true
}

// PointerMove moves the dragged element to the pointer minus the grab
// offset. It does nothing unless a drag is in progress.
func (c *Controller) PointerMove(x, y float64) {
	if c.state != StateDragging {
		return
	}
	if !c.scene.MoveElement(c.selected, x-c.offset.X, y-c.offset.Y) {
		c.selected = 0
		c.state = StateIdle
		return
	}
	if !c.moved {
		c.moved = true
		c.emit(EventDragStart, c.selected, x, y)
	}
	c.emit(EventDrag, c.selected, x, y)
}

// PointerUp ends a drag. The element stays selected.
func (c *Controller) PointerUp(x, y float64) {
	if c.state != StateDragging {
		return
	}
	if c.moved {
		c.emit(EventDragEnd, c.selected, x, y)
	}
	c.state = StateIdle
	c.moved = false
}

// Cancel is the secondary action: it ends any drag and clears the selection.
func (c *Controller) Cancel() {
	if c.selected != 0 {
		c.emit(EventDeselect, c.selected, 0, 0)
	}
	c.selected = 0
	c.state = StateIdle
	c.moved = false
}

// DeleteSelected removes the selected element from the scene and returns to
// idle. It returns false, doing nothing, when nothing is selected.
func (c *Controller) DeleteSelected() bool {
	id, ok := c.Selected()
	if !ok {
		return false
	}
	x, y, _ := c.scene.Position(id)
	c.scene.RemoveElement(id)
	c.selected = 0
	c.state = StateIdle
	c.moved = false
	c.emit(EventDelete, id, x, y)
	return true
}

// RotateSelected turns the selected obstacle by delta radians.
func (c *Controller) RotateSelected(delta float64) bool {
	id, ok := c.Selected()
	if !ok {
		return false
	}
	o := c.scene.ObstacleByID(id)
	if o == nil {
		return false
	}
	c.scene.RotateElement(id, o.Angle+delta)
	c.emitRotate(o)
	return true
}

// ToggleSelectedMaterial flips the selected obstacle between reflective and
// absorptive.
func (c *Controller) ToggleSelectedMaterial() bool {
	id, ok := c.Selected()
	if !ok {
		return false
	}
	o := c.scene.ObstacleByID(id)
	if o == nil {
		return false
	}
	m := MaterialAbsorptive
	if o.Material == MaterialAbsorptive {
		m = MaterialReflective
	}
	c.scene.SetMaterial(id, m)
	c.emit(EventMaterial, id, o.X, o.Y)
	return true
}

// AddSource adds a light source at (x, y) and reports it to the store.
func (c *Controller) AddSource(x, y float64) *LightSource {
	src := c.scene.AddSource(x, y)
	c.emit(EventAdd, src.ID, x, y)
	return src
}

// AddObstacle adds an obstacle and reports it to the store.
func (c *Controller) AddObstacle(cfg ObstacleConfig) *Obstacle {
	o := c.scene.AddObstacle(cfg)
	c.emit(EventAdd, o.ID, o.X, o.Y)
	return o
}

func (c *Controller) emit(t EventType, id ElementID, x, y float64) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(InteractionEvent{
		Type:      t,
		ElementID: id,
		X:         x,
		Y:         y,
		StartX:    c.start.X,
		StartY:    c.start.Y,
	})
}

func (c *Controller) emitRotate(o *Obstacle) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(InteractionEvent{
		Type:      EventRotate,
		ElementID: o.ID,
		X:         o.X,
		Y:         o.Y,
		Angle:     o.Angle,
	})
}
