package raybox

import "math"

const (
	defaultSourceRadius = 15.0
	defaultSegmentSize  = 200.0
	defaultDiscSize     = 50.0
	defaultSegmentWidth = 5.0
)

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, interaction events are forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries controller activity for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	ElementID ElementID
	X, Y      float64
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	// Angle is the obstacle angle after EventRotate.
	Angle float64
}

// LightSource is a point from which rays are emitted radially.
type LightSource struct {
	ID ElementID
	// X and Y are the source position in scene space.
	X, Y float64
	// Radius is the pickup radius used for hit testing and drawing.
	Radius float64
}

// Pos returns the source position as a Vec2.
func (s *LightSource) Pos() Vec2 { return Vec2{s.X, s.Y} }

// Obstacle is a scene object a ray may strike: a segment mirror or a disc.
type Obstacle struct {
	ID   ElementID
	Kind ObstacleKind
	// X and Y are the obstacle center in scene space.
	X, Y float64
	// Angle is the orientation in radians. Only meaningful for segments.
	Angle float64
	// Size is the segment length or the disc diameter.
	Size float64
	// Width is the segment thickness used for pickup and drawing.
	Width    float64
	Color    Color
	Material Material
}

// ObstacleConfig describes an obstacle to add. Zero Size and Width fall back
// to the kind defaults (segment 200 long and 5 wide, disc 50 across).
type ObstacleConfig struct {
	Kind     ObstacleKind
	X, Y     float64
	Size     float64
	Angle    float64
	Width    float64
	Color    Color
	Material Material
}

// Scene owns the light sources and obstacles. It is not safe for concurrent
// use; all mutation is expected on the game loop goroutine.
type Scene struct {
	sources   []*LightSource
	obstacles []*Obstacle
	nextID    ElementID
	debug     bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *Scene) newID() ElementID {
	s.nextID++
	return s.nextID
}

// AddSource adds a light source at (x, y) and returns it.
func (s *Scene) AddSource(x, y float64) *LightSource {
	src := &LightSource{ID: s.newID(), X: x, Y: y, Radius: defaultSourceRadius}
	s.sources = append(s.sources, src)
	return src
}

// AddObstacle adds an obstacle described by cfg and returns it.
func (s *Scene) AddObstacle(cfg ObstacleConfig) *Obstacle {
	size := cfg.Size
	if size <= 0 {
		if cfg.Kind == ObstacleDisc {
			size = defaultDiscSize
		} else {
			size = defaultSegmentSize
		}
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultSegmentWidth
	}
	c := cfg.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	o := &Obstacle{
		ID:       s.newID(),
		Kind:     cfg.Kind,
		X:        cfg.X,
		Y:        cfg.Y,
		Angle:    cfg.Angle,
		Size:     size,
		Width:    width,
		Color:    c,
		Material: cfg.Material,
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

// RemoveElement removes the source or obstacle with the given id.
// Returns false if no such element exists.
func (s *Scene) RemoveElement(id ElementID) bool {
	for i, src := range s.sources {
		if src.ID == id {
			copy(s.sources[i:], s.sources[i+1:])
			s.sources[len(s.sources)-1] = nil
			s.sources = s.sources[:len(s.sources)-1]
			return true
		}
	}
	for i, o := range s.obstacles {
		if o.ID == id {
			copy(s.obstacles[i:], s.obstacles[i+1:])
			s.obstacles[len(s.obstacles)-1] = nil
			s.obstacles = s.obstacles[:len(s.obstacles)-1]
			return true
		}
	}
	return false
}

// MoveElement sets the position of the element with the given id.
// Returns false if no such element exists.
func (s *Scene) MoveElement(id ElementID, x, y float64) bool {
	if src := s.Source(id); src != nil {
		src.X, src.Y = x, y
		return true
	}
	if o := s.ObstacleByID(id); o != nil {
		o.X, o.Y = x, y
		return true
	}
	return false
}

// RotateElement sets the angle of the obstacle with the given id.
// Light sources have no orientation; for them it returns false.
func (s *Scene) RotateElement(id ElementID, angle float64) bool {
	o := s.ObstacleByID(id)
	if o == nil {
		return false
	}
	o.Angle = math.Mod(angle, 2*math.Pi)
	return true
}

// SetMaterial changes the material of the obstacle with the given id.
func (s *Scene) SetMaterial(id ElementID, m Material) bool {
	o := s.ObstacleByID(id)
	if o == nil {
		return false
	}
	o.Material = m
	return true
}

// FindElementAt returns the first element whose pickup region contains
// (x, y). Sources are tested before obstacles, each in insertion order.
func (s *Scene) FindElementAt(x, y float64) (ElementID, bool) {
	for _, src := range s.sources {
		if sourceHitShape(src).Contains(x, y) {
			return src.ID, true
		}
	}
	for _, o := range s.obstacles {
		if obstacleContains(o, x, y) {
			return o.ID, true
		}
	}
	return 0, false
}

// Position returns the position of the element with the given id.
func (s *Scene) Position(id ElementID) (x, y float64, ok bool) {
	if src := s.Source(id); src != nil {
		return src.X, src.Y, true
	}
	if o := s.ObstacleByID(id); o != nil {
		return o.X, o.Y, true
	}
	return 0, 0, false
}

// Source returns the light source with the given id, or nil.
func (s *Scene) Source(id ElementID) *LightSource {
	if id == 0 {
		return nil
	}
	for _, src := range s.sources {
		if src.ID == id {
			return src
		}
	}
	return nil
}

// ObstacleByID returns the obstacle with the given id, or nil.
func (s *Scene) ObstacleByID(id ElementID) *Obstacle {
	if id == 0 {
		return nil
	}
	for _, o := range s.obstacles {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Contains reports whether an element with the given id exists.
func (s *Scene) Contains(id ElementID) bool {
	return s.Source(id) != nil || s.ObstacleByID(id) != nil
}

// Sources returns the light sources in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Sources() []*LightSource {
	return s.sources
}

// Obstacles returns the obstacles in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Obstacles() []*Obstacle {
	return s.obstacles
}

// Len returns the total number of sources and obstacles.
func (s *Scene) Len() int {
	return len(s.sources) + len(s.obstacles)
}

// Clear removes every element. IDs keep counting up.
func (s *Scene) Clear() {
	clear(s.sources)
	clear(s.obstacles)
	s.sources = s.sources[:0]
	s.obstacles = s.obstacles[:0]
}

// Reset replaces the scene contents with the starting layout for a viewport
// of the given size: one source at the center, a white mirror 200 units to
// the right at 45°, and a red disc 200 units to the left.
func (s *Scene) Reset(width, height float64) {
	s.Clear()
	cx, cy := width/2, height/2
	s.AddSource(cx, cy)
	s.AddObstacle(ObstacleConfig{
		Kind:  ObstacleSegment,
		X:     cx + 200,
		Y:     cy,
		Size:  200,
		Angle: math.Pi / 4,
		Color: ColorWhite,
	})
	s.AddObstacle(ObstacleConfig{
		Kind:  ObstacleDisc,
		X:     cx - 200,
		Y:     cy,
		Size:  100,
		Angle: -math.Pi / 4,
		Color: ColorRed,
	})
}
