package raybox

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the starting layout and draw defaults.
var (
	// ColorWhite is the default obstacle color.
	ColorWhite  = MustParseHexColor("#ffffff")
	ColorRed    = MustParseHexColor("#ff0000")
	ColorBlack  = MustParseHexColor("#000000")
	ColorYellow = MustParseHexColor("#ffff00")
)

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API. Scene space has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle in screen or scene space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ElementID identifies a light source or obstacle within a Scene.
// The zero value means "no element".
type ElementID uint32

// ObstacleKind selects the geometry of an Obstacle.
type ObstacleKind uint8

const (
	ObstacleSegment ObstacleKind = iota // finite, double-sided mirror line
	ObstacleDisc                        // solid circle
)

// String returns the lowercase kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSegment:
		return "segment"
	case ObstacleDisc:
		return "disc"
	default:
		return "unknown"
	}
}

// Material decides what happens to a ray on contact.
type Material uint8

const (
	MaterialReflective Material = iota // bounce about the surface normal
	MaterialAbsorptive                 // terminate the ray at the hit point
)

// String returns the lowercase material name.
func (m Material) String() string {
	switch m {
	case MaterialReflective:
		return "reflective"
	case MaterialAbsorptive:
		return "absorptive"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event emitted by the Controller.
type EventType uint8

const (
	EventSelect    EventType = iota // pointer-down grabbed an element
	EventDragStart                  // first pointer move while dragging
	EventDrag                       // each pointer move while dragging
	EventDragEnd                    // pointer released after dragging
	EventDeselect                   // selection cleared
	EventDelete                     // selected element removed
	EventAdd                        // element added through the controller
	EventRotate                     // selected obstacle rotated
	EventMaterial                   // selected obstacle material toggled
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
