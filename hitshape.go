package raybox

// HitShape defines a pickup region for hit testing.
type HitShape interface {
	Contains(x, y float64) bool
}

// Rect also satisfies HitShape as an axis-aligned hit area.
var _ HitShape = Rect{}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// sourceHitShape returns the pickup circle of a light source.
func sourceHitShape(src *LightSource) HitCircle {
	return HitCircle{CenterX: src.X, CenterY: src.Y, Radius: src.Radius}
}

// obstacleContains tests (x, y) against an obstacle's pickup region. Discs
// use their radius. Segments rotate the point into the local frame and
// check the half-length/half-width box.
func obstacleContains(o *Obstacle, x, y float64) bool {
	switch o.Kind {
	case ObstacleDisc:
		return HitCircle{CenterX: o.X, CenterY: o.Y, Radius: o.Radius()}.Contains(x, y)
	case ObstacleSegment:
		lx, ly := sceneToLocal(o, x, y)
		box := Rect{X: -o.Size / 2, Y: -o.Width / 2, Width: o.Size, Height: o.Width}
		return box.Contains(lx, ly)
	default:
		return false
	}
}
