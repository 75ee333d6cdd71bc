package raybox

import "math"

// HitEpsilon is the smallest ray parameter accepted as a hit. Candidates at
// or behind the ray origin (t <= HitEpsilon) are discarded. A reflected ray
// starts exactly on the surface it left, and floating-point error would
// otherwise report that surface again at t ≈ 1e-15.
const HitEpsilon = 1e-9

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// RayFromAngle builds a ray at origin pointing along angle (radians,
// measured clockwise from +X in Y-down scene space).
func RayFromAngle(origin Vec2, angle float64) Ray {
	sin, cos := math.Sincos(angle)
	return Ray{Origin: origin, Dir: Vec2{cos, sin}}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Intersection is the result of a ray/obstacle query. Because ray directions
// are unit vectors, T is also the distance traveled from the ray origin.
type Intersection struct {
	Point  Vec2
	Normal Vec2
	T      float64
}

// Endpoints returns the two ends of a segment obstacle, derived from its
// center, angle, and length.
func (o *Obstacle) Endpoints() (a, b Vec2) {
	half := o.Size / 2
	ax, ay := localToScene(o, -half, 0)
	bx, by := localToScene(o, half, 0)
	return Vec2{ax, ay}, Vec2{bx, by}
}

// Radius returns half of Size. For a disc this is its radius.
func (o *Obstacle) Radius() float64 {
	return o.Size / 2
}

// IntersectSegment solves ray/segment intersection as a 2x2 linear system:
//
//	origin + t*dir = a + u*(b - a)
//
// It rejects a parallel ray (zero denominator), a hit outside the finite
// segment (u outside [0, 1]), and a hit behind the origin (t <= HitEpsilon).
func IntersectSegment(r Ray, o *Obstacle) (Intersection, bool) {
	a, b := o.Endpoints()
	e := b.Sub(a)
	denom := r.Dir.Cross(e)
	if denom == 0 {
		return Intersection{}, false
	}
	w := a.Sub(r.Origin)
	t := w.Cross(e) / denom
	u := w.Cross(r.Dir) / denom
	if u < 0 || u > 1 || t <= HitEpsilon {
		return Intersection{}, false
	}
	p := r.At(t)
	return Intersection{Point: p, Normal: NormalAt(o, p), T: t}, true
}

// IntersectDisc solves the ray/circle quadratic t² + 2bt + c = 0 with
// b = (origin-center)·dir and c = |origin-center|² - r². The near root wins
// when it lies in front of the origin; otherwise the far root is used (the
// origin is inside the disc). A negative discriminant, or both roots at or
// behind the origin, is no hit.
func IntersectDisc(r Ray, o *Obstacle) (Intersection, bool) {
	center := Vec2{o.X, o.Y}
	radius := o.Radius()
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return Intersection{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t <= HitEpsilon {
		t = -b + sq
		if t <= HitEpsilon {
			return Intersection{}, false
		}
	}
	p := r.At(t)
	return Intersection{Point: p, Normal: NormalAt(o, p), T: t}, true
}

// Intersect dispatches to the kind-specific intersection query.
func Intersect(r Ray, o *Obstacle) (Intersection, bool) {
	switch o.Kind {
	case ObstacleSegment:
		return IntersectSegment(r, o)
	case ObstacleDisc:
		return IntersectDisc(r, o)
	default:
		return Intersection{}, false
	}
}

// NormalAt returns the unit surface normal of o at p. Discs use the outward
// radial direction. Segments use the fixed perpendicular of their angle on
// both faces; the reflection formula is insensitive to the normal's sign.
func NormalAt(o *Obstacle, p Vec2) Vec2 {
	if o.Kind == ObstacleDisc {
		n := p.Sub(Vec2{o.X, o.Y}).Normalize()
		if n == (Vec2{}) {
			return Vec2{1, 0}
		}
		return n
	}
	sin, cos := math.Sincos(o.Angle)
	return Vec2{-sin, cos}
}

// Reflect mirrors direction d about the unit normal n: d - 2(d·n)n.
func Reflect(d, n Vec2) Vec2 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}
