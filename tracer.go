package raybox

import "math"

// EndReason records why a path segment ends.
type EndReason uint8

const (
	EndReflected   EndReason = iota // struck a reflective obstacle and bounced
	EndAbsorbed                     // struck an absorptive obstacle
	EndExhausted                    // ran out of travel distance
	EndBounceLimit                  // struck a reflective obstacle with no bounces left
)

// PathSegment is one straight piece of a ray's trace.
type PathSegment struct {
	Start, End Vec2
	// Bounce is the number of reflections before this segment (0 for the
	// segment leaving the source).
	Bounce int
	Reason EndReason
}

// RayPath lazily traces one ray through a scene. Each call to Next computes
// a single segment. Once Next returns false the path is finished for good;
// create a new RayPath to trace again.
//
// A RayPath reads the scene but never mutates it. The scene must not change
// while the path is being iterated.
type RayPath struct {
	scene *Scene
	cfg   TraceConfig

	ray         Ray
	traveled    float64
	reflections int
	done        bool
	seg         PathSegment

	// tests counts obstacle intersection queries, for debug stats.
	tests int
}

// NewRayPath prepares to trace ray r through scene under cfg.
func NewRayPath(scene *Scene, r Ray, cfg TraceConfig) *RayPath {
	return &RayPath{scene: scene, cfg: cfg, ray: r}
}

// Segment returns the segment produced by the last successful Next.
func (p *RayPath) Segment() PathSegment {
	return p.seg
}

// Reflections returns how many times the ray has bounced so far.
func (p *RayPath) Reflections() int {
	return p.reflections
}

// Traveled returns the distance covered by completed segments.
func (p *RayPath) Traveled() float64 {
	return p.traveled
}

// Next advances the trace by one segment. It returns false when the ray
// has been absorbed, exhausted its length, or used up its bounces.
func (p *RayPath) Next() bool {
	if p.done {
		return false
	}
	remaining := p.cfg.RayLength - p.traveled
	if remaining <= 0 {
		p.done = true
		return false
	}

	hit, obstacle := p.closestHit(remaining)
	start := p.ray.Origin

	if obstacle == nil {
		end := p.ray.At(remaining)
		p.seg = PathSegment{Start: start, End: end, Bounce: p.reflections, Reason: EndExhausted}
		p.traveled = p.cfg.RayLength
		p.done = true
		return true
	}

	p.seg = PathSegment{Start: start, End: hit.Point, Bounce: p.reflections}
	p.traveled += hit.T

	if obstacle.Material == MaterialAbsorptive {
		p.seg.Reason = EndAbsorbed
		p.done = true
		return true
	}
	if p.reflections >= p.cfg.MaxReflections {
		p.seg.Reason = EndBounceLimit
		p.done = true
		return true
	}

	p.seg.Reason = EndReflected
	p.ray = Ray{Origin: hit.Point, Dir: Reflect(p.ray.Dir, hit.Normal).Normalize()}
	p.reflections++
	return true
}

// closestHit returns the nearest intersection within maxT. Ties keep the
// earliest obstacle in insertion order.
func (p *RayPath) closestHit(maxT float64) (Intersection, *Obstacle) {
	var best Intersection
	var bestObs *Obstacle
	for _, o := range p.scene.obstacles {
		p.tests++
		hit, ok := Intersect(p.ray, o)
		if !ok || hit.T > maxT {
			continue
		}
		if bestObs == nil || hit.T < best.T {
			best = hit
			bestObs = o
		}
	}
	return best, bestObs
}

// RayAngles returns the emission angles for cfg: RayCount rays evenly
// stepped across RayDensity percent of a full turn, starting at 0.
func RayAngles(cfg TraceConfig) []float64 {
	return appendRayAngles(nil, cfg)
}

func appendRayAngles(dst []float64, cfg TraceConfig) []float64 {
	if cfg.RayCount <= 0 {
		return dst
	}
	step := 2 * math.Pi * (cfg.RayDensity / 100) / float64(cfg.RayCount)
	for i := 0; i < cfg.RayCount; i++ {
		dst = append(dst, float64(i)*step)
	}
	return dst
}

// TraceStats counts the work done by the last TraceScene call.
type TraceStats struct {
	Rays          int
	Segments      int
	ObstacleTests int
}

// Tracer builds ray paths for whole frames. It keeps scratch buffers between
// frames but holds no scene state; every call traces from scratch.
type Tracer struct {
	angles []float64
	path   RayPath
	stats  TraceStats
}

// NewTracer creates a Tracer.
func NewTracer() *Tracer {
	return &Tracer{}
}

// Stats returns counters from the most recent TraceScene.
func (t *Tracer) Stats() TraceStats {
	return t.stats
}

// TraceSource appends every segment of every ray emitted by src to dst.
func (t *Tracer) TraceSource(scene *Scene, src *LightSource, cfg TraceConfig, dst []PathSegment) []PathSegment {
	t.angles = appendRayAngles(t.angles[:0], cfg)
	origin := src.Pos()
	for _, a := range t.angles {
		t.path = RayPath{scene: scene, cfg: cfg, ray: RayFromAngle(origin, a)}
		for t.path.Next() {
			dst = append(dst, t.path.seg)
		}
		t.stats.Rays++
		t.stats.ObstacleTests += t.path.tests
	}
	return dst
}

// TraceScene appends the segments of all sources, in source order, to dst.
func (t *Tracer) TraceScene(scene *Scene, cfg TraceConfig, dst []PathSegment) []PathSegment {
	t.stats = TraceStats{}
	start := len(dst)
	for _, src := range scene.sources {
		dst = t.TraceSource(scene, src, cfg, dst)
	}
	t.stats.Segments = len(dst) - start
	return dst
}
