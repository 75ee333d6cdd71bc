package raybox

import "time"

// Frame is everything a renderer needs for one refresh: value copies of the
// scene elements, the selection, and the traced ray segments. Frames are
// rebuilt from scratch every refresh; BuildFrame reuses the slices.
type Frame struct {
	Sources   []LightSource
	Obstacles []Obstacle
	Selected  ElementID
	ShowRays  bool
	Segments  []PathSegment
	Stats     TraceStats

	traceTime time.Duration
}

// BuildFrame fills f from the current scene state. When cfg.ShowRays is set
// every source is traced with tr; otherwise Segments is left empty. The
// scene is only read.
func BuildFrame(scene *Scene, selected ElementID, cfg TraceConfig, tr *Tracer, f *Frame) {
	f.Sources = f.Sources[:0]
	for _, src := range scene.sources {
		f.Sources = append(f.Sources, *src)
	}
	f.Obstacles = f.Obstacles[:0]
	for _, o := range scene.obstacles {
		f.Obstacles = append(f.Obstacles, *o)
	}
	f.Selected = selected
	f.ShowRays = cfg.ShowRays
	f.Segments = f.Segments[:0]
	f.Stats = TraceStats{}
	f.traceTime = 0

	if !cfg.ShowRays || len(scene.sources) == 0 {
		return
	}

	var t0 time.Time
	if scene.debug {
		t0 = time.Now()
	}
	f.Segments = tr.TraceScene(scene, cfg, f.Segments)
	f.Stats = tr.Stats()
	if scene.debug {
		f.traceTime = time.Since(t0)
	}
}
