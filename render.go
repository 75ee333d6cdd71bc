package raybox

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage is a 3x3 white image; whiteSubImage is its center texel, used
// as the source for solid-color triangles so sampling never bleeds.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(ColorWhite.toRGBA())
}

// DrawStyle controls how a Frame is drawn.
type DrawStyle struct {
	Background      Color
	SourceColor     Color
	SelectionColor  Color
	SelectionWidth  float32
	AbsorptiveShade float64 // multiplier applied to absorptive obstacle colors
	RayWidth        float32
	RayTint         RayTint
}

// DefaultDrawStyle returns the sandbox look: black background, yellow
// sources, translucent white rays.
func DefaultDrawStyle() DrawStyle {
	return DrawStyle{
		Background:      ColorBlack,
		SourceColor:     ColorYellow,
		SelectionColor:  Color{0.3, 0.8, 1, 1},
		SelectionWidth:  2,
		AbsorptiveShade: 0.35,
		RayWidth:        1,
		RayTint:         DefaultRayTint(),
	}
}

// renderer holds per-frame scratch for DrawFrame.
type renderer struct {
	vertices []ebiten.Vertex
	indices  []uint16
	triOp    ebiten.DrawTrianglesOptions
}

// DrawFrame paints f onto screen through cam: background, obstacles,
// sources, selection highlight, then ray segments. A nil cam draws scene
// coordinates as screen pixels.
func DrawFrame(screen *ebiten.Image, f *Frame, cam *Camera, style DrawStyle) {
	var r renderer
	r.draw(screen, f, cam, style)
}

func (r *renderer) draw(screen *ebiten.Image, f *Frame, cam *Camera, style DrawStyle) {
	screen.Fill(style.Background.toRGBA())

	view := identityTransform
	zoom := 1.0
	if cam != nil {
		view = cam.computeViewMatrix()
		zoom = cam.Zoom
	}

	for i := range f.Obstacles {
		r.drawObstacle(screen, &f.Obstacles[i], view, zoom, style)
	}
	for i := range f.Sources {
		src := &f.Sources[i]
		sx, sy := transformPoint(view, src.X, src.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(src.Radius*zoom),
			style.SourceColor.toRGBA(), false)
	}
	r.drawSelection(screen, f, view, zoom, style)

	if !f.ShowRays {
		return
	}
	for _, seg := range f.Segments {
		x0, y0 := transformPoint(view, seg.Start.X, seg.Start.Y)
		x1, y1 := transformPoint(view, seg.End.X, seg.End.Y)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1),
			style.RayWidth, style.RayTint.Color(seg.Bounce).toRGBA(), false)
	}
}

func obstacleDrawColor(o *Obstacle, style DrawStyle) Color {
	c := o.Color
	if o.Material == MaterialAbsorptive {
		k := style.AbsorptiveShade
		c.R, c.G, c.B = c.R*k, c.G*k, c.B*k
	}
	return c
}

func (r *renderer) drawObstacle(screen *ebiten.Image, o *Obstacle, view [6]float64, zoom float64, style DrawStyle) {
	c := obstacleDrawColor(o, style)
	switch o.Kind {
	case ObstacleDisc:
		sx, sy := transformPoint(view, o.X, o.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(o.Radius()*zoom), c.toRGBA(), false)
	case ObstacleSegment:
		corners := segmentCorners(o, view)
		r.fillQuad(screen, corners, c)
	}
}

// segmentCorners returns the four screen-space corners of a segment's
// drawn rectangle, in winding order.
func segmentCorners(o *Obstacle, view [6]float64) [4]Vec2 {
	hw, hh := o.Size/2, o.Width/2
	m := multiplyAffine(view, obstacleTransform(o))
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec2
	for i, p := range local {
		x, y := transformPoint(m, p.X, p.Y)
		out[i] = Vec2{x, y}
	}
	return out
}

func (r *renderer) fillQuad(screen *ebiten.Image, corners [4]Vec2, c Color) {
	// DrawTriangles takes premultiplied vertex colors scaled by alpha.
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)

	r.vertices = r.vertices[:0]
	for _, p := range corners {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.indices = append(r.indices[:0], 0, 1, 2, 0, 2, 3)
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, &r.triOp)
}

func (r *renderer) drawSelection(screen *ebiten.Image, f *Frame, view [6]float64, zoom float64, style DrawStyle) {
	if f.Selected == 0 {
		return
	}
	clr := style.SelectionColor.toRGBA()
	w := style.SelectionWidth
	for i := range f.Sources {
		src := &f.Sources[i]
		if src.ID == f.Selected {
			sx, sy := transformPoint(view, src.X, src.Y)
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(src.Radius*zoom)+w, w, clr, false)
			return
		}
	}
	for i := range f.Obstacles {
		o := &f.Obstacles[i]
		if o.ID != f.Selected {
			continue
		}
		switch o.Kind {
		case ObstacleDisc:
			sx, sy := transformPoint(view, o.X, o.Y)
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(o.Radius()*zoom)+w, w, clr, false)
		case ObstacleSegment:
			c := segmentCorners(o, view)
			for j := range c {
				a, b := c[j], c[(j+1)%len(c)]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, false)
			}
		}
		return
	}
}
