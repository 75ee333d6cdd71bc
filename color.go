package raybox

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Intended for package-level palettes.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// RayTint controls how ray segments are colored by bounce count.
type RayTint struct {
	// Hue is the starting hue in degrees for segments leaving the source.
	Hue float64
	// HueStep is added to the hue for every bounce.
	HueStep float64
	// Saturation and Value are the HSV components shared by all bounces.
	Saturation, Value float64
	// Alpha is the opacity of unbounced segments.
	Alpha float64
	// Falloff multiplies the opacity on every bounce.
	Falloff float64
}

// DefaultRayTint returns a faint white ray style, matching the plain
// translucent strokes of the sandbox.
func DefaultRayTint() RayTint {
	return RayTint{Hue: 0, HueStep: 0, Saturation: 0, Value: 1, Alpha: 0.2, Falloff: 1}
}

// BounceRayTint returns a tint that walks the hue wheel per bounce and fades
// reflected light.
func BounceRayTint() RayTint {
	return RayTint{Hue: 55, HueStep: 40, Saturation: 0.8, Value: 1, Alpha: 0.35, Falloff: 0.85}
}

// Color returns the tint for a segment with the given bounce count.
func (t RayTint) Color(bounce int) Color {
	h := math.Mod(t.Hue+t.HueStep*float64(bounce), 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, clamp01(t.Saturation), clamp01(t.Value))
	a := t.Alpha
	if t.Falloff > 0 && t.Falloff != 1 {
		a *= math.Pow(t.Falloff, float64(bounce))
	}
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for ebiten drawing.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
