package raybox

import (
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 1, A: 1}},
		{"#00ff00", Color{G: 1, A: 1}},
		{"#ffffff", ColorWhite},
		{"#f00", Color{R: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor: %v", err)
			}
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || got.A != 1 {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#gggggg"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) = nil error", in)
		}
	}
}

func TestMustParseHexColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseHexColor("nope")
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#ff0000", "#336699", "#000000"} {
		if got := MustParseHexColor(s).Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
}

func TestDefaultRayTintIsPlain(t *testing.T) {
	tint := DefaultRayTint()
	for bounce := 0; bounce < 5; bounce++ {
		c := tint.Color(bounce)
		if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-1) > 1e-9 || math.Abs(c.B-1) > 1e-9 {
			t.Errorf("bounce %d color = %v, want white", bounce, c)
		}
		assertNear(t, "alpha", c.A, 0.2)
	}
}

func TestBounceRayTintFades(t *testing.T) {
	tint := BounceRayTint()
	prev := tint.Color(0)
	assertNear(t, "alpha 0", prev.A, 0.35)
	for bounce := 1; bounce < 6; bounce++ {
		c := tint.Color(bounce)
		if c.A >= prev.A {
			t.Errorf("bounce %d alpha %v not below %v", bounce, c.A, prev.A)
		}
		if c == prev {
			t.Errorf("bounce %d color unchanged", bounce)
		}
		prev = c
	}
}

func TestRayTintHueWraps(t *testing.T) {
	tint := RayTint{Hue: 0, HueStep: 120, Saturation: 1, Value: 1, Alpha: 1, Falloff: 1}
	red := tint.Color(0)
	again := tint.Color(3)
	if math.Abs(red.R-again.R) > 1e-9 || math.Abs(red.G-again.G) > 1e-9 || math.Abs(red.B-again.B) > 1e-9 {
		t.Errorf("hue 360 = %v, want %v", again, red)
	}
	if math.Abs(red.R-1) > 1e-9 || red.G > 1e-9 || red.B > 1e-9 {
		t.Errorf("hue 0 = %v, want red", red)
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.R != 127 || c.G != 63 || c.B != 0 || c.A != 127 {
		t.Errorf("toRGBA = %+v, want {127 63 0 127}", c)
	}
	r, _, _, a := c.RGBA()
	if r != 127*0x101 || a != 127*0x101 {
		t.Errorf("RGBA() = %d, %d", r, a)
	}
}
