package raybox

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay shows FPS/TPS and the current trace settings. The text is
// refreshed every ~0.5 seconds into a small offscreen image.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
	op         ebiten.DrawImageOptions
}

func newStatsOverlay() *statsOverlay {
	// 240x96 fits the six lines of statsText.
	return &statsOverlay{img: ebiten.NewImage(240, 96), dirty: true}
}

func (o *statsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0
	o.dirty = true
}

func (o *statsOverlay) draw(screen *ebiten.Image, f *Frame, cfg TraceConfig) {
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), f, cfg))
	}
	o.op.GeoM.Reset()
	screen.DrawImage(o.img, &o.op)
}

func statsText(fps, tps float64, f *Frame, cfg TraceConfig) string {
	rays := "off"
	if cfg.ShowRays {
		rays = "on"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nrays: %s  count: %d\ndensity: %.0f%%\nbounces: %d  length: %.0f\nsegments: %d\nelements: %d",
		fps, tps, rays, cfg.RayCount, cfg.RayDensity, cfg.MaxReflections, cfg.RayLength,
		len(f.Segments), len(f.Sources)+len(f.Obstacles))
}
