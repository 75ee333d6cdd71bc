package raybox

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// ShowFPS draws the stats overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame trace and draw timings to stderr.
	Debug bool
	// Trace is the starting ray configuration. The zero value means
	// DefaultTraceConfig.
	Trace TraceConfig
	// Style is the draw style. The zero value means DefaultDrawStyle.
	Style DrawStyle
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string
	// Script, when set, is attached with SetTestRunner and drives input.
	Script *TestRunner
	// ObstacleColor is the color of mirrors and discs added with
	// CmdAddMirror and CmdAddDisc. The zero value means ColorWhite.
	ObstacleColor Color
}

const (
	defaultScreenshotDir = "screenshots"
	rotateStep           = math.Pi / 12
	editTweenDuration    = 0.15
	centerTweenDuration  = 0.3
)

// Game drives a Scene as an ebiten.Game. Update applies input to the
// Scene through the Controller; Draw rebuilds and paints a Frame. Both run
// on ebiten's game goroutine, so the scene is never touched concurrently.
type Game struct {
	Scene      *Scene
	Controller *Controller
	Camera     *Camera
	Config     TraceConfig
	Style      DrawStyle
	// AnimateEdits tweens rotations and recentering instead of applying
	// them instantly.
	AnimateEdits bool
	// ScreenshotDir is the directory Screenshot writes PNG files into.
	ScreenshotDir string
	// NewObstacleColor is applied to obstacles added by command.
	NewObstacleColor Color

	tracer   *Tracer
	frame    Frame
	renderer renderer
	tweens   tweenSet
	bindings []keyBinding

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	screenshotQueue []string

	showStats bool
	stats     *statsOverlay
	width     int
	height    int
}

// NewGame wires a scene, controller, camera, and tracer together.
func NewGame(scene *Scene, cfg RunConfig) *Game {
	trace := cfg.Trace
	if trace == (TraceConfig{}) {
		trace = DefaultTraceConfig()
	}
	style := cfg.Style
	if style == (DrawStyle{}) {
		style = DefaultDrawStyle()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	obstacleColor := cfg.ObstacleColor
	if obstacleColor == (Color{}) {
		obstacleColor = ColorWhite
	}
	w, h := cfg.Width, cfg.Height
	scene.SetDebugMode(cfg.Debug)

	g := &Game{
		Scene:            scene,
		Controller:       NewController(scene),
		Camera:           NewCamera(Rect{Width: float64(w), Height: float64(h)}),
		Config:           clampTraceConfig(trace),
		Style:            style,
		AnimateEdits:     true,
		ScreenshotDir:    dir,
		NewObstacleColor: obstacleColor,
		tracer:           NewTracer(),
		bindings:         defaultKeyBindings(),
		showStats:        cfg.ShowFPS,
		width:            w,
		height:           h,
	}
	if cfg.ShowFPS {
		g.stats = newStatsOverlay()
	}
	if cfg.Script != nil {
		g.SetTestRunner(cfg.Script)
	}
	return g
}

// Run creates a window and runs the game loop for scene. It blocks until the
// window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 1280
	}
	if cfg.Height == 0 {
		cfg.Height = 720
	}
	g := NewGame(scene, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Frame returns the most recently built frame. The returned value MUST NOT
// be mutated.
func (g *Game) Frame() *Frame {
	return &g.frame
}

// Update processes input, runs scripted steps, and advances animations.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.update(dt)
	return nil
}

func (g *Game) update(dt float32) {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInput()
	g.tweens.update(dt)
	g.Camera.update(dt)
	if g.stats != nil {
		g.stats.update(float64(dt))
	}
}

// Draw clears the screen, draws obstacles and sources, traces and strokes
// rays, then overlays stats and flushes queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.Scene.debug {
		t0 = time.Now()
	}

	g.buildFrame()
	g.renderer.draw(screen, &g.frame, g.Camera, g.Style)

	if g.Scene.debug {
		g.debugLog(frameStats{
			traceTime: g.frame.traceTime,
			drawTime:  time.Since(t0) - g.frame.traceTime,
			sources:   len(g.frame.Sources),
			obstacles: len(g.frame.Obstacles),
			trace:     g.frame.Stats,
		})
	}
	if g.showStats && g.stats != nil {
		g.stats.draw(screen, &g.frame, g.Config)
	}
	g.flushScreenshots(screen)
}

func (g *Game) buildFrame() {
	sel, _ := g.Controller.Selected()
	BuildFrame(g.Scene, sel, g.Config, g.tracer, &g.frame)
}

// Layout tracks the window size so the camera viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.Camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// spawnPoint is where new elements appear: the scene point at the center of
// the view.
func (g *Game) spawnPoint() (float64, float64) {
	b := g.Camera.VisibleBounds()
	return b.X + b.Width/2, b.Y + b.Height/2
}

// ScreenPosition returns where element id is drawn in screen pixels, or
// false if the scene has no such element.
func (g *Game) ScreenPosition(id ElementID) (sx, sy float64, ok bool) {
	x, y, ok := g.Scene.Position(id)
	if !ok {
		return 0, 0, false
	}
	sx, sy = g.Camera.WorldToScreen(x, y)
	return sx, sy, true
}

// Apply runs a scene-edit or configuration command.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CmdAddSource:
		x, y := g.spawnPoint()
		g.Controller.AddSource(x, y)
	case CmdAddMirror, CmdAddDisc:
		kind := ObstacleSegment
		if cmd == CmdAddDisc {
			kind = ObstacleDisc
		}
		x, y := g.spawnPoint()
		g.Controller.AddObstacle(ObstacleConfig{
			Kind:  kind,
			X:     x,
			Y:     y,
			Angle: rand.Float64() * math.Pi,
			Color: g.NewObstacleColor,
		})
	case CmdDelete:
		g.Controller.DeleteSelected()
	case CmdDeselect:
		g.Controller.Cancel()
	case CmdToggleMaterial:
		g.Controller.ToggleSelectedMaterial()
	case CmdRotateCW:
		g.rotateSelected(rotateStep)
	case CmdRotateCCW:
		g.rotateSelected(-rotateStep)
	case CmdCenterSelected:
		g.centerSelected()
	case CmdToggleRays:
		g.Config.ShowRays = !g.Config.ShowRays
	case CmdToggleTint:
		if g.Style.RayTint == DefaultRayTint() {
			g.Style.RayTint = BounceRayTint()
		} else {
			g.Style.RayTint = DefaultRayTint()
		}
	case CmdMoreRays:
		g.Config.RayCount += 10
	case CmdFewerRays:
		g.Config.RayCount -= 10
	case CmdDenser:
		g.Config.RayDensity += 10
	case CmdSparser:
		g.Config.RayDensity -= 10
	case CmdMoreBounces:
		g.Config.MaxReflections++
	case CmdFewerBounces:
		g.Config.MaxReflections--
	case CmdReset:
		g.Controller.Cancel()
		g.Scene.Reset(float64(g.width), float64(g.height))
		cx, cy := float64(g.width)/2, float64(g.height)/2
		if g.AnimateEdits {
			g.Camera.ScrollTo(cx, cy, centerTweenDuration, ease.OutCubic)
		} else {
			g.Camera.X, g.Camera.Y = cx, cy
			g.Camera.MarkDirty()
		}
	}
	g.Config = clampTraceConfig(g.Config)
}

func (g *Game) rotateSelected(delta float64) {
	id, ok := g.Controller.Selected()
	if !ok {
		return
	}
	o := g.Scene.ObstacleByID(id)
	if o == nil {
		return
	}
	if !g.AnimateEdits {
		g.Controller.RotateSelected(delta)
		return
	}
	if g.tweens.busy(id) {
		return
	}
	g.tweens.add(TweenAngle(g.Scene, id, o.Angle+delta, editTweenDuration, ease.OutCubic))
}

func (g *Game) centerSelected() {
	id, ok := g.Controller.Selected()
	if !ok {
		return
	}
	x, y := g.spawnPoint()
	if !g.AnimateEdits {
		g.Scene.MoveElement(id, x, y)
		return
	}
	if g.tweens.busy(id) {
		return
	}
	g.tweens.add(TweenPosition(g.Scene, id, x, y, centerTweenDuration, ease.InOutQuad))
}
