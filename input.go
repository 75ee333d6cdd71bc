package raybox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const wheelZoomStep = 1.1

// Command is a scene-edit or configuration request, usually bound to a key.
type Command uint8

const (
	CmdNone           Command = iota
	CmdAddSource              // add a light source at the view center
	CmdAddMirror              // add a segment at the view center, random angle
	CmdAddDisc                // add a disc at the view center
	CmdDelete                 // delete the selected element
	CmdDeselect               // clear the selection
	CmdToggleMaterial         // flip the selected obstacle's material
	CmdRotateCW               // rotate the selected obstacle clockwise
	CmdRotateCCW              // rotate the selected obstacle counter-clockwise
	CmdCenterSelected         // move the selected element to the view center
	CmdToggleRays             // show or hide rays
	CmdToggleTint             // switch between plain and per-bounce ray colors
	CmdMoreRays               // RayCount += 10
	CmdFewerRays              // RayCount -= 10
	CmdDenser                 // RayDensity += 10
	CmdSparser                // RayDensity -= 10
	CmdMoreBounces            // MaxReflections++
	CmdFewerBounces           // MaxReflections--
	CmdReset                  // restore the starting scene
)

var commandNames = map[string]Command{
	"addSource":      CmdAddSource,
	"addMirror":      CmdAddMirror,
	"addDisc":        CmdAddDisc,
	"delete":         CmdDelete,
	"deselect":       CmdDeselect,
	"toggleMaterial": CmdToggleMaterial,
	"rotateCW":       CmdRotateCW,
	"rotateCCW":      CmdRotateCCW,
	"center":         CmdCenterSelected,
	"toggleRays":     CmdToggleRays,
	"toggleTint":     CmdToggleTint,
	"moreRays":       CmdMoreRays,
	"fewerRays":      CmdFewerRays,
	"denser":         CmdDenser,
	"sparser":        CmdSparser,
	"moreBounces":    CmdMoreBounces,
	"fewerBounces":   CmdFewerBounces,
	"reset":          CmdReset,
}

// ParseCommand looks up a command by its script name (e.g. "addSource").
func ParseCommand(name string) (Command, bool) {
	c, ok := commandNames[name]
	return c, ok
}

type keyBinding struct {
	key ebiten.Key
	cmd Command
}

func defaultKeyBindings() []keyBinding {
	return []keyBinding{
		{ebiten.KeyS, CmdAddSource},
		{ebiten.KeyM, CmdAddMirror},
		{ebiten.KeyC, CmdAddDisc},
		{ebiten.KeyDelete, CmdDelete},
		{ebiten.KeyBackspace, CmdDelete},
		{ebiten.KeyEscape, CmdDeselect},
		{ebiten.KeyA, CmdToggleMaterial},
		{ebiten.KeyE, CmdRotateCW},
		{ebiten.KeyQ, CmdRotateCCW},
		{ebiten.KeyF, CmdCenterSelected},
		{ebiten.KeyR, CmdToggleRays},
		{ebiten.KeyT, CmdToggleTint},
		{ebiten.KeyArrowUp, CmdMoreRays},
		{ebiten.KeyArrowDown, CmdFewerRays},
		{ebiten.KeyArrowRight, CmdDenser},
		{ebiten.KeyArrowLeft, CmdSparser},
		{ebiten.KeyPageUp, CmdMoreBounces},
		{ebiten.KeyPageDown, CmdFewerBounces},
		{ebiten.KeyHome, CmdReset},
	}
}

// pointerState tracks the mouse between ticks.
type pointerState struct {
	down   bool
	button MouseButton // button captured at press time
	lastX  float64
	lastY  float64
}

// processInput is called from Game.Update. Injected events take priority
// over the real mouse for the tick they are consumed in.
func (g *Game) processInput() {
	if !g.processInjectedInput() {
		g.processMousePointer()
	}
	g.processKeys()
	g.processWheel()
}

// processMousePointer reads the ebiten cursor and buttons.
func (g *Game) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	g.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine for screen position
// (sx, sy). The primary button drives the controller, the secondary button
// cancels the selection, and the middle button pans the camera.
func (g *Game) processPointer(sx, sy float64, pressed bool, button MouseButton) {
	ps := &g.pointer
	wx, wy := g.Camera.ScreenToWorld(sx, sy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		switch button {
		case MouseButtonLeft:
			g.Controller.PointerDown(wx, wy)
		case MouseButtonRight:
			g.Controller.Cancel()
		}
	case !pressed && ps.down:
		if ps.button == MouseButtonLeft {
			g.Controller.PointerUp(wx, wy)
		}
		ps.down = false
	case pressed && ps.down:
		if sx != ps.lastX || sy != ps.lastY {
			switch ps.button {
			case MouseButtonLeft:
				g.Controller.PointerMove(wx, wy)
			case MouseButtonMiddle:
				// A running ScrollTo owns the camera position.
				if !g.Camera.Scrolling() {
					g.Camera.Pan(sx-ps.lastX, sy-ps.lastY)
				}
			}
		}
	}
	ps.lastX = sx
	ps.lastY = sy
}

func (g *Game) processKeys() {
	for _, b := range g.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.Apply(b.cmd)
		}
	}
}

func (g *Game) processWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 || g.Camera.Scrolling() {
		return
	}
	mx, my := ebiten.CursorPosition()
	factor := wheelZoomStep
	if dy < 0 {
		factor = 1 / wheelZoomStep
	}
	g.Camera.ZoomAt(float64(mx), float64(my), factor)
}
