package raybox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenField selects which element property a TweenGroup writes.
type tweenField uint8

const (
	tweenPosition tweenField = iota
	tweenAngle
)

// TweenGroup animates an element's position or an obstacle's angle through
// the Scene mutation methods. Call Update(dt) each tick. If the element is
// removed from the scene, the group stops immediately.
//
// There is no global animation manager; callers (usually Game) own the
// groups and call Update themselves.
type TweenGroup struct {
	scene  *Scene
	id     ElementID
	field  tweenField
	tweens [2]*gween.Tween
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// element.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.scene.Contains(g.id) {
		g.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	switch g.field {
	case tweenPosition:
		g.scene.MoveElement(g.id, vals[0], vals[1])
	case tweenAngle:
		g.scene.RotateElement(g.id, vals[0])
	}
}

// TweenPosition creates a TweenGroup that moves element id to (toX, toY)
// over duration seconds. It returns nil if the element does not exist.
func TweenPosition(scene *Scene, id ElementID, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	x, y, ok := scene.Position(id)
	if !ok {
		return nil
	}
	g := &TweenGroup{scene: scene, id: id, field: tweenPosition, count: 2}
	g.tweens[0] = gween.New(float32(x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(y), float32(toY), duration, fn)
	return g
}

// TweenAngle creates a TweenGroup that rotates obstacle id to angle to over
// duration seconds. It returns nil if id is not an obstacle.
func TweenAngle(scene *Scene, id ElementID, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	o := scene.ObstacleByID(id)
	if o == nil {
		return nil
	}
	g := &TweenGroup{scene: scene, id: id, field: tweenAngle, count: 1}
	g.tweens[0] = gween.New(float32(o.Angle), float32(to), duration, fn)
	return g
}

// tweenSet is a list of running TweenGroups that drops finished ones.
type tweenSet struct {
	groups []*TweenGroup
}

func (ts *tweenSet) add(g *TweenGroup) {
	if g != nil {
		ts.groups = append(ts.groups, g)
	}
}

func (ts *tweenSet) update(dt float32) {
	n := 0
	for _, g := range ts.groups {
		g.Update(dt)
		if !g.Done {
			ts.groups[n] = g
			n++
		}
	}
	clear(ts.groups[n:])
	ts.groups = ts.groups[:n]
}

// busy reports whether any running group targets id.
func (ts *tweenSet) busy(id ElementID) bool {
	for _, g := range ts.groups {
		if g.id == id {
			return true
		}
	}
	return false
}
