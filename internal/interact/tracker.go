package interact

import (
	gomath "math"

	"github.com/Faultbox/portfolio-room/internal/engine/picking"
)

// DefaultDragThreshold is how far, in pixels, the pointer may travel between
// press and release for the gesture to still count as a click.
const DefaultDragThreshold = 5

// IsClick reports whether a press at (downX, downY) released at (upX, upY)
// is a click rather than a drag.
func IsClick(downX, downY, upX, upY int, threshold float64) bool {
	dx := float64(upX - downX)
	dy := float64(upY - downY)
	return gomath.Hypot(dx, dy) <= threshold
}

type press struct {
	x, y   int
	object *Object
}

// Tracker finds the object under the pointer and turns raw pointer events
// into enter, leave and click calls on the protocol.
type Tracker struct {
	proto     *Protocol
	objects   []*Object
	hovered   *Object
	pressed   *press
	threshold float64
}

// NewTracker creates a tracker. threshold <= 0 selects DefaultDragThreshold.
func NewTracker(proto *Protocol, threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Tracker{proto: proto, threshold: threshold}
}

// Add registers objects for picking.
func (t *Tracker) Add(objects ...*Object) {
	t.objects = append(t.objects, objects...)
}

// Remove unregisters the object with the given ID. A hovered object is left
// first so its hover state does not linger.
func (t *Tracker) Remove(id string) {
	for i, o := range t.objects {
		if o.ID != id {
			continue
		}
		if t.hovered == o {
			t.proto.PointerLeave(o)
			t.hovered = nil
		}
		if t.pressed != nil && t.pressed.object == o {
			t.pressed = nil
		}
		t.objects = append(t.objects[:i:i], t.objects[i+1:]...)
		return
	}
}

// Objects returns the registered objects.
func (t *Tracker) Objects() []*Object {
	return t.objects
}

// Hovered returns the object under the pointer, or nil.
func (t *Tracker) Hovered() *Object {
	return t.hovered
}

// Pick returns the nearest object hit by ray, or nil.
func (t *Tracker) Pick(ray picking.Ray) *Object {
	var (
		best     *Object
		bestDist = float32(gomath.MaxFloat32)
	)
	for _, o := range t.objects {
		if d, hit := ray.IntersectAABB(o.Bounds); hit && d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// PointerMove updates hover for a pointer now over ray.
func (t *Tracker) PointerMove(ray picking.Ray) {
	t.setHovered(t.Pick(ray))
}

// PointerExit is called when the pointer leaves the viewport.
func (t *Tracker) PointerExit() {
	t.setHovered(nil)
}

// PointerDown records a press at pixel (x, y).
func (t *Tracker) PointerDown(x, y int, ray picking.Ray) {
	t.pressed = &press{x: x, y: y, object: t.Pick(ray)}
}

// PointerUp finishes a press. It clicks the object when the pointer was
// released over the object it was pressed on without dragging, and reports
// whether a click happened.
func (t *Tracker) PointerUp(x, y int, ray picking.Ray) bool {
	p := t.pressed
	t.pressed = nil
	if p == nil || p.object == nil {
		return false
	}
	if !IsClick(p.x, p.y, x, y, t.threshold) {
		return false
	}
	if t.Pick(ray) != p.object {
		return false
	}
	t.proto.Click(p.object)
	return true
}

func (t *Tracker) setHovered(o *Object) {
	if o == t.hovered {
		return
	}
	if t.hovered != nil {
		t.proto.PointerLeave(t.hovered)
	}
	t.hovered = o
	if o != nil {
		t.proto.PointerEnter(o)
	}
}
