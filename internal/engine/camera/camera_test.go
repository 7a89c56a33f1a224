package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/portfolio-room/pkg/math"
)

func TestDisabledControlsIgnoreInput(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(0, 2, 6), math.V3(0, 0, 0))
	c.SetEnabled(false)

	before := c.Position()
	c.HandleDrag(100, 50)
	c.HandleZoom(3)
	c.HandleMovement(1, 1, 0)

	if c.Position() != before || c.Target() != (math.Vec3{}) {
		t.Errorf("disabled controls moved: pos=%v target=%v", c.Position(), c.Target())
	}
}

func TestSetPoseIgnoresLimits(t *testing.T) {
	c := NewOrbitControls()
	c.SetLimits(Limits{MinDistance: 1, MaxDistance: 2, MinPolar: 0.5, MaxPolar: 1.5, MinAzimuth: -1, MaxAzimuth: 1})
	far := math.V3(0, 0, 50)
	c.SetPose(far, math.Vec3{})
	if c.Position() != far {
		t.Errorf("SetPose clamped position to %v", c.Position())
	}
}

func TestSetLimitsClampsPose(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(0, 0, 50), math.Vec3{})
	c.SetLimits(Limits{MinDistance: 1, MaxDistance: 5, MinPolar: 0.5, MaxPolar: 2, MinAzimuth: -1, MaxAzimuth: 1})

	if d := c.Spherical().Radius; d > 5.0001 {
		t.Errorf("distance after SetLimits = %f, want <= 5", d)
	}
}

func TestZoomClampedToLimits(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(0, 0, 4), math.Vec3{})
	c.SetLimits(Limits{MinDistance: 2, MaxDistance: 6, MinPolar: 0.1, MaxPolar: 3, MinAzimuth: -3, MaxAzimuth: 3})

	for i := 0; i < 50; i++ {
		c.HandleZoom(1)
	}
	if d := c.Spherical().Radius; gomath.Abs(float64(d-2)) > 0.001 {
		t.Errorf("zoomed-in distance = %f, want 2", d)
	}
	for i := 0; i < 50; i++ {
		c.HandleZoom(-1)
	}
	if d := c.Spherical().Radius; gomath.Abs(float64(d-6)) > 0.001 {
		t.Errorf("zoomed-out distance = %f, want 6", d)
	}
}

func TestDragClampedToLimits(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(0, 0, 5), math.Vec3{})
	l := Limits{MinDistance: 1, MaxDistance: 10, MinPolar: 1.0, MaxPolar: 2.0, MinAzimuth: -0.5, MaxAzimuth: 0.5}
	c.SetLimits(l)

	c.HandleDrag(-10000, -10000)
	s := c.Spherical()
	if !l.Contains(s) {
		t.Errorf("dragged pose %+v escaped limits", s)
	}
	if gomath.Abs(float64(s.Azimuth-0.5)) > 0.001 {
		t.Errorf("azimuth = %f, want clamped to 0.5", s.Azimuth)
	}
	if gomath.Abs(float64(s.Polar-2.0)) > 0.001 {
		t.Errorf("polar = %f, want clamped to 2.0", s.Polar)
	}
	// Drag keeps distance
	if gomath.Abs(float64(s.Radius-5)) > 0.001 {
		t.Errorf("radius changed by drag: %f", s.Radius)
	}
}

func TestMovementPansTargetAndCamera(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(0, 3, 4), math.V3(0, 0, 0))
	offset := c.Position().Sub(c.Target())

	c.HandleMovement(1, 0, 0)

	if c.Target() == (math.Vec3{}) {
		t.Fatal("target did not move")
	}
	if got := c.Position().Sub(c.Target()); !got.ApproxEqual(offset, 0.0001) {
		t.Errorf("pan changed the orbit offset: %v -> %v", offset, got)
	}
	// Camera looks towards -Z, so forward moves the target to negative Z
	if c.Target().Z >= 0 {
		t.Errorf("forward pan moved target to %v, want negative Z", c.Target())
	}
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewOrbitControls()
	c.SetPose(math.V3(3, 4, 5), math.V3(1, 1, 1))
	vp := c.ViewProjection(16.0 / 9.0)

	p := vp.MulPoint(math.V3(1, 1, 1))
	x, y := p.X, p.Y
	if gomath.Abs(float64(x)) > 0.0001 || gomath.Abs(float64(y)) > 0.0001 {
		t.Errorf("target projects to (%f, %f), want screen center", x, y)
	}
}

func TestUnlimitedContainsAnything(t *testing.T) {
	l := Unlimited()
	for _, off := range []math.Vec3{{X: 0, Y: 1, Z: 0}, {X: 5, Y: -3, Z: 2}, {X: -100, Y: 0.5, Z: -100}} {
		if !l.Contains(math.SphericalFrom(off)) {
			t.Errorf("Unlimited rejected %v", off)
		}
	}
}
