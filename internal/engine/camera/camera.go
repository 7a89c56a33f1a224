// Package camera provides the orbit controls that drive the room's camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Limits clamps free orbiting around the look-at target.
// Angles are in radians; polar is measured from straight up.
type Limits struct {
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32
	MinAzimuth  float32
	MaxAzimuth  float32
}

// Unlimited allows any distance and angle.
func Unlimited() Limits {
	inf := float32(gomath.Inf(1))
	return Limits{
		MinDistance: 0,
		MaxDistance: inf,
		MinPolar:    0,
		MaxPolar:    gomath.Pi,
		MinAzimuth:  -inf,
		MaxAzimuth:  inf,
	}
}

// Contains reports whether a spherical offset lies inside the limits.
func (l Limits) Contains(s math.Spherical) bool {
	const eps = 1e-4
	return s.Radius >= l.MinDistance-eps && s.Radius <= l.MaxDistance+eps &&
		s.Polar >= l.MinPolar-eps && s.Polar <= l.MaxPolar+eps &&
		s.Azimuth >= l.MinAzimuth-eps && s.Azimuth <= l.MaxAzimuth+eps
}

// Apply clamps s into the limits.
func (l Limits) Apply(s math.Spherical) math.Spherical {
	s.Radius = math.Clamp(s.Radius, l.MinDistance, l.MaxDistance)
	s.Polar = math.Clamp(s.Polar, l.MinPolar, l.MaxPolar)
	s.Azimuth = math.Clamp(s.Azimuth, l.MinAzimuth, l.MaxAzimuth)
	return s
}

// Avoid degenerate views when the camera sits exactly on the up axis.
const polarEpsilon = 1e-3

// OrbitControls orbits a camera around a look-at target. While disabled it
// ignores user input but still accepts poses set by code.
type OrbitControls struct {
	position math.Vec3
	target   math.Vec3
	limits   Limits
	enabled  bool

	// FOV is the vertical field of view in degrees.
	FOV       float32
	NearPlane float32
	FarPlane  float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSpeed        float32
}

// NewOrbitControls creates enabled, unlimited controls with default settings.
func NewOrbitControls() *OrbitControls {
	return &OrbitControls{
		position:        math.V3(0, 0, 10),
		limits:          Unlimited(),
		enabled:         true,
		FOV:             50,
		NearPlane:       0.1,
		FarPlane:        100,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSpeed:        0.02,
	}
}

// Position returns the camera position in world space.
func (c *OrbitControls) Position() math.Vec3 {
	return c.position
}

// Target returns the look-at point.
func (c *OrbitControls) Target() math.Vec3 {
	return c.target
}

// SetPose places the camera without applying limits. Used while flying.
func (c *OrbitControls) SetPose(position, target math.Vec3) {
	c.position = position
	c.target = target
}

// SetTarget moves the look-at point, keeping the camera position.
func (c *OrbitControls) SetTarget(target math.Vec3) {
	c.target = target
}

// Spherical returns the camera offset from the target.
func (c *OrbitControls) Spherical() math.Spherical {
	return math.SphericalFrom(c.position.Sub(c.target))
}

// Enabled reports whether user input is accepted.
func (c *OrbitControls) Enabled() bool {
	return c.enabled
}

// SetEnabled turns orbit, pan and zoom input on or off.
func (c *OrbitControls) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Limits returns the active constraint bundle.
func (c *OrbitControls) Limits() Limits {
	return c.limits
}

// SetLimits installs a constraint bundle and clamps the current pose into it.
func (c *OrbitControls) SetLimits(l Limits) {
	c.limits = l
	c.clamp()
}

// HandleDrag orbits based on mouse drag delta in pixels.
func (c *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	if !c.enabled {
		return
	}
	s := c.Spherical()
	s.Azimuth -= deltaX * c.DragSensitivity
	s.Polar -= deltaY * c.DragSensitivity
	c.setSpherical(s)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitControls) HandleZoom(delta float32) {
	if !c.enabled {
		return
	}
	s := c.Spherical()
	s.Radius -= delta * s.Radius * c.ZoomSensitivity
	c.setSpherical(s)
}

// HandleMovement pans camera and target together on the ground plane.
func (c *OrbitControls) HandleMovement(forward, right, up float32) {
	if !c.enabled {
		return
	}
	s := c.Spherical()
	speed := s.Radius * c.PanSpeed

	sinA := float32(gomath.Sin(float64(s.Azimuth)))
	cosA := float32(gomath.Cos(float64(s.Azimuth)))

	// Forward points from the camera towards the target on the XZ plane
	move := math.V3(
		-sinA*forward+cosA*right,
		up,
		-cosA*forward-sinA*right,
	).Scale(speed)

	c.position = c.position.Add(move)
	c.target = c.target.Add(move)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitControls) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.target, math.V3(0, 1, 0))
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitControls) ProjectionMatrix(aspect float32) math.Mat4 {
	fov := c.FOV * gomath.Pi / 180
	return math.Perspective(fov, aspect, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection * view.
func (c *OrbitControls) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

func (c *OrbitControls) clamp() {
	c.setSpherical(c.Spherical())
}

func (c *OrbitControls) setSpherical(s math.Spherical) {
	s = c.limits.Apply(s)
	s.Polar = math.Clamp(s.Polar, polarEpsilon, gomath.Pi-polarEpsilon)
	c.position = c.target.Add(s.Vec3())
}
