// Package picking turns pointer positions into world rays and tests them
// against object bounds.
package picking

import (
	gomath "math"

	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.V3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max: math.V3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
	}
}

// Box creates an AABB from a center point and full size.
func Box(center, size math.Vec3) AABB {
	half := size.Scale(0.5)
	return NewAABB(center.Sub(half), center.Add(half))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	near := invViewProj.MulPoint(math.V3(ndcX, ndcY, -1))
	far := invViewProj.MulPoint(math.V3(ndcX, ndcY, 1))

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	// Slab test per axis
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
