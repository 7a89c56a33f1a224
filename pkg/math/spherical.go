package math

import "math"

// Spherical is an offset expressed as radius, polar angle and azimuth.
// Polar is measured from the +Y axis (0 looks straight down onto the target).
// Azimuth is measured around +Y starting at +Z.
type Spherical struct {
	Radius  float32
	Polar   float32
	Azimuth float32
}

// SphericalFrom converts a cartesian offset to spherical coordinates.
func SphericalFrom(offset Vec3) Spherical {
	r := offset.Length()
	if r == 0 {
		return Spherical{}
	}
	cosPolar := clamp64(float64(offset.Y/r), -1, 1)
	return Spherical{
		Radius:  r,
		Polar:   float32(math.Acos(cosPolar)),
		Azimuth: float32(math.Atan2(float64(offset.X), float64(offset.Z))),
	}
}

// Vec3 converts back to a cartesian offset.
func (s Spherical) Vec3() Vec3 {
	sinPolar := float32(math.Sin(float64(s.Polar)))
	return Vec3{
		X: s.Radius * sinPolar * float32(math.Sin(float64(s.Azimuth))),
		Y: s.Radius * float32(math.Cos(float64(s.Polar))),
		Z: s.Radius * sinPolar * float32(math.Cos(float64(s.Azimuth))),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
