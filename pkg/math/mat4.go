package math

import "math"

// Mat4 is a column-major 4x4 matrix, laid out the way OpenGL uploads it:
// element (row, col) lives at index col*4+row.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// TranslateScale scales by s around the origin, then moves by t.
func TranslateScale(t, s Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Perspective returns a right-handed projection into OpenGL clip space.
// fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	focal := float32(1 / math.Tan(float64(fovY)/2))
	depth := near - far

	var m Mat4
	m[0] = focal / aspect
	m[5] = focal
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}

// LookAt returns the view matrix of a camera at eye facing center.
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	m := Identity()
	for i, axis := range [3]Vec3{right, trueUp, forward.Scale(-1)} {
		m[i] = axis.X
		m[4+i] = axis.Y
		m[8+i] = axis.Z
		m[12+i] = -axis.Dot(eye)
	}
	return m
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulPoint transforms p as a point (w = 1) and divides by the resulting w.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w == 0 || w == 1 {
		return Vec3{x, y, z}
	}
	return Vec3{x / w, y / w, z / w}
}

// Ptr returns a pointer to the first element for glUniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Inverse returns the inverse of m, or the identity when m is singular.
// It expands along pairs of 2x2 minors of the top and bottom halves.
func (m Mat4) Inverse() Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	return Mat4{
		(a11*b11 - a12*b10 + a13*b09) * inv,
		(a02*b10 - a01*b11 - a03*b09) * inv,
		(a31*b05 - a32*b04 + a33*b03) * inv,
		(a22*b04 - a21*b05 - a23*b03) * inv,
		(a12*b08 - a10*b11 - a13*b07) * inv,
		(a00*b11 - a02*b08 + a03*b07) * inv,
		(a32*b02 - a30*b05 - a33*b01) * inv,
		(a20*b05 - a22*b02 + a23*b01) * inv,
		(a10*b10 - a11*b08 + a13*b06) * inv,
		(a01*b08 - a00*b10 - a03*b06) * inv,
		(a30*b04 - a31*b02 + a33*b00) * inv,
		(a21*b02 - a20*b04 - a23*b00) * inv,
		(a11*b07 - a10*b09 - a12*b06) * inv,
		(a00*b09 - a01*b07 + a02*b06) * inv,
		(a31*b01 - a30*b03 - a32*b00) * inv,
		(a20*b03 - a21*b01 + a22*b00) * inv,
	}
}
