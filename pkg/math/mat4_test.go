package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if m[i] != want {
			t.Errorf("Identity[%d] = %f, want %f", i, m[i], want)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := TranslateScale(Vec3{1, 2, 3}, Vec3{2, 2, 2})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateScale(t *testing.T) {
	m := TranslateScale(Vec3{5, 10, 15}, Vec3{2, 3, 4})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("translation: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestMulPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", TranslateScale(Vec3{10, 20, 30}, Vec3{1, 1, 1}), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", TranslateScale(Vec3{}, Vec3{2, 2, 2}), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"scale then translate", TranslateScale(Vec3{1, 0, 0}, Vec3{2, 2, 2}), Vec3{1, 1, 1}, Vec3{3, 2, 2}},
	}
	for _, tt := range tests {
		if got := tt.m.MulPoint(tt.p); got != tt.want {
			t.Errorf("%s: MulPoint(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// Near and far planes land on the clip-space depth limits
	if got := m.MulPoint(Vec3{0, 0, -0.1}); abs(got.Z+1) > 0.0001 {
		t.Errorf("near plane depth = %f, want -1", got.Z)
	}
	if got := m.MulPoint(Vec3{0, 0, -100}); abs(got.Z-1) > 0.0001 {
		t.Errorf("far plane depth = %f, want 1", got.Z)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 2, 5}
	center := Vec3{0, 2, 0}

	m := LookAt(eye, center, Vec3{0, 1, 0})

	// Eye maps to the view-space origin
	if got := m.MulPoint(eye); !got.ApproxEqual(Vec3{}, 0.0001) {
		t.Errorf("LookAt eye = %v, want origin", got)
	}
	// Center lies straight ahead on -Z
	if got := m.MulPoint(center); !got.ApproxEqual(Vec3{0, 0, -5}, 0.0001) {
		t.Errorf("LookAt center = %v, want (0, 0, -5)", got)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"translate scale", TranslateScale(Vec3{1, 2, 3}, Vec3{2, 2, 2})},
		{"view", LookAt(Vec3{3, 4, 5}, Vec3{0, 1, 0}, Vec3{0, 1, 0})},
		{"view projection", Perspective(0.8, 1.5, 0.1, 50).Mul(LookAt(Vec3{3, 4, 5}, Vec3{0, 1, 0}, Vec3{0, 1, 0}))},
	}
	id := Identity()
	for _, tt := range tests {
		result := tt.m.Mul(tt.m.Inverse())
		for i := 0; i < 16; i++ {
			if abs(result[i]-id[i]) > 0.001 {
				t.Errorf("%s: M * M^-1 element %d = %f, want %f", tt.name, i, result[i], id[i])
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
