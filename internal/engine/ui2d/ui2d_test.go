package ui2d

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		x, y float32
		want bool
	}{
		{10, 20, true},
		{109, 69, true},
		{110, 20, false},
		{9, 30, false},
		{50, 70, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAppendQuad(t *testing.T) {
	v := appendQuad(nil, 1, 2, 3, 4, ColorWhite)
	if len(v) != 6*7 {
		t.Fatalf("quad has %d floats, want %d", len(v), 6*7)
	}
	// Third vertex is the bottom-right corner
	if v[14] != 4 || v[15] != 6 {
		t.Errorf("bottom-right = (%v, %v), want (4, 6)", v[14], v[15])
	}
}

func TestOrthoMatrixMapsCorners(t *testing.T) {
	m := OrthoMatrix(0, 800, 600, 0, -1, 1)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	near := func(a, b float32) bool { return a-b < 1e-5 && b-a < 1e-5 }

	if x, y := apply(0, 0); !near(x, -1) || !near(y, 1) {
		t.Errorf("top-left -> (%v, %v), want (-1, 1)", x, y)
	}
	if x, y := apply(800, 600); !near(x, 1) || !near(y, -1) {
		t.Errorf("bottom-right -> (%v, %v), want (1, -1)", x, y)
	}
}

func TestColorHelpers(t *testing.T) {
	c := RGB(255, 0, 51)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 1 {
		t.Errorf("RGB = %+v", c)
	}
	if got := RGB(0, 0, 0).Lighten(0.5); got.R != 0.5 {
		t.Errorf("Lighten = %+v", got)
	}
	if got := ColorWhite.Darken(0.25); got.G != 0.75 {
		t.Errorf("Darken = %+v", got)
	}
	if got := ColorWhite.WithAlpha(0.3); got.A != 0.3 || got.R != 1 {
		t.Errorf("WithAlpha = %+v", got)
	}
}
