package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for the HUD.
var (
	ColorWhite = Color{1, 1, 1, 1}

	ColorBackdrop    = Color{0.02, 0.02, 0.05, 0.45}
	ColorPanelBg     = Color{0.08, 0.08, 0.12, 0.92}
	ColorPanelBorder = Color{0.3, 0.3, 0.4, 1}
	ColorItemNormal  = Color{0.15, 0.15, 0.2, 0.9}
	ColorItemActive  = Color{0.95, 0.6, 0.25, 1}
	ColorMuted       = Color{0.6, 0.2, 0.2, 0.9}
	ColorUnmuted     = Color{0.2, 0.6, 0.35, 0.9}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// Rect is a screen-space rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
