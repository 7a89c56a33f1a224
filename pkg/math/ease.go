package math

// EaseOutCubic decelerates towards t=1. Input is clamped to [0, 1].
func EaseOutCubic(t float32) float32 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// Lerp interpolates between two scalars.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
