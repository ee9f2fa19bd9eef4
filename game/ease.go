package game

import "github.com/chewxy/math32"

// EaseOutCubic maps linear progress t in [0, 1] onto a decelerating curve.
func EaseOutCubic(t float32) float32 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float32) float32 {
	return math32.Max(0, math32.Min(1, t))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
