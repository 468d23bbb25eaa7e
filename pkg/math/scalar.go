package math

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into the half-open range [lo, hi) by modular arithmetic.
// Used for cyclic quantities such as angles and particle coordinates.
func Wrap(v, lo, hi float32) float32 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	w := float32(math.Mod(float64(v-lo), float64(span)))
	if w < 0 {
		w += span
	}
	return lo + w
}

// Sin is a float32 convenience wrapper.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 convenience wrapper.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
