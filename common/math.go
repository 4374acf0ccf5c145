package common

import (
	"math"
)

// Epsilon is the tolerance used for degenerate-vector and "has it moved" checks.
const Epsilon float32 = 0.000001

// TwoPi is 2π as float32.
const TwoPi = float32(2 * math.Pi)

// Clamp restricts v to the closed interval [lo, hi].
// An inverted interval (lo > hi) collapses to lo rather than failing.
//
// Parameters:
//   - v: value to restrict
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v restricted to [lo, hi]
func Clamp[T ~float32 | ~float64 | ~int](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Atan2 is math.Atan2 for float32 operands.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Atan is math.Atan for a float32 operand.
func Atan(v float32) float32 {
	return float32(math.Atan(float64(v)))
}

// Tan is math.Tan for a float32 operand.
func Tan(v float32) float32 {
	return float32(math.Tan(float64(v)))
}

// Pow is math.Pow for float32 operands.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// SinCos returns the sine and cosine of v as float32.
func SinCos(v float32) (sin, cos float32) {
	s, c := math.Sincos(float64(v))
	return float32(s), float32(c)
}
