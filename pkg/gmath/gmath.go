// Package gmath holds the scalar numeric kernel shared by the vector,
// collision and hull packages: epsilon comparisons, exact and approximate
// transcendental functions, a quantized sin/cos table, angle helpers,
// rounding and a deterministic pseudo-random generator.
//
// Everything operates on float32. The fast variants trade accuracy for
// speed and must not be used where exact results matter.
package gmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Numeric constants
const (
	Pi     float32 = math.Pi
	TwoPi  float32 = Pi * 2
	HalfPi float32 = Pi * 0.5

	// Epsilon is the default tolerance of every near-zero and near-equal test.
	Epsilon float32 = 0.000001

	// MaxFloat is returned as the "infinite" sentinel, e.g. the slope of a
	// vertical direction.
	MaxFloat float32 = math.MaxFloat32
)

// IsNearlyZero reports whether |value| <= Epsilon.
func IsNearlyZero(value float32) bool {
	return IsNearlyZeroEps(value, Epsilon)
}

// IsNearlyZeroEps reports whether |value| <= epsilon. The boundary counts as zero.
func IsNearlyZeroEps(value, epsilon float32) bool {
	return value <= epsilon && -value <= epsilon
}

// IsNearlyEqual reports whether |a-b| <= Epsilon.
func IsNearlyEqual(a, b float32) bool {
	return IsNearlyEqualEps(a, b, Epsilon)
}

// IsNearlyEqualEps reports whether |a-b| <= epsilon. The boundary counts as equal.
func IsNearlyEqualEps(a, b, epsilon float32) bool {
	if a > b {
		return a-b <= epsilon
	}
	return b-a <= epsilon
}

func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits value to [low, high].
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value <= low {
		return low
	}
	if value >= high {
		return high
	}
	return value
}

// ClampPositive returns 0 for negative values.
func ClampPositive[T constraints.Signed | constraints.Float](value T) T {
	if value <= 0 {
		return 0
	}
	return value
}

// IsBetween reports whether min <= value <= max.
func IsBetween[T constraints.Ordered](value, min, max T) bool {
	return value >= min && value <= max
}

// Repeat wraps value into (min, max].
func Repeat(value, min, max int) int {
	span := max - min
	if span <= 0 {
		return min
	}
	for value > max {
		value -= span
	}
	for value <= min {
		value += span
	}
	return value
}

func IsEven(value int) bool { return value&1 == 0 }

func IsOdd(value int) bool { return value&1 == 1 }

// IsPowerOfTwo reports whether value is a positive power of two.
func IsPowerOfTwo(value int) bool {
	return value > 0 && value&(value-1) == 0
}

// NextPowerOfTwo returns the smallest power of two strictly greater than the
// highest set bit of value, and 1 for zero.
func NextPowerOfTwo(value int) int {
	if value <= 0 {
		return 1
	}
	p := 1
	for p <= value {
		p <<= 1
	}
	return p
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, alpha float32) float32 {
	return a + (b-a)*alpha
}

// IntPow computes base^exp for non-negative integer exponents by squaring.
func IntPow(base, exp int) int {
	result := 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}
