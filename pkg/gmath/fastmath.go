package gmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Bit-trick constants of the approximations.
const (
	invSqrtMagic uint32 = 0x5f375a86

	// Schraudolph exponent: 2^23/ln(2) scaled mantissa step and the
	// exponent bias shifted by the error-minimizing correction.
	expScale = 12102203.161561485
	expBias  = 1064866805.0

	ln2 float32 = math.Ln2
)

func Sqrt(value float32) float32 {
	return math32.Sqrt(value)
}

// FastSqrt approximates the square root with the inverse square root bit
// trick refined by one Newton step. Relative error stays below 0.2% for
// normal positive inputs. Values nearly 0 and nearly 1 return exactly 0 and 1.
func FastSqrt(x float32) float32 {
	if IsNearlyZero(x) {
		return 0
	}
	if IsNearlyEqual(x, 1) {
		return 1
	}
	return x * FastInvSqrt(x)
}

// FastInvSqrt approximates 1/sqrt(x) for positive x.
func FastInvSqrt(x float32) float32 {
	half := 0.5 * x
	y := math.Float32frombits(invSqrtMagic - math.Float32bits(x)>>1)
	return y * (1.5 - half*y*y)
}

func Exp(value float32) float32 {
	return math32.Exp(value)
}

// FastExp approximates e^value by writing a linear function of value straight
// into the IEEE-754 exponent and mantissa bits. Relative error is about 3% for
// inputs in [-80, 80]; outside that range the result saturates to 0 or +Inf.
func FastExp(value float32) float32 {
	if value < -80 {
		return 0
	}
	if value > 80 {
		return float32(math.Inf(1))
	}
	bits := int64(expScale*float64(value) + expBias)
	return math.Float32frombits(uint32(bits))
}

// Ln is the natural logarithm.
func Ln(value float32) float32 {
	return math32.Log(value)
}

// Log10 is the decimal logarithm.
func Log10(value float32) float32 {
	return math32.Log10(value)
}

// Log returns the logarithm of value to the given base.
func Log(base, value float32) float32 {
	return math32.Log(value) / math32.Log(base)
}

// FastLn approximates the natural logarithm of a positive value. The exponent
// is read from the float bits and the mantissa m in [1,2) goes through the
// rational approximation 6(m-1)/(m+1+4*sqrt(m)). Relative error is well below
// one percent away from 1, absolute error below 1e-3 near 1.
func FastLn(x float32) float32 {
	if x <= 0 {
		return float32(math.Inf(-1))
	}
	bits := math.Float32bits(x)
	exponent := int32(bits>>23&0xff) - 127
	m := math.Float32frombits(bits&0x007fffff | 0x3f800000)
	return float32(exponent)*ln2 + 6*(m-1)/(m+1+4*math32.Sqrt(m))
}

func Pow(value, power float32) float32 {
	return math32.Pow(value, power)
}

// FastPow approximates value^power as FastExp(power * FastLn(value)).
func FastPow(value, power float32) float32 {
	switch power {
	case 0:
		return 1
	case 1:
		return value
	}
	return FastExp(power * FastLn(value))
}

func Tan(value float32) float32 {
	return Sin(value) / Cos(value)
}

func Sinh(value float32) float32 {
	return 0.5 * (Exp(value) - Exp(-value))
}

func Cosh(value float32) float32 {
	return 0.5 * (Exp(value) + Exp(-value))
}

func Tanh(value float32) float32 {
	e := Exp(2 * value)
	return (e - 1) / (e + 1)
}

func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// FastAcos approximates acos for value in [-1,1] with a cubic polynomial,
// absolute error below 1.3e-4 rad.
func FastAcos(value float32) float32 {
	x := Abs(value)
	ret := float32(-0.0187293)
	ret = ret*x + 0.0742610
	ret = ret*x - 0.2121144
	ret = ret*x + HalfPi
	ret *= math32.Sqrt(1 - x)
	if value < 0 {
		return Pi - ret
	}
	return ret
}
