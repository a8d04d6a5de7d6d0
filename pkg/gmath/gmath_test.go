package gmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearlyZeroAndEqual(t *testing.T) {
	assert.True(t, IsNearlyZero(0))
	assert.True(t, IsNearlyZero(Epsilon))
	assert.True(t, IsNearlyZero(-Epsilon))
	assert.False(t, IsNearlyZero(2*Epsilon))

	assert.True(t, IsNearlyEqual(1, 1))
	assert.True(t, IsNearlyEqualEps(1, 1.5, 0.5))
	assert.True(t, IsNearlyEqualEps(1.5, 1, 0.5))
	assert.False(t, IsNearlyEqualEps(1, 1.6, 0.5))
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "factorial of %d", tt.n)
	}

	for _, n := range []int{-1, 21, 100} {
		_, err := Factorial(n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "factorial of %d", n)
	}
}

func TestBinomialCoefficient(t *testing.T) {
	tests := []struct {
		n, k int
		want int64
	}{
		{4, 0, 1},
		{4, 4, 1},
		{5, 2, 10},
		{5, 3, 10},
		{20, 10, 184756},
		{20, 1, 20},
	}
	for _, tt := range tests {
		got, err := BinomialCoefficient(tt.n, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d over %d", tt.n, tt.k)
	}

	_, err := BinomialCoefficient(21, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = BinomialCoefficient(3, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = BinomialCoefficient(3, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFastSqrt(t *testing.T) {
	assert.Equal(t, float32(0), FastSqrt(0))
	assert.Equal(t, float32(0), FastSqrt(Epsilon/2))
	assert.Equal(t, float32(1), FastSqrt(1))
	assert.Equal(t, float32(1), FastSqrt(1+Epsilon/2))

	for x := float32(1.01); x <= 1e6; x *= 1.07 {
		exact := float32(math.Sqrt(float64(x)))
		got := FastSqrt(x)
		assert.InEpsilon(t, exact, got, 0.015, "sqrt(%v)", x)
	}
}

func TestFastExp(t *testing.T) {
	for i := -400; i <= 400; i++ {
		v := float32(i) / 40
		assert.InEpsilon(t, Exp(v), FastExp(v), 0.045, "exp(%v)", v)
	}
	assert.Equal(t, float32(0), FastExp(-100))
	assert.True(t, math.IsInf(float64(FastExp(100)), 1))
}

func TestFastLn(t *testing.T) {
	for x := float32(0.001); x < 1e5; x *= 1.05 {
		assert.InDelta(t, Ln(x), FastLn(x), 1e-3, "ln(%v)", x)
	}
	assert.True(t, math.IsInf(float64(FastLn(0)), -1))
}

func TestFastPow(t *testing.T) {
	assert.Equal(t, float32(1), FastPow(5, 0))
	assert.Equal(t, float32(5), FastPow(5, 1))
	assert.InEpsilon(t, float32(25), FastPow(5, 2), 0.05)
	assert.InEpsilon(t, Pow(2.5, 3.5), FastPow(2.5, 3.5), 0.05)
}

func TestLogarithms(t *testing.T) {
	assert.InDelta(t, 2, Log10(100), 1e-6)
	assert.InDelta(t, 3, Log(2, 8), 1e-5)
	assert.InDelta(t, 1, Ln(math.E), 1e-6)
}

func TestHyperbolic(t *testing.T) {
	for _, v := range []float32{-2, -0.5, 0, 0.5, 2} {
		assert.InDelta(t, math.Sinh(float64(v)), Sinh(v), 1e-5)
		assert.InDelta(t, math.Cosh(float64(v)), Cosh(v), 1e-5)
		assert.InDelta(t, math.Tanh(float64(v)), Tanh(v), 1e-5)
	}
}

func TestFastAcos(t *testing.T) {
	for i := -100; i <= 100; i++ {
		v := float32(i) / 100
		assert.InDelta(t, math.Acos(float64(v)), FastAcos(v), 2e-4, "acos(%v)", v)
	}
}

func TestMinMaxClamp(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, float32(3), Max[float32](2, 3))
	assert.Equal(t, float32(1), Clamp[float32](5, -1, 1))
	assert.Equal(t, float32(-1), Clamp[float32](-5, -1, 1))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, -1, 1))
	assert.Equal(t, 0, ClampPositive(-3))
	assert.Equal(t, float32(2), Abs[float32](-2))
	assert.True(t, IsBetween(1, 1, 2))
	assert.False(t, IsBetween(3, 1, 2))
}

func TestIntegerHelpers(t *testing.T) {
	assert.Equal(t, 1024, IntPow(2, 10))
	assert.Equal(t, 1, IntPow(7, 0))
	assert.Equal(t, 243, IntPow(3, 5))

	assert.True(t, IsEven(4))
	assert.True(t, IsOdd(7))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(65))
	assert.False(t, IsPowerOfTwo(0))

	assert.Equal(t, 1, NextPowerOfTwo(0))
	assert.Equal(t, 8, NextPowerOfTwo(5))
	assert.Equal(t, 16, NextPowerOfTwo(8))

	assert.Equal(t, 3, Repeat(13, 0, 10))
	assert.Equal(t, 8, Repeat(-2, 0, 10))
	assert.Equal(t, 10, Repeat(0, 0, 10))
	assert.Equal(t, 5, Repeat(5, 0, 10))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(0), Lerp(0, 10, 0))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
}

func BenchmarkSqrt(b *testing.B) {
	b.Run("Sqrt", func(b *testing.B) {
		var sink float32
		for i := 0; i < b.N; i++ {
			sink += Sqrt(float32(i&1023) + 1)
		}
		_ = sink
	})
	b.Run("FastSqrt", func(b *testing.B) {
		var sink float32
		for i := 0; i < b.N; i++ {
			sink += FastSqrt(float32(i&1023) + 1)
		}
		_ = sink
	})
}

func BenchmarkExp(b *testing.B) {
	b.Run("Exp", func(b *testing.B) {
		var sink float32
		for i := 0; i < b.N; i++ {
			sink += Exp(float32(i&63) / 8)
		}
		_ = sink
	})
	b.Run("FastExp", func(b *testing.B) {
		var sink float32
		for i := 0; i < b.N; i++ {
			sink += FastExp(float32(i&63) / 8)
		}
		_ = sink
	})
}
