package gmath

import "math"

// Lookup table layout: 2^SinBits entries cover one full turn.
const (
	SinBits  = 12
	SinMask  = ^(-1 << SinBits)
	SinCount = SinMask + 1

	radToIndex float32 = SinCount / (2 * math.Pi)
	degToIndex float32 = SinCount / 360.0
)

var sinTable = buildSinTable()

func buildSinTable() [SinCount]float32 {
	var table [SinCount]float32
	for i := range table {
		table[i] = float32(math.Sin((float64(i) + 0.5) / SinCount * 2 * math.Pi))
	}
	// cardinal directions are exact
	for deg := 0; deg < 360; deg += 90 {
		table[int(float32(deg)*degToIndex)&SinMask] = float32(math.Sin(float64(deg) * math.Pi / 180))
	}
	return table
}

// Sin looks up sin(rad) in the quantized table. The index is rad scaled by
// SinCount/2π, rounded to nearest and wrapped by SinMask, so any input angle is
// accepted. Absolute error is bounded by about 2π/SinCount.
func Sin(rad float32) float32 {
	return sinTable[roundIndex(rad*radToIndex)&SinMask]
}

// Cos is Sin phase-shifted by π/2.
func Cos(rad float32) float32 {
	return sinTable[roundIndex((rad+HalfPi)*radToIndex)&SinMask]
}

func SinDeg(deg float32) float32 {
	return sinTable[roundIndex(deg*degToIndex)&SinMask]
}

func CosDeg(deg float32) float32 {
	return sinTable[roundIndex((deg+90)*degToIndex)&SinMask]
}

// roundIndex rounds half away from zero; the mask handles negative indices
// through two's complement wrap.
func roundIndex(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func ToDegrees(rad float32) float32 {
	return rad * (180 / Pi)
}

func ToRadians(deg float32) float32 {
	return deg * (Pi / 180)
}

// UnwindRadians wraps angle into [-π, π].
func UnwindRadians(angle float32) float32 {
	for angle > Pi {
		angle -= TwoPi
	}
	for angle < -Pi {
		angle += TwoPi
	}
	return angle
}

// UnwindDegrees wraps angle into [-180, 180].
func UnwindDegrees(angle float32) float32 {
	for angle > 180 {
		angle -= 360
	}
	for angle < -180 {
		angle += 360
	}
	return angle
}
