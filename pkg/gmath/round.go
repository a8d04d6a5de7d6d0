package gmath

// Rounding bias: adding roundBias moves every value of the supported range
// onto the positive axis, where truncation equals floor.
const (
	roundBias  = 1 << 14
	roundShift = 0.5

	// RoundLimit bounds the inputs Round accepts: |value| < RoundLimit.
	RoundLimit = roundBias
)

// Round returns floor(value+0.5) for |value| < RoundLimit. Values outside
// that range are out of contract.
func Round(value float32) int {
	return int(float64(value)+roundBias+roundShift) - roundBias
}

// RoundPositive returns floor(value+0.5) for 0 <= value < 2^31. Negative
// inputs are out of contract.
func RoundPositive(value float32) int {
	return int(float64(value) + roundShift)
}

// SnapToGrid rounds value to the nearest multiple of gridSize.
func SnapToGrid(value float32, gridSize int) int {
	if gridSize == 0 || gridSize == 1 {
		return Round(value)
	}
	return Round(value/float32(gridSize)) * gridSize
}
