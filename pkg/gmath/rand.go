package gmath

import "math/bits"

// Default seed words used by NewRand.
const (
	DefaultSeed0 uint64 = 763461436
	DefaultSeed1 uint64 = 821624629
)

// float32Norm maps the top 24 bits of a draw onto [0,1).
const float32Norm float32 = 1.0 / (1 << 24)

var jumpPolynomial = [2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922}

// Rand is a xoroshiro128+ generator with two 64-bit words of state.
//
// A Rand is not safe for concurrent use. Give every goroutine its own
// instance, or derive non-overlapping streams from one seed with Jump.
type Rand struct {
	s0, s1 uint64
}

// NewRand returns a generator seeded with the default seed.
func NewRand() *Rand {
	return &Rand{s0: DefaultSeed0, s1: DefaultSeed1}
}

// NewRandSeeded returns a generator with an explicit 128-bit seed. The seed
// must not be all zero.
func NewRandSeeded(lower, upper uint64) *Rand {
	return &Rand{s0: lower, s1: upper}
}

// State returns the two state words.
func (r *Rand) State() (uint64, uint64) {
	return r.s0, r.s1
}

// Next returns the next raw 64-bit draw.
func (r *Rand) Next() uint64 {
	s0, s1 := r.s0, r.s1
	result := s0 + s1

	s1 ^= s0
	r.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	r.s1 = bits.RotateLeft64(s1, 36)

	return result
}

// Float32 returns a uniform float in [0,1).
func (r *Rand) Float32() float32 {
	return float32(r.Next()>>40) * float32Norm
}

// Float32Range returns a uniform float in [min,max).
func (r *Rand) Float32Range(min, max float32) float32 {
	return r.Float32()*(max-min) + min
}

// IntRange returns a uniform int in [min,max).
func (r *Rand) IntRange(min, max int) int {
	return int(r.Float32()*float32(max-min)) + min
}

func (r *Rand) Bool() bool {
	return r.Next()>>63 == 1
}

// Jump advances the state by the equivalent of 2^64 calls to Next.
func (r *Rand) Jump() {
	var s0, s1 uint64
	for _, word := range jumpPolynomial {
		for b := 0; b < 64; b++ {
			if word&(1<<b) != 0 {
				s0 ^= r.s0
				s1 ^= r.s1
			}
			r.Next()
		}
	}
	r.s0, r.s1 = s0, s1
}

// Split returns n generators 2^64 draws apart, the first one starting at the
// receiver's current state. The receiver is advanced past every returned
// stream.
func (r *Rand) Split(n int) []*Rand {
	streams := make([]*Rand, n)
	for i := range streams {
		streams[i] = &Rand{s0: r.s0, s1: r.s1}
		r.Jump()
	}
	return streams
}
