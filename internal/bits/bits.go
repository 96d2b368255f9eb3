// Package bits provides low-level arithmetic primitives.
package bits

import "math/bits"

// Divisor is a fixed 32-bit divisor with a precomputed reciprocal, so that
// repeated reduction by the same modulus avoids a hardware division.
// Uses Lemire's "fastmod": M = ceil(2^64 / d), a mod d = hi64((M*a mod 2^64) * d).
// The result is exact for every 32-bit numerator and every non-zero d.
type Divisor struct {
	d uint32
	m uint64
}

// NewDivisor returns a Divisor for d. d must be non-zero.
func NewDivisor(d uint32) Divisor {
	// For d == 1 the reciprocal wraps to 0, which still yields a mod 1 == 0.
	return Divisor{d: d, m: ^uint64(0)/uint64(d) + 1}
}

// Get returns the divisor value.
func (v Divisor) Get() uint32 {
	return v.d
}

// Mod returns a mod d.
func (v Divisor) Mod(a uint32) uint32 {
	lowbits := v.m * uint64(a)
	hi, _ := bits.Mul64(lowbits, uint64(v.d))
	return uint32(hi)
}

// Mix performs a 128-bit multiply and XOR fold.
// This is the core mixing primitive from WyHash v4.
func Mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
