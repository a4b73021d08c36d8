// Package dspmath holds small integer helpers and constants shared by the
// transform implementations.
package dspmath

import "math"

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n, or 1 for n <= 0.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReverseIndices returns the bit-reversal permutation indices for a
// size-n radix-2 FFT.
func BitReverseIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}
