// Package algodft provides a 128-bit complex value type and discrete
// Fourier transforms computed with the recursive radix-2 Cooley-Tukey
// algorithm.
//
// Two API levels are exposed:
//
//   - FDFT and IDFT are the raw transforms. They allocate nothing, write
//     only the caller's output buffer, and treat misuse (empty input,
//     undersized output) as a programming error that panics. The
//     power-of-two length requirement is documented but not validated.
//   - Plan is the validating layer: NewPlan rejects non-power-of-two sizes
//     with ErrInvalidLength, precomputes twiddle factors once, and returns
//     errors instead of panicking on bad slices.
//
// Convolve builds FFT-based linear convolution on top of the transforms.
// The spectrum subpackage derives magnitude, power and spectral statistics
// from transform output.
package algodft
