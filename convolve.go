package algodft

import (
	"github.com/cwbudde/algo-dft/internal/dspmath"
)

// Convolve computes the linear convolution of a and b into dst:
//
//	dst[k] = Σ_i a[i] · b[k-i]
//
// dst must have length len(a)+len(b)-1. The inputs are zero-padded to the
// next power of two, transformed, multiplied pointwise and transformed back,
// so each call allocates transform scratch proportional to that padded size.
func Convolve(dst, a, b []Complex) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilSlice
	}

	if len(a) == 0 || len(b) == 0 {
		return ErrInvalidLength
	}

	out := len(a) + len(b) - 1
	if len(dst) != out {
		return ErrLengthMismatch
	}

	n := dspmath.NextPowerOf2(out)

	pa := make([]Complex, n)
	pb := make([]Complex, n)
	copy(pa, a)
	copy(pb, b)

	fa := make([]Complex, n)
	fb := make([]Complex, n)
	FDFT(pa, fa)
	FDFT(pb, fb)

	for i := range fa {
		fa[i] = fa[i].Mul(fb[i])
	}

	prod := make([]Complex, n)
	IDFT(fa, prod)
	copy(dst, prod[:out])

	return nil
}
