package algodft

import (
	"github.com/cwbudde/algo-dft/internal/dspmath"
)

// Plan is a validating, reusable transform for one fixed power-of-two size.
//
// A Plan precomputes the half-size twiddle table and the bit-reversal
// permutation once, then runs an iterative in-place radix-2
// decimation-in-time pass per call. Results agree with FDFT/IDFT up to
// float64 round-off.
//
// Plans are safe for concurrent use: Forward and Inverse only read the
// precomputed tables.
type Plan struct {
	n       int
	twiddle []Complex // twiddle[k] = e^{-2πik/n} for k < n/2
	bitrev  []int
}

// NewPlan creates a plan for transforms of size n. Sizes that are not a
// positive power of 2 return ErrInvalidLength.
func NewPlan(n int) (*Plan, error) {
	if n < 1 || !dspmath.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	twiddle := make([]Complex, n/2)
	for k := range twiddle {
		twiddle[k] = FromPolar(1, -dspmath.TwoPi*float64(k)/float64(n))
	}

	return &Plan{
		n:       n,
		twiddle: twiddle,
		bitrev:  dspmath.BitReverseIndices(n),
	}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the forward DFT of src into dst. Both slices must have
// length Len(); dst may be the same slice as src for an in-place transform.
func (p *Plan) Forward(dst, src []Complex) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.transform(dst, src, false)

	return nil
}

// Inverse computes the inverse DFT of src into dst, including the 1/n
// scaling. Both slices must have length Len(); dst may be the same slice as
// src for an in-place transform.
func (p *Plan) Inverse(dst, src []Complex) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.transform(dst, src, true)

	scale := FromReal(float64(p.n))
	for i := range dst {
		dst[i] = dst[i].Conj().Div(scale)
	}

	return nil
}

func (p *Plan) check(dst, src []Complex) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	return nil
}

// transform stages src into dst in bit-reversed order, conjugating on entry
// for the inverse direction, then applies the log2(n) butterfly stages.
// Each stage of length L strides the shared twiddle table by n/L, so both
// directions reuse the single fixed-sign table.
func (p *Plan) transform(dst, src []Complex, conj bool) {
	if &dst[0] == &src[0] {
		for i, j := range p.bitrev {
			if i < j {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}
	} else {
		for i, j := range p.bitrev {
			dst[i] = src[j]
		}
	}

	if conj {
		for i := range dst {
			dst[i] = dst[i].Conj()
		}
	}

	for length := 2; length <= p.n; length <<= 1 {
		half := length / 2
		step := p.n / length

		for start := 0; start < p.n; start += length {
			for k := 0; k < half; k++ {
				w := p.twiddle[k*step]
				t := w.Mul(dst[start+half+k])
				e := dst[start+k]
				dst[start+k] = e.Add(t)
				dst[start+half+k] = e.Sub(t)
			}
		}
	}
}
