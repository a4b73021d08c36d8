package algodft

import (
	"github.com/cwbudde/algo-dft/internal/dspmath"
)

// FDFT computes the forward discrete Fourier transform of input into the
// first len(input) elements of output:
//
//	X[k] = Σ_{j=0}^{n-1} x[j] · e^{-2πi·jk/n}
//
// Restrictions and liberties:
//
//   - input must have length n >= 1 and output must have at least n
//     elements. Violating either is a programming error and panics.
//   - Only the first n elements of output are written. Their prior contents
//     are never read, so output may be uninitialized.
//   - The recursion assumes n is a power of two. This is not validated;
//     other lengths produce silently wrong results. Use Plan for a
//     validating front end.
//   - No allocation and no side effects beyond overwriting output.
func FDFT(input, output []Complex) {
	checkTransformArgs(input, output)
	fft(input, output[:len(input)], len(input), 1, leafIdentity)
}

// IDFT computes the inverse discrete Fourier transform of input into the
// first len(input) elements of output:
//
//	x[j] = (1/n) Σ_{k=0}^{n-1} X[k] · e^{+2πi·jk/n}
//
// The same restrictions and liberties apply as for FDFT.
func IDFT(input, output []Complex) {
	checkTransformArgs(input, output)

	n := len(input)
	fft(input, output[:n], n, 1, leafConj)

	// IDFT(X) = conj(DFT(conj(X))) / n, so the recursion above ran with a
	// conjugating leaf and the fixed forward twiddle sign.
	scale := FromReal(float64(n))
	for i := range output[:n] {
		output[i] = output[i].Conj().Div(scale)
	}
}

func checkTransformArgs(input, output []Complex) {
	if len(input) == 0 {
		panic("algodft: transform input is empty")
	}

	if len(output) < len(input) {
		panic("algodft: transform output is shorter than input")
	}
}

func leafIdentity(c Complex) Complex { return c }

func leafConj(c Complex) Complex { return c.Conj() }

// fft is the shared recursive radix-2 butterfly. It transforms the n
// elements of in spaced s apart into out[:n], applying leaf at every
// length-1 base case.
//
// The even and odd half-size sub-calls write strictly disjoint halves of
// out and read only from in, so the recursive branches never alias each
// other; only the combine loop below revisits slots the recursion wrote,
// and it reads both old values before overwriting either.
func fft(in, out []Complex, n, s int, leaf func(Complex) Complex) {
	if n == 1 {
		out[0] = leaf(in[0])
		return
	}

	half := n / 2
	fft(in, out[:half], half, 2*s, leaf)
	fft(in[s:], out[half:], half, 2*s, leaf)

	for k := 0; k < half; k++ {
		w := FromPolar(1, -dspmath.TwoPi*float64(k)/float64(n))
		t := w.Mul(out[half+k])
		e := out[k]
		out[k] = e.Add(t)
		out[half+k] = e.Sub(t)
	}
}
