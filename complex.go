package algodft

import "math"

// Complex is a 128-bit complex number: a 64-bit real part and a 64-bit
// imaginary part. Values are immutable; every operation returns a new value.
//
// NaN and Inf are valid components and propagate through arithmetic under
// the usual IEEE-754 rules. In particular, dividing by a zero value yields
// Inf/NaN components rather than an error.
type Complex struct {
	Re, Im float64
}

// FromReal returns the complex number with the given real part and a zero
// imaginary part.
func FromReal(re float64) Complex {
	return Complex{Re: re}
}

// FromImag returns the complex number with the given imaginary part and a
// zero real part.
func FromImag(im float64) Complex {
	return Complex{Im: im}
}

// FromPolar returns the complex number at radius r and angle th in radians.
// Sine and cosine are evaluated in a single combined call.
func FromPolar(r, th float64) Complex {
	sin, cos := math.Sincos(th)
	return Complex{Re: r * cos, Im: r * sin}
}

// FromComplex128 converts a built-in complex128 value.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Real returns the real part.
func (c Complex) Real() float64 { return c.Re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.Im }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Abs returns the modulus |c|.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Add returns c + rhs.
func (c Complex) Add(rhs Complex) Complex {
	return Complex{Re: c.Re + rhs.Re, Im: c.Im + rhs.Im}
}

// Sub returns c - rhs.
func (c Complex) Sub(rhs Complex) Complex {
	return Complex{Re: c.Re - rhs.Re, Im: c.Im - rhs.Im}
}

// Mul returns c * rhs.
func (c Complex) Mul(rhs Complex) Complex {
	return Complex{
		Re: c.Re*rhs.Re - c.Im*rhs.Im,
		Im: c.Re*rhs.Im + c.Im*rhs.Re,
	}
}

// Div returns c / rhs, computed as c*conj(rhs) / (rhs*conj(rhs)). The
// denominator's imaginary part is algebraically zero and is discarded; both
// result components are divided by its real part.
func (c Complex) Div(rhs Complex) Complex {
	num := c.Mul(rhs.Conj())
	den := rhs.Mul(rhs.Conj())

	return Complex{Re: num.Re / den.Re, Im: num.Im / den.Re}
}

// Complex128 returns the value as a built-in complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// ToComplex128s converts a slice of Complex to built-in complex128 values.
func ToComplex128s(in []Complex) []complex128 {
	if in == nil {
		return nil
	}

	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = c.Complex128()
	}

	return out
}

// FromComplex128s converts a slice of built-in complex128 values.
func FromComplex128s(in []complex128) []Complex {
	if in == nil {
		return nil
	}

	out := make([]Complex, len(in))
	for i, z := range in {
		out[i] = FromComplex128(z)
	}

	return out
}
