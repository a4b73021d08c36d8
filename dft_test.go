package algodft

import (
	"testing"
)

// Eight-point box signal and its spectrum, a worked example from the
// dspguide literature.
var (
	boxSignal = []Complex{
		{Re: 1}, {Re: 1}, {Re: 1}, {Re: 1},
		{}, {}, {}, {},
	}
	boxSpectrum = []Complex{
		{Re: 4.00, Im: 0.00},
		{Re: 1.00, Im: -2.41},
		{Re: 0.00, Im: 0.00},
		{Re: 1.00, Im: -0.41},
		{Re: 0.00, Im: 0.00},
		{Re: 0.99, Im: 0.41},
		{Re: 0.00, Im: 0.00},
		{Re: 0.99, Im: 2.41},
	}
)

func TestFDFTBoxSignal(t *testing.T) {
	t.Parallel()

	output := make([]Complex, 8)
	FDFT(boxSignal, output)

	assertComplexSliceClose(t, output, boxSpectrum, 0.01)
}

func TestIDFTBoxSpectrum(t *testing.T) {
	t.Parallel()

	output := make([]Complex, 8)
	IDFT(boxSpectrum, output)

	assertComplexSliceClose(t, output, boxSignal, 0.01)
}

func TestFDFTSingleElement(t *testing.T) {
	t.Parallel()

	input := []Complex{{Re: 2.5, Im: -1.5}}
	output := make([]Complex, 1)

	FDFT(input, output)

	if output[0] != input[0] {
		t.Errorf("size-1 forward transform altered the value: %v", output[0])
	}

	IDFT(input, output)

	if output[0] != input[0] {
		t.Errorf("size-1 inverse transform altered the value: %v", output[0])
	}
}

func TestFDFTImpulse(t *testing.T) {
	t.Parallel()

	// A unit impulse transforms to a flat spectrum of ones.
	input := make([]Complex, 16)
	input[0] = FromReal(1)

	output := make([]Complex, 16)
	FDFT(input, output)

	for i, got := range output {
		assertApproxComplexTolf(t, got, FromReal(1), 1e-12, "bin %d", i)
	}
}

func TestFDFTOnlyWritesFirstN(t *testing.T) {
	t.Parallel()

	sentinel := Complex{Re: 123, Im: -456}
	output := make([]Complex, 12)
	for i := range output {
		output[i] = sentinel
	}

	FDFT(boxSignal, output)

	for i := len(boxSignal); i < len(output); i++ {
		if output[i] != sentinel {
			t.Errorf("slot %d beyond n was overwritten: %v", i, output[i])
		}
	}
}

func TestTransformPreconditions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  []Complex
		output []Complex
	}{
		{"empty input", nil, make([]Complex, 4)},
		{"short output", make([]Complex, 4), make([]Complex, 3)},
		{"nil output", make([]Complex, 4), nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run("FDFT/"+tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { FDFT(tc.input, tc.output) })
		})
		t.Run("IDFT/"+tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { IDFT(tc.input, tc.output) })
		})
	}
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()

	fn()
}
