package algodft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplexTolf(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	if got.Sub(want).Abs() > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, got.Sub(want).Abs())...)
	}
}

func assertComplexSliceClose(t *testing.T, got, want []Complex, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		assertApproxComplexTolf(t, got[i], want[i], tol, "index %d", i)
	}
}

func randomComplex(n int, seed int64) []Complex {
	rng := rand.New(rand.NewSource(seed))

	out := make([]Complex, n)
	for i := range out {
		out[i] = Complex{Re: rng.Float64()*2 - 1, Im: rng.Float64()*2 - 1}
	}

	return out
}

// naiveDFT is the O(n²) definition of the forward transform, used as the
// in-package reference.
func naiveDFT(in []Complex) []Complex {
	n := len(in)
	out := make([]Complex, n)

	for k := range out {
		var sum Complex
		for j, x := range in {
			w := FromPolar(1, -2*math.Pi*float64(j*k)/float64(n))
			sum = sum.Add(x.Mul(w))
		}
		out[k] = sum
	}

	return out
}
