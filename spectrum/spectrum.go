// Package spectrum derives real-valued views and statistics from complex
// frequency bins produced by the algodft transforms.
//
// The statistical reductions treat the magnitude (or power) spectrum as a
// weight distribution over bin indices. Callers working in physical units
// can multiply bin indices by sampleRate/fftSize.
package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	algodft "github.com/cwbudde/algo-dft"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []algodft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = c.Abs()
	}

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []algodft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = c.Re*c.Re + c.Im*c.Im
	}

	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []algodft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = math.Atan2(c.Im, c.Re)
	}

	return out
}

// UnwrapPhase returns a new phase slice with +/-2π discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}

	return out
}

// Centroid returns the magnitude-weighted mean bin index of the spectrum,
// or 0 for an empty or silent spectrum.
func Centroid(mag []float64) float64 {
	if len(mag) == 0 || floats.Sum(mag) == 0 {
		return 0
	}

	return stat.Mean(binIndices(len(mag)), mag)
}

// Spread returns the magnitude-weighted standard deviation of bin indices
// around the centroid, or 0 for an empty or silent spectrum.
func Spread(mag []float64) float64 {
	if len(mag) == 0 || floats.Sum(mag) == 0 {
		return 0
	}

	bins := binIndices(len(mag))
	centroid := stat.Mean(bins, mag)

	return math.Sqrt(stat.MomentAbout(2, bins, centroid, mag))
}

// Flatness returns the ratio of geometric to arithmetic mean of the power
// spectrum. A flat (noise-like) spectrum approaches 1, a pure tone
// approaches 0. Returns 0 for an empty or silent spectrum.
func Flatness(power []float64) float64 {
	if len(power) == 0 {
		return 0
	}

	mean := stat.Mean(power, nil)
	if mean == 0 {
		return 0
	}

	// A zero bin drives the geometric mean to zero through the log; that
	// is the mathematically correct limit, not an error.
	geo := stat.GeometricMean(power, nil)
	if math.IsNaN(geo) {
		return 0
	}

	return geo / mean
}

// Rolloff returns the smallest bin index below which the given fraction of
// the total spectral energy is contained. fraction is clamped to [0, 1].
func Rolloff(power []float64, fraction float64) int {
	if len(power) == 0 {
		return 0
	}

	fraction = math.Max(0, math.Min(1, fraction))
	total := floats.Sum(power)
	if total == 0 {
		return 0
	}

	target := fraction * total
	cum := 0.0

	for i, p := range power {
		cum += p
		if cum >= target {
			return i
		}
	}

	return len(power) - 1
}

func binIndices(n int) []float64 {
	bins := make([]float64, n)
	for i := range bins {
		bins[i] = float64(i)
	}

	return bins
}
