package algodft

import "errors"

// Sentinel errors returned by the validated Plan and Convolve APIs.
var (
	// ErrInvalidLength is returned when the transform size is not a
	// positive power of 2.
	ErrInvalidLength = errors.New("algodft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("algodft: slice length mismatch")
)
