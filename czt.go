package czt

import (
	"errors"

	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by transform construction and processing.
var (
	ErrInvalidTransformSize = errors.New("czt: transform sizes must be positive")
	ErrDegenerateContour    = errors.New("czt: contour parameters must be nonzero")
	ErrLengthMismatch       = errors.New("czt: buffer length mismatch")
)

// Transform is the minimal contract satisfied by any chirp Z-transform
// engine, fast or naive, so callers and tests can treat them uniformly.
//
// Process and ProcessWithScratch read N input samples from buffer[0:N]
// and overwrite buffer[0:M] with the M transform samples; buffer entries
// beyond M are left in an unspecified state. The buffer must hold at
// least max(N, M) elements. All size checks happen before any mutation,
// so a failed call leaves the buffer untouched.
type Transform[C algofft.Complex] interface {
	// Process runs the transform, allocating scratch internally.
	Process(buffer []C) error

	// ProcessWithScratch runs the transform using caller-supplied
	// scratch of at least ScratchLen elements. This is the
	// zero-allocation hot path.
	ProcessWithScratch(buffer, scratch []C) error

	// ScratchLen returns the minimum scratch size for
	// ProcessWithScratch.
	ScratchLen() int
}

// validateSizes rejects empty transforms and degenerate contours before
// any work is done.
func validateSizes(inputLen, outputLen int, a, w complex128) error {
	if inputLen < 1 || outputLen < 1 {
		return ErrInvalidTransformSize
	}
	if a == 0 || w == 0 {
		return ErrDegenerateContour
	}
	return nil
}
