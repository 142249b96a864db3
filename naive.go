package czt

import (
	algofft "github.com/cwbudde/algo-fft"
)

// NaiveT evaluates the chirp Z-transform by the defining sum,
//
//	X[k] = sum_{n=0}^{N-1} x[n] * z^-n  with  z = A * W^-k,
//
// in O(N*M) time. It exists to validate the Bluestein engine and as an
// unambiguous statement of the transform semantics; it is far too slow
// for production sizes.
type NaiveT[C algofft.Complex] struct {
	inputLen  int
	outputLen int
	a, w      complex128
}

// Naive is the complex128 specialization.
type Naive = NaiveT[complex128]

// NewNaive creates a complex128 reference engine.
func NewNaive(inputLen, outputLen int, a, w complex128) (*Naive, error) {
	return NewNaiveT[complex128](inputLen, outputLen, a, w)
}

// NewNaiveT creates a reference engine for the given sizes and contour.
// It applies the same validation as the Bluestein engine.
func NewNaiveT[C algofft.Complex](inputLen, outputLen int, a, w C) (*NaiveT[C], error) {
	aw := widen(a)
	ww := widen(w)
	if err := validateSizes(inputLen, outputLen, aw, ww); err != nil {
		return nil, err
	}
	return &NaiveT[C]{
		inputLen:  inputLen,
		outputLen: outputLen,
		a:         aw,
		w:         ww,
	}, nil
}

// ScratchLen returns the scratch requirement: one output-length buffer,
// so the result can be accumulated without clobbering the input.
func (t *NaiveT[C]) ScratchLen() int { return t.outputLen }

// Process runs the transform, allocating scratch internally.
func (t *NaiveT[C]) Process(buffer []C) error {
	scratch := make([]C, t.ScratchLen())
	return t.ProcessWithScratch(buffer, scratch)
}

// ProcessWithScratch evaluates the direct sum. The accumulation runs in
// complex128 regardless of C, so the reference stays at least as
// accurate as the engine under test.
func (t *NaiveT[C]) ProcessWithScratch(buffer, scratch []C) error {
	if len(buffer) < max(t.inputLen, t.outputLen) || len(scratch) < t.outputLen {
		return ErrLengthMismatch
	}

	out := scratch[:t.outputLen]
	for k := range out {
		// z^-1 = W^k / A for output point k.
		zInv := polarPow(t.w, float64(k)) / t.a

		var acc complex128
		zp := complex(1, 0)
		for n := 0; n < t.inputLen; n++ {
			acc += widen(buffer[n]) * zp
			zp *= zInv
		}
		out[k] = narrow[C](acc)
	}

	copy(buffer[:t.outputLen], out)
	return nil
}
