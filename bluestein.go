package czt

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// BluesteinT evaluates the chirp Z-transform via Bluestein's algorithm:
// the N input samples are premultiplied by a chirp, cyclically convolved
// with a second chirp at a padded power-of-two length L, and
// postmultiplied by a third. The convolution runs as two forward FFTs
// through a [ConvolutionPlan]; a conjugate substitution stands in for
// the inverse transform, so only a forward plan is needed.
//
// All coefficient sequences are computed once at construction. An engine
// is immutable afterwards and safe for concurrent Process calls with
// per-call buffers (subject to the provider's plan sharing rules).
type BluesteinT[C algofft.Complex] struct {
	inputLen  int
	outputLen int
	convLen   int

	y []C // premultiply chirp, length N
	v []C // kernel spectrum, length L
	x []C // postmultiply chirp, length M

	plan ConvolutionPlan[C]
}

// Bluestein is the complex128 specialization.
type Bluestein = BluesteinT[complex128]

// Bluestein32 is the complex64 specialization.
type Bluestein32 = BluesteinT[complex64]

// NewBluestein creates a complex128 Bluestein engine.
func NewBluestein(inputLen, outputLen int, a, w complex128, provider ConvolutionProvider[complex128]) (*Bluestein, error) {
	return NewBluesteinT[complex128](inputLen, outputLen, a, w, provider)
}

// NewBluestein32 creates a complex64 Bluestein engine.
func NewBluestein32(inputLen, outputLen int, a, w complex64, provider ConvolutionProvider[complex64]) (*Bluestein32, error) {
	return NewBluesteinT[complex64](inputLen, outputLen, a, w, provider)
}

// NewBluesteinT creates a Bluestein engine transforming inputLen samples
// into outputLen contour samples at A*W^-k. The provider supplies the
// length-L convolution plan, where L is the smallest power of two
// >= inputLen + outputLen - 1. A nil provider selects [DefaultProvider].
//
// Returns ErrInvalidTransformSize for empty sizes, ErrDegenerateContour
// for a zero A or W, and wraps any provider failure.
func NewBluesteinT[C algofft.Complex](inputLen, outputLen int, a, w C, provider ConvolutionProvider[C]) (*BluesteinT[C], error) {
	aw := widen(a)
	ww := widen(w)
	if err := validateSizes(inputLen, outputLen, aw, ww); err != nil {
		return nil, err
	}
	if provider == nil {
		provider = DefaultProvider[C]{}
	}

	convLen := nextPowerOf2(inputLen + outputLen - 1)

	plan, err := provider.Plan(convLen)
	if err != nil {
		return nil, fmt.Errorf("czt: bluestein setup (N=%d, M=%d): %w", inputLen, outputLen, err)
	}

	b := &BluesteinT[C]{
		inputLen:  inputLen,
		outputLen: outputLen,
		convLen:   convLen,
		plan:      plan,
	}

	// Premultiply chirp: Y[n] = A^-n * W^(n^2/2).
	b.y = make([]C, inputLen)
	for n := range b.y {
		fn := float64(n)
		b.y[n] = narrow[C](polarPow(aw, -fn) * polarPow(ww, fn*fn/2))
	}

	// Postmultiply chirp: X[k] = W^(k^2/2).
	b.x = make([]C, outputLen)
	for k := range b.x {
		fk := float64(k)
		b.x[k] = narrow[C](polarPow(ww, fk*fk/2))
	}

	if err := b.computeKernelSpectrum(ww); err != nil {
		return nil, err
	}

	return b, nil
}

// computeKernelSpectrum builds the padded chirp kernel and transforms it
// into V. The layout embeds the linear chirp convolution into a cyclic
// one of length L:
//
//	c[n] = W^(-n^2/2)      for n in [0, M)
//	c[n] = 0               for n in [M, L-N+1)
//	c[n] = W^(-(L-n)^2/2)  for n in [L-N+1, L)
//
// Since L >= N+M-1 the zero gap is never negative, and no wraparound
// energy reaches the first M output slots.
func (b *BluesteinT[C]) computeKernelSpectrum(ww complex128) error {
	c := make([]C, b.convLen)
	for n := 0; n < b.outputLen; n++ {
		fn := float64(n)
		c[n] = narrow[C](polarPow(ww, -fn*fn/2))
	}
	for n := b.convLen - b.inputLen + 1; n < b.convLen; n++ {
		fn := float64(b.convLen - n)
		c[n] = narrow[C](polarPow(ww, -fn*fn/2))
	}

	scratch := make([]C, b.plan.ScratchLen())
	if err := b.plan.Transform(c, scratch); err != nil {
		return fmt.Errorf("czt: kernel spectrum: %w", err)
	}
	b.v = c
	return nil
}

// InputLen returns N, the number of input samples consumed.
func (b *BluesteinT[C]) InputLen() int { return b.inputLen }

// OutputLen returns M, the number of contour samples produced.
func (b *BluesteinT[C]) OutputLen() int { return b.outputLen }

// ConvolutionLen returns L, the padded cyclic convolution length.
func (b *BluesteinT[C]) ConvolutionLen() int { return b.convLen }

// ScratchLen returns the scratch requirement of ProcessWithScratch: the
// length-L workspace plus whatever the convolution plan needs.
func (b *BluesteinT[C]) ScratchLen() int {
	return b.convLen + b.plan.ScratchLen()
}

// Process runs the transform, allocating scratch internally.
func (b *BluesteinT[C]) Process(buffer []C) error {
	scratch := make([]C, b.ScratchLen())
	return b.ProcessWithScratch(buffer, scratch)
}

// ProcessWithScratch runs the transform on buffer[0:N], writing the M
// output samples to buffer[0:M]. The buffer must hold at least
// max(N, M) elements and scratch at least ScratchLen; violations return
// ErrLengthMismatch before any mutation.
func (b *BluesteinT[C]) ProcessWithScratch(buffer, scratch []C) error {
	if len(buffer) < max(b.inputLen, b.outputLen) || len(scratch) < b.ScratchLen() {
		return ErrLengthMismatch
	}

	work := scratch[:b.convLen]
	planScratch := scratch[b.convLen : b.convLen+b.plan.ScratchLen()]

	// Expand: premultiply into the padded workspace.
	for i := 0; i < b.inputLen; i++ {
		work[i] = buffer[i] * b.y[i]
	}
	clear(work[b.inputLen:])

	if err := b.plan.Transform(work, planScratch); err != nil {
		return fmt.Errorf("czt: forward transform: %w", err)
	}

	// Spectral combine. The conjugation turns the second forward pass
	// into an (unnormalized) inverse one.
	conjMulInPlace(work, b.v)

	if err := b.plan.Transform(work, planScratch); err != nil {
		return fmt.Errorf("czt: inverse transform: %w", err)
	}

	// Extract: undo the conjugation, postmultiply, normalize by L.
	extractScaled(buffer, work, b.x, 1/float64(b.convLen))

	return nil
}
