package czt

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// GonumProvider builds complex128 convolution plans on gonum's
// dsp/fourier package. It exists as an alternative back end to the
// algo-fft based [DefaultProvider]; both apply the same unnormalized
// forward DFT and are interchangeable from the engine's point of view.
//
// A fourier.CmplxFFT mutates internal tables during Coefficients, so
// unlike the default provider's plans, a plan from GonumProvider must
// not be used from multiple goroutines at once. Engines built on it
// inherit that restriction.
type GonumProvider struct{}

// Plan builds a forward transform plan of the given length.
func (GonumProvider) Plan(length int) (ConvolutionPlan[complex128], error) {
	if length < 1 {
		return nil, fmt.Errorf("czt: convolution plan (len=%d): %w", length, ErrInvalidTransformSize)
	}
	return &gonumPlan{fft: fourier.NewCmplxFFT(length)}, nil
}

type gonumPlan struct {
	fft *fourier.CmplxFFT
}

func (p *gonumPlan) Len() int { return p.fft.Len() }

// ScratchLen is one full transform length: Coefficients needs distinct
// source and destination, so Transform stages the input through scratch.
func (p *gonumPlan) ScratchLen() int { return p.fft.Len() }

func (p *gonumPlan) Transform(data, scratch []complex128) error {
	n := p.fft.Len()
	if len(data) < n || len(scratch) < n {
		return ErrLengthMismatch
	}
	copy(scratch[:n], data[:n])
	p.fft.Coefficients(data[:n], scratch[:n])
	return nil
}
