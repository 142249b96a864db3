package czt

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// ConvolutionPlan applies an unnormalized forward DFT of a fixed length
// in place. Plans are immutable and expensive to build; engines hold a
// shared reference and the planner caches them by length.
type ConvolutionPlan[C algofft.Complex] interface {
	// Len returns the transform length the plan was built for.
	Len() int

	// ScratchLen returns the minimum scratch size Transform requires.
	ScratchLen() int

	// Transform applies the forward transform to data[0:Len] in place,
	// using scratch[0:ScratchLen] as workspace.
	Transform(data, scratch []C) error
}

// ConvolutionProvider builds convolution plans for the Bluestein engine.
// The transform must be an unnormalized forward DFT; the engine divides
// by the plan length itself.
type ConvolutionProvider[C algofft.Complex] interface {
	Plan(length int) (ConvolutionPlan[C], error)
}

// DefaultProvider builds plans on github.com/cwbudde/algo-fft. Its plans
// carry no external scratch requirement and are safe to share across
// goroutines once built.
type DefaultProvider[C algofft.Complex] struct{}

// Plan builds a forward FFT plan of the given length. The Bluestein
// engine only requests power-of-two lengths.
func (DefaultProvider[C]) Plan(length int) (ConvolutionPlan[C], error) {
	p, err := algofft.NewPlanT[C](length)
	if err != nil {
		return nil, fmt.Errorf("czt: convolution plan (len=%d): %w", length, err)
	}
	return fftPlan[C]{plan: p}, nil
}

type fftPlan[C algofft.Complex] struct {
	plan *algofft.Plan[C]
}

func (p fftPlan[C]) Len() int { return p.plan.Len() }

func (p fftPlan[C]) ScratchLen() int { return 0 }

func (p fftPlan[C]) Transform(data, scratch []C) error {
	n := p.plan.Len()
	if len(data) < n {
		return ErrLengthMismatch
	}
	return p.plan.Forward(data[:n], data[:n])
}
