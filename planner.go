package czt

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// PlannerT constructs chirp Z-transform engines and caches convolution
// plans by padded length, so repeated planning of transforms with equal
// L skips the expensive FFT table setup.
//
// The planner is a single-threaded builder: plan calls mutate the cache
// and need external synchronization if issued from multiple goroutines.
// The engines it returns are immutable and freely shareable.
type PlannerT[F algofft.Float, C algofft.Complex] struct {
	strategy plannerStrategy[C]
}

// Planner is the float64/complex128 specialization.
type Planner = PlannerT[float64, complex128]

// Planner32 is the float32/complex64 specialization.
type Planner32 = PlannerT[float32, complex64]

// NewPlanner creates a float64 planner backed by [DefaultProvider].
func NewPlanner() *Planner {
	return NewPlannerT[float64, complex128](nil)
}

// NewPlanner32 creates a float32 planner backed by [DefaultProvider].
func NewPlanner32() *Planner32 {
	return NewPlannerT[float32, complex64](nil)
}

// NewPlannerT creates a planner on the given convolution provider. A nil
// provider selects [DefaultProvider].
func NewPlannerT[F algofft.Float, C algofft.Complex](provider ConvolutionProvider[C]) *PlannerT[F, C] {
	if provider == nil {
		provider = DefaultProvider[C]{}
	}
	return &PlannerT[F, C]{
		strategy: &scalarStrategy[C]{
			provider: provider,
			plans:    make(map[int]ConvolutionPlan[C]),
		},
	}
}

// PlanCZTForward plans a transform of inputLen samples to outputLen
// contour samples at A*W^-k. Engines planned through the same planner
// share convolution plans whenever their padded lengths match.
func (p *PlannerT[F, C]) PlanCZTForward(inputLen, outputLen int, a, w C) (Transform[C], error) {
	return p.strategy.planCZTForward(inputLen, outputLen, a, w)
}

// PlanZoomFFT plans a zoom transform producing n samples of the spectrum
// restricted to the normalized frequency band [start, end], where 1.0 is
// the full sample rate. PlanZoomFFT(n, 0, (n-1)/n) is equivalent to a
// full n-point DFT.
func (p *PlannerT[F, C]) PlanZoomFFT(n int, start, end F) (Transform[C], error) {
	return p.PlanZoomFFTWithM(n, n, start, end)
}

// PlanZoomFFTWithM is PlanZoomFFT with an independent output count m:
// the m contour points span the band from start to end inclusive.
//
// The contour is derived as A = exp(2*pi*i*start) on the unit circle
// and W = exp(-2*pi*i*(end-start)/(m-1)). With m = 1 no step can be
// derived, so a one-sample zoom is only valid for start == end.
func (p *PlannerT[F, C]) PlanZoomFFTWithM(n, m int, start, end F) (Transform[C], error) {
	if n < 1 || m < 1 {
		return nil, ErrInvalidTransformSize
	}

	s := float64(start)
	e := float64(end)

	var step float64
	switch {
	case m > 1:
		step = -2 * math.Pi * (e - s) / float64(m-1)
	case e != s:
		return nil, ErrInvalidTransformSize
	}

	a := complex(math.Cos(2*math.Pi*s), math.Sin(2*math.Pi*s))
	w := complex(math.Cos(step), math.Sin(step))

	return p.PlanCZTForward(n, m, narrow[C](a), narrow[C](w))
}

// plannerStrategy is the execution back end selected at plan time. A
// single scalar strategy exists today; the indirection keeps the
// planner's contract stable if specialized back ends are added.
type plannerStrategy[C algofft.Complex] interface {
	planCZTForward(inputLen, outputLen int, a, w C) (Transform[C], error)
}

// scalarStrategy builds generic Bluestein engines. It interposes on the
// provider to cache plans by convolution length.
type scalarStrategy[C algofft.Complex] struct {
	provider ConvolutionProvider[C]
	plans    map[int]ConvolutionPlan[C]
}

func (s *scalarStrategy[C]) planCZTForward(inputLen, outputLen int, a, w C) (Transform[C], error) {
	return NewBluesteinT[C](inputLen, outputLen, a, w, s)
}

// Plan serves cached convolution plans, building through the underlying
// provider on a miss. scalarStrategy is itself a [ConvolutionProvider],
// which is how the cache slots in under the engine constructor.
func (s *scalarStrategy[C]) Plan(length int) (ConvolutionPlan[C], error) {
	if plan, ok := s.plans[length]; ok {
		return plan, nil
	}
	plan, err := s.provider.Plan(length)
	if err != nil {
		return nil, err
	}
	s.plans[length] = plan
	return plan, nil
}
