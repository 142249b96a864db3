package czt

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-czt/internal/testutil"
)

// countingProvider counts plan builds to observe cache behavior.
type countingProvider struct {
	inner ConvolutionProvider[complex128]
	calls int
}

func (p *countingProvider) Plan(length int) (ConvolutionPlan[complex128], error) {
	p.calls++
	return p.inner.Plan(length)
}

func TestPlannerPlanCZTForward(t *testing.T) {
	planner := NewPlanner()

	transform, err := planner.PlanCZTForward(16, 16, 1, unitW(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.ComplexNoise(5, 1.0, 16)
	want := naiveReference(t, input, 16, 1, unitW(16))

	buf := append([]complex128(nil), input...)
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, buf, want, 1e-5)
}

func TestPlannerZoomReducesToDFT(t *testing.T) {
	const n = 32

	planner := NewPlanner()
	transform, err := planner.PlanZoomFFT(n, 0, float64(n-1)/float64(n))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.ComplexNoise(9, 1.0, n)
	want := naiveReference(t, input, n, 1, unitW(n))

	buf := append([]complex128(nil), input...)
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, buf, want, 1e-5)
}

func TestPlannerZoomSubBand(t *testing.T) {
	// A tone inside the zoomed band must show up as the dominant bin.
	const (
		n     = 128
		start = 0.20
		end   = 0.30
	)

	planner := NewPlanner()
	transform, err := planner.PlanZoomFFT(n, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Normalized tone frequency 0.25: the center of the band.
	input := testutil.ComplexTone(0.25, 1.0, 1.0, n)
	buf := append([]complex128(nil), input...)
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}

	mags := Magnitude(buf)
	peak := 0
	for i, m := range mags {
		if m > mags[peak] {
			peak = i
		}
	}

	// Bin k sits at frequency start + k*(end-start)/(n-1).
	freq := start + float64(peak)*(end-start)/float64(n-1)
	if freq < 0.24 || freq > 0.26 {
		t.Errorf("peak at normalized frequency %v, want ~0.25", freq)
	}
}

func TestPlannerZoomWithM(t *testing.T) {
	// Zoom with m != n must agree with an explicitly derived contour.
	const (
		n     = 16
		m     = 40
		start = 0.1
		end   = 0.4
	)

	planner := NewPlanner()
	transform, err := planner.PlanZoomFFTWithM(n, m, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.ComplexNoise(13, 1.0, n)

	a := cmplx.Exp(complex(0, 2*math.Pi*start))
	w := cmplx.Exp(complex(0, -2*math.Pi*(end-start)/float64(m-1)))
	want := naiveReference(t, input, m, a, w)

	buf := make([]complex128, m)
	copy(buf, input)
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, buf, want, 1e-5)
}

func TestPlannerZoomSingleSample(t *testing.T) {
	planner := NewPlanner()

	// n = 1 with a zero-width band is valid: W degenerates to 1.
	transform, err := planner.PlanZoomFFT(1, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf := []complex128{3 + 4i}
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}
	// X[0] is the n=0 term of the sum: the sample itself.
	testutil.RequireComplexNearlyEqual(t, buf, []complex128{3 + 4i}, 1e-12)

	// n = 1 with a nonzero band has no derivable step.
	if _, err := planner.PlanZoomFFT(1, 0.1, 0.2); !errors.Is(err, ErrInvalidTransformSize) {
		t.Errorf("nonzero band: got %v, want ErrInvalidTransformSize", err)
	}
}

func TestPlannerCacheSharedAcrossEqualLengths(t *testing.T) {
	provider := &countingProvider{inner: DefaultProvider[complex128]{}}
	planner := NewPlannerT[float64, complex128](provider)

	// (5,5) and (4,6) both pad to L = 16.
	if _, err := planner.PlanCZTForward(5, 5, 1, unitW(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := planner.PlanCZTForward(4, 6, 1, unitW(6)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider built %d plans for equal L, want 1", provider.calls)
	}

	// (20,20) pads to L = 64 and needs a fresh plan.
	if _, err := planner.PlanCZTForward(20, 20, 1, unitW(20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("provider built %d plans, want 2", provider.calls)
	}
}

func TestPlannerErrors(t *testing.T) {
	planner := NewPlanner()

	if _, err := planner.PlanCZTForward(0, 4, 1, unitW(4)); !errors.Is(err, ErrInvalidTransformSize) {
		t.Errorf("zero size: got %v", err)
	}
	if _, err := planner.PlanCZTForward(4, 4, 1, 0); !errors.Is(err, ErrDegenerateContour) {
		t.Errorf("zero step: got %v", err)
	}
	if _, err := planner.PlanZoomFFTWithM(8, 0, 0.1, 0.2); !errors.Is(err, ErrInvalidTransformSize) {
		t.Errorf("zero outputs: got %v", err)
	}
}

func TestPlanner32Zoom(t *testing.T) {
	const n = 16

	planner := NewPlanner32()
	transform, err := planner.PlanZoomFFT(n, 0, float32(n-1)/float32(n))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.ComplexNoise(17, 1.0, n)
	want := naiveReference(t, input, n, 1, unitW(n))

	buf := testutil.ToComplex64(input)
	if err := transform.Process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}

	got := make([]complex128, n)
	for i := range got {
		got[i] = complex128(buf[i])
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-3)
}
