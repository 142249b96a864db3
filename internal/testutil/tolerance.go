package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireComplexNearlyEqual fails t if got and want differ in length or
// if any element pair differs by more than eps in either the real or the
// imaginary component (absolute tolerance, per component).
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		dRe := math.Abs(real(got[i]) - real(want[i]))
		dIm := math.Abs(imag(got[i]) - imag(want[i]))
		if dRe > eps || dIm > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v+%vi > eps %v)",
				i, got[i], want[i], dRe, dIm, eps)
		}
	}
}

// RequireComplexFinite fails t if any element has a NaN or Inf component.
func RequireComplexFinite(t *testing.T, data []complex128) {
	t.Helper()
	for i, v := range data {
		re, im := real(v), imag(v)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxComplexAbsDiff returns the maximum per-component absolute difference
// between two slices. Returns an error if the slices differ in length.
func MaxComplexAbsDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(real(a[i]) - real(b[i])); d > maxDiff {
			maxDiff = d
		}
		if d := math.Abs(imag(a[i]) - imag(b[i])); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
