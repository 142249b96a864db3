// Package czt computes the chirp Z-transform: evaluation of a length-N
// sequence's Z-transform at M points along a logarithmic-spiral contour
// in the complex plane. The contour is parameterized by a start point A
// and a step ratio W; output sample k is taken at A*W^-k. With A = 1 and
// W = exp(-2*pi*i/N) the transform reduces to the ordinary DFT, but N and
// M are otherwise free: they need not be equal, powers of two, or related
// by any special factorization.
//
// The production engine implements Bluestein's algorithm: three pointwise
// chirp multiplications around a single cyclic convolution of padded
// power-of-two length L, so any transform size runs in O(L log L) via a
// power-of-two FFT. The FFT itself is consumed through the
// [ConvolutionProvider] interface; the default provider is backed by
// github.com/cwbudde/algo-fft, and [GonumProvider] offers an alternative
// built on gonum's dsp/fourier package.
//
// # Usage
//
// Plan transforms through a [Planner], which caches convolution plans by
// padded length so engines with equal L share the expensive setup:
//
//	planner := czt.NewPlanner()
//	transform, err := planner.PlanCZTForward(n, m, a, w)
//	err = transform.Process(buffer) // buffer[0:m] holds the result
//
// For a densely sampled spectrum restricted to a normalized frequency
// band, use the zoom convenience:
//
//	transform, err := planner.PlanZoomFFT(n, 0.1, 0.2)
//
// Engines are immutable after construction and safe for concurrent use,
// provided each call supplies its own buffer (and scratch, when using
// ProcessWithScratch for the zero-allocation path). The planner itself is
// a single-threaded builder.
//
// The [NaiveT] engine evaluates the defining O(N*M) sum directly. It is
// intended for validation, not production use.
package czt
