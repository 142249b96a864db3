package czt

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// polarPow computes v^q for real q via the polar form, reducing the
// phase argument modulo 2*pi before the final sin/cos. The quadratic
// exponents of the chirp sequences grow as n^2, so the reduction keeps
// the argument to the trigonometric kernel small.
func polarPow(v complex128, q float64) complex128 {
	r, theta := cmplx.Polar(v)
	mag := math.Pow(r, q)
	arg := math.Mod(q*theta, 2*math.Pi)
	return complex(mag*math.Cos(arg), mag*math.Sin(arg))
}

// widen converts an engine-precision complex value to complex128.
func widen[C algofft.Complex](v C) complex128 {
	if c, ok := any(v).(complex64); ok {
		return complex128(c)
	}
	return any(v).(complex128)
}

// narrow converts a complex128 value to the engine precision.
func narrow[C algofft.Complex](v complex128) C {
	var zero C
	if _, ok := any(zero).(complex64); ok {
		return any(complex64(v)).(C)
	}
	return any(v).(C)
}

// conjMulInPlace computes dst[i] = conj(dst[i] * v[i]) element-wise.
// The type switch hoists precision dispatch out of the inner loop.
func conjMulInPlace[C algofft.Complex](dst, v []C) {
	switch d := any(dst).(type) {
	case []complex64:
		vv := any(v).([]complex64)
		for i := range d {
			p := d[i] * vv[i]
			d[i] = complex(real(p), -imag(p))
		}
	case []complex128:
		vv := any(v).([]complex128)
		for i := range d {
			p := d[i] * vv[i]
			d[i] = complex(real(p), -imag(p))
		}
	}
}

// extractScaled computes dst[k] = conj(src[k]) * x[k] * scale for
// k in [0, len(x)). scale carries the 1/L convolution normalization.
func extractScaled[C algofft.Complex](dst, src, x []C, scale float64) {
	switch d := any(dst).(type) {
	case []complex64:
		s := any(src).([]complex64)
		xx := any(x).([]complex64)
		f := complex(float32(scale), 0)
		for k := range xx {
			d[k] = complex(real(s[k]), -imag(s[k])) * xx[k] * f
		}
	case []complex128:
		s := any(src).([]complex128)
		xx := any(x).([]complex128)
		f := complex(scale, 0)
		for k := range xx {
			d[k] = complex(real(s[k]), -imag(s[k])) * xx[k] * f
		}
	}
}
