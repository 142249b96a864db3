package testutil

import (
	"math"
	"math/rand"
)

// ComplexTone generates a deterministic complex exponential
// exp(2*pi*i*freq*n/sampleRate) scaled by amplitude.
func ComplexTone(freqHz, sampleRate, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		arg := step * float64(i)
		out[i] = complex(amplitude*math.Cos(arg), amplitude*math.Sin(arg))
	}
	return out
}

// ComplexNoise generates complex white noise with a fixed seed for
// reproducibility. Real and imaginary parts are uniform in
// [-amplitude, amplitude).
func ComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// ComplexImpulse generates a unit impulse at the given position.
func ComplexImpulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ComplexOnes returns a slice of length n filled with 1+0i.
func ComplexOnes(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// ToComplex64 narrows a complex128 slice to complex64.
func ToComplex64(in []complex128) []complex64 {
	out := make([]complex64, len(in))
	for i, v := range in {
		out[i] = complex64(v)
	}
	return out
}
