package czt

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each transform output bin. Pass the first
// M entries of a processed buffer; entries beyond M carry no contract.
//
// Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice. Use [MagnitudeTo] for the
// zero-allocation path.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	MagnitudeTo(out, bins)
	return out
}

// MagnitudeTo computes |X[k]| into dst, which must have the same length
// as bins.
func MagnitudeTo(dst []float64, bins []complex128) error {
	if len(dst) != len(bins) {
		return ErrLengthMismatch
	}
	if len(bins) == 0 {
		return nil
	}

	re, im, buf := getScratch(len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
	return nil
}

// Power returns |X[k]|^2 for each transform output bin.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	PowerTo(out, bins)
	return out
}

// PowerTo computes |X[k]|^2 into dst, which must have the same length as
// bins.
func PowerTo(dst []float64, bins []complex128) error {
	if len(dst) != len(bins) {
		return ErrLengthMismatch
	}
	if len(bins) == 0 {
		return nil
	}

	re, im, buf := getScratch(len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Power(dst, re, im)
	putScratch(buf)
	return nil
}
