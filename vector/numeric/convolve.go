package numeric

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-vector/vector"
)

const (
	// directThreshold is the shorter-input length below which Convolve uses
	// the time-domain sum.
	directThreshold = 64

	minFFTSize = 16
)

// Convolve returns the full linear convolution of a and b, of length
// a.Len()+b.Len()-1. Short inputs use ConvolveDirect, longer ones ConvolveFFT.
func Convolve(a, b *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if min(a.Len(), b.Len()) < directThreshold {
		return ConvolveDirect(a, b)
	}
	return ConvolveFFT(a, b)
}

// ConvolveFFT returns the full linear convolution of a and b computed by
// zero-padded FFT multiplication.
func ConvolveFFT(a, b *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyInput
	}

	outLen := a.Len() + b.Len() - 1
	fftSize := max(nextPowerOf2(outLen), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("numeric: failed to create FFT plan: %w", err)
	}

	fa := padComplex(a, fftSize)
	fb := padComplex(b, fftSize)

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("numeric: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("numeric: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("numeric: inverse FFT failed: %w", err)
	}

	out := vector.NewSize[float64](outLen)
	dst := out.Slice()
	for i := range dst {
		dst[i] = real(fa[i])
	}
	return out, nil
}

// ConvolveDirect returns the full linear convolution of a and b using the
// O(N*M) time-domain sum.
func ConvolveDirect(a, b *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyInput
	}

	out := vector.NewSize[float64](a.Len() + b.Len() - 1)
	dst := out.Slice()
	for i, x := range a.All() {
		for j, y := range b.All() {
			dst[i+j] += x * y
		}
	}
	return out, nil
}

// padComplex copies v into a zero-padded complex scratch block of length n.
func padComplex(v *vector.Vector[float64], n int) []complex128 {
	scratch := vector.NewSize[complex128](n)
	dst := scratch.Slice()
	for i, x := range v.All() {
		dst[i] = complex(x, 0)
	}
	return dst
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
