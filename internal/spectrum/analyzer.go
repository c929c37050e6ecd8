package spectrum

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Source supplies one spectrum per frame. A nil or short result means silence
// for the missing bands.
type Source interface {
	Spectrum(bands int) []float64
}

// MinFFTSize is the smallest transform FFTSize hands out.
const MinFFTSize = 128

// FFTSize returns the transform length whose bins 1..bands span the whole
// range up to Nyquist: twice the next power of two of bands.
func FFTSize(bands int) int {
	n := 1
	for n < bands {
		n <<= 1
	}
	return max(2*n, MinFFTSize)
}

// Analyzer converts a block of mono samples into linear band magnitudes.
// Band b maps to FFT bin b+1; the DC bin is skipped.
type Analyzer struct {
	size   int
	fft    *fourier.FFT
	window []float64
	norm   float64
	buf    []float64
	coeffs []complex128
}

func NewAnalyzer(size int) *Analyzer {
	w := make([]float64, size)
	for i := range w {
		w[i] = 1
	}
	w = window.Hann(w)

	sum := 0.0
	for _, v := range w {
		sum += v
	}

	return &Analyzer{
		size:   size,
		fft:    fourier.NewFFT(size),
		window: w,
		norm:   2 / sum,
		buf:    make([]float64, size),
	}
}

// Magnitudes windows the most recent samples (zero padded at the front when
// fewer than the FFT size are available) and returns bands magnitudes, where a
// full-scale sine centered on a bin reads close to its amplitude.
func (a *Analyzer) Magnitudes(samples []float64, bands int) []float64 {
	if bands <= 0 {
		return nil
	}
	if len(samples) > a.size {
		samples = samples[len(samples)-a.size:]
	}

	pad := a.size - len(samples)
	for i := range a.buf {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.buf[i] = v * a.window[i]
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.buf)

	out := make([]float64, bands)
	for b := range out {
		bin := b + 1
		if bin >= len(a.coeffs) {
			break
		}
		out[b] = cmplx.Abs(a.coeffs[bin]) * a.norm
	}
	return out
}

// TapSource analyzes whatever a Tap recorded last.
type TapSource struct {
	Tap      *Tap
	Analyzer *Analyzer
}

func (s TapSource) Spectrum(bands int) []float64 {
	if s.Tap == nil || s.Analyzer == nil {
		return nil
	}
	samples := s.Tap.Snapshot(s.Analyzer.size)
	if len(samples) == 0 {
		return nil
	}
	return s.Analyzer.Magnitudes(samples, bands)
}
