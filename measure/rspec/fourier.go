package rspec

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-vecmath"
)

// ErrShortSeries is returned when a series has fewer than two samples.
var ErrShortSeries = errors.New("rspec: series needs at least 2 samples")

// FourierAmplitude returns the single-sided Fourier amplitude spectrum of s.
// The record is zero padded to the next power of two N; bin k lies at
// k/(N·dt) Hz and its amplitude is |X_k|·dt, which approximates the
// continuous transform of the acceleration.
func FourierAmplitude(s resample.Series) (freq, amp []float64, err error) {
	if len(s.Values) < 2 {
		return nil, nil, ErrShortSeries
	}
	if !(s.Dt > 0) {
		return nil, nil, fmt.Errorf("%w: %v", resample.ErrInvalidStep, s.Dt)
	}

	size := nextPowerOf2(len(s.Values))
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("rspec: fft plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range s.Values {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("rspec: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	amp = make([]float64, bins)
	vecmath.Magnitude(amp, re, im)
	vecmath.ScaleBlockInPlace(amp, s.Dt)

	freq = make([]float64, bins)
	df := 1 / (float64(size) * s.Dt)
	for k := range freq {
		freq[k] = float64(k) * df
	}
	return freq, amp, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
