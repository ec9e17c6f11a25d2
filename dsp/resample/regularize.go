package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"github.com/cwbudde/algo-rspectra/dsp/interp"
)

// countSlack absorbs floating-point error in span/dt so that a span that is
// an exact multiple of dt in decimal (0.3/0.1) keeps its last sample.
const countSlack = 1e-9

// Series is a uniformly sampled sequence: Values[i] is the value at
// Start + i*Dt.
type Series struct {
	Start  float64
	Dt     float64
	Values []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Values) }

// Time returns the time of sample i.
func (s Series) Time(i int) float64 {
	return s.Start + float64(i)*s.Dt
}

// Duration returns the time covered from the first to the last sample.
func (s Series) Duration() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return float64(len(s.Values)-1) * s.Dt
}

// MaxSamples bounds the length of a regularized series. Sample indices must
// fit in an int32 for the exporters.
const MaxSamples = math.MaxInt32

// SampleCount returns the number of samples Regularize produces for a span
// of the given length at step dt. It returns [ErrTooManySamples] when the
// count would exceed [MaxSamples].
func SampleCount(span, dt float64) (int, error) {
	if span <= 0 {
		return 1, nil
	}
	n := math.Floor(span/dt+countSlack) + 1
	if !(n <= MaxSamples) {
		return 0, fmt.Errorf("%w: span %v at step %v", ErrTooManySamples, span, dt)
	}
	return int(n), nil
}

// Regularize resamples h onto a uniform grid with step dt, starting at the
// first sample time.
//
// The result is freshly allocated; h is only read.
func Regularize(h History, dt float64) (Series, error) {
	if !core.IsPositive(dt) {
		return Series{}, fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	if err := h.Validate(); err != nil {
		return Series{}, err
	}

	tab, err := interp.NewTable(h.Time, h.Value)
	if err != nil {
		// Validate already enforces every table precondition.
		return Series{}, h.fail(-1, err)
	}

	first, last := h.Span()
	n, err := SampleCount(last-first, dt)
	if err != nil {
		return Series{}, h.fail(-1, err)
	}
	out := make([]float64, n)
	tab.Sample(out, first, dt)

	return Series{Start: first, Dt: dt, Values: out}, nil
}

// Uniform wraps already uniformly sampled values as a Series.
func Uniform(values []float64, start, dt float64) (Series, error) {
	if !core.IsPositive(dt) {
		return Series{}, fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	return Series{Start: start, Dt: dt, Values: values}, nil
}
