package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rspectra/dsp/core"
)

// Errors describing malformed histories. They are wrapped in a [*DataError].
var (
	ErrTooShort       = errors.New("resample: history needs at least 2 samples")
	ErrLengthMismatch = errors.New("resample: time and value must have same length")
	ErrNotIncreasing  = errors.New("resample: time must be strictly increasing")
	ErrNonFinite      = errors.New("resample: non-finite sample")
	ErrTooManySamples = errors.New("resample: step too small for history span")
)

// ErrInvalidStep indicates a non-positive or non-finite regularization step.
var ErrInvalidStep = errors.New("resample: step must be positive and finite")

// History is an ordered time series of (Time[i], Value[i]) samples.
type History struct {
	// Name identifies the history in error messages. Optional.
	Name  string
	Time  []float64
	Value []float64
}

// Len returns the number of samples.
func (h History) Len() int { return len(h.Time) }

// Span returns the first and last sample time. It must only be called on a
// valid history.
func (h History) Span() (first, last float64) {
	return h.Time[0], h.Time[len(h.Time)-1]
}

// Validate checks that h has at least two samples, matching lengths, finite
// values and strictly increasing times.
func (h History) Validate() error {
	if len(h.Time) != len(h.Value) {
		return h.fail(-1, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(h.Time), len(h.Value)))
	}
	if len(h.Time) < 2 {
		return h.fail(-1, fmt.Errorf("%w: got %d", ErrTooShort, len(h.Time)))
	}
	for i := range h.Time {
		if !core.IsFinite(h.Time[i]) || !core.IsFinite(h.Value[i]) {
			return h.fail(i, ErrNonFinite)
		}
		if i > 0 && !(h.Time[i] > h.Time[i-1]) {
			return h.fail(i, ErrNotIncreasing)
		}
	}
	return nil
}

func (h History) fail(index int, err error) *DataError {
	return &DataError{History: h.Name, Index: index, Err: err}
}

// DataError reports a history that cannot be regularized.
type DataError struct {
	History string // history name, empty if unnamed
	Index   int    // offending sample index, -1 if not sample-specific
	Err     error
}

func (e *DataError) Error() string {
	name := e.History
	if name == "" {
		name = "<unnamed>"
	}
	if e.Index >= 0 {
		return fmt.Sprintf("history %q: sample %d: %v", name, e.Index, e.Err)
	}
	return fmt.Sprintf("history %q: %v", name, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
