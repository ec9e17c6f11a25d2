package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	requireEach(t, data, core.IsFinite, "non-finite")
}

// RequireNonNegative fails t if any element is negative or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	requireEach(t, data, func(v float64) bool { return v >= 0 }, "negative")
}

func requireEach(t *testing.T, data []float64, ok func(float64) bool, what string) {
	t.Helper()
	for i, v := range data {
		if !ok(v) {
			t.Fatalf("index %d: %s value %v", i, what, v)
		}
	}
}

// RequireStrictlyIncreasing fails t unless data[i] > data[i-1] for all i.
func RequireStrictlyIncreasing(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			t.Fatalf("index %d: %v does not exceed %v", i, data[i], data[i-1])
		}
	}
}

// RelErr returns |got-want|/|want|, or |got| when want is zero.
func RelErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// MaxAbsDiff returns the L∞ distance between two responses of equal length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
