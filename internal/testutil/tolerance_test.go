package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffEmpty(t *testing.T) {
	if d, err := MaxAbsDiff(nil, nil); err != nil || d != 0 {
		t.Fatalf("MaxAbsDiff(nil, nil) = %v, %v", d, err)
	}
}

func TestRelErr(t *testing.T) {
	if got := RelErr(1.01, 1); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("RelErr = %v, want 0.01", got)
	}
	if got := RelErr(-0.5, 0); got != 0.5 {
		t.Fatalf("RelErr with zero want = %v, want 0.5", got)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -2})
	RequireNonNegative(t, []float64{0, 1, 2})
	RequireStrictlyIncreasing(t, []float64{-1, 0, 3})
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
}
