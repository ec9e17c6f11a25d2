package interp

import (
	"errors"
	"math"
	"testing"
)

func TestLinear2(t *testing.T) {
	for _, tc := range []struct {
		t, x0, x1 float64
		want      float64
	}{
		{t: 0, x0: 2, x1: 4, want: 2},
		{t: 0.25, x0: 2, x1: 4, want: 2.5},
		{t: 1, x0: 2, x1: 4, want: 4},
		{t: 0.5, x0: -1, x1: 1, want: 0},
	} {
		if got := Linear2(tc.t, tc.x0, tc.x1); got != tc.want {
			t.Fatalf("Linear2(%v, %v, %v) = %v, want %v", tc.t, tc.x0, tc.x1, got, tc.want)
		}
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		wantErr error
	}{
		{"valid", []float64{0, 1, 2}, []float64{1, 2, 3}, nil},
		{"single point", []float64{0}, []float64{5}, nil},
		{"empty", nil, nil, ErrEmpty},
		{"length mismatch", []float64{0, 1}, []float64{1}, ErrLengthMismatch},
		{"duplicate x", []float64{0, 1, 1}, []float64{0, 1, 2}, ErrNotIncreasing},
		{"decreasing x", []float64{0, 2, 1}, []float64{0, 1, 2}, ErrNotIncreasing},
		{"nan x", []float64{0, math.NaN()}, []float64{0, 1}, ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.x, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTableAt(t *testing.T) {
	tab, err := NewTable([]float64{0, 1, 3}, []float64{0, 2, -2})
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		q, want float64
	}{
		{q: -1, want: 0},
		{q: 0, want: 0},
		{q: 0.5, want: 1},
		{q: 1, want: 2},
		{q: 2, want: 0},
		{q: 3, want: -2},
		{q: 10, want: -2},
	} {
		if got := tab.At(tc.q); math.Abs(got-tc.want) > 1e-15 {
			t.Fatalf("At(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestTableSampleMatchesAt(t *testing.T) {
	x := []float64{0, 0.013, 0.02, 0.047, 0.05, 0.081, 0.1}
	y := []float64{0, 0.4, -0.2, 0.9, 0.1, -0.7, 0.3}
	tab, err := NewTable(x, y)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, 23)
	tab.Sample(dst, 0, 0.005)

	for i, got := range dst {
		want := tab.At(float64(i) * 0.005)
		if math.Abs(got-want) > 1e-14 {
			t.Fatalf("index %d: Sample = %v, At = %v", i, got, want)
		}
	}
}

func TestTableSampleExactAtKnots(t *testing.T) {
	x := []float64{0, 0.25, 0.5, 0.75, 1}
	y := []float64{0, 1, 0, -1, 0}
	tab, err := NewTable(x, y)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, len(x))
	tab.Sample(dst, 0, 0.25)

	for i := range y {
		if dst[i] != y[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], y[i])
		}
	}
}

func TestTableSampleClampsPastEnd(t *testing.T) {
	tab, err := NewTable([]float64{0, 1}, []float64{1, 3})
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, 4)
	tab.Sample(dst, 0.5, 0.5)

	want := []float64{2, 3, 3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestTableSpan(t *testing.T) {
	tab, err := NewTable([]float64{-2, 0, 5}, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	first, last := tab.Span()
	if first != -2 || last != 5 || tab.Len() != 3 {
		t.Fatalf("Span() = (%v, %v), Len() = %d", first, last, tab.Len())
	}
}
