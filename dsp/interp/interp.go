package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmpty is returned when a table has no points.
	ErrEmpty = errors.New("interp: table must not be empty")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y must have same length")
	// ErrNotIncreasing is returned when x is not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
)

// Linear2 interpolates between x0 and x1 at fractional position t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Table is a piecewise-linear function defined by sample points (x[i], y[i]).
// Queries outside [x[0], x[n-1]] return the nearest end value.
//
// A Table only reads the slices it was built from; callers must not modify
// them while the Table is in use.
type Table struct {
	x []float64
	y []float64
}

// NewTable validates x and y and returns a Table over them.
// x must be strictly increasing and have the same length as y.
func NewTable(x, y []float64) (*Table, error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}
	return &Table{x: x, y: y}, nil
}

// Len returns the number of points.
func (t *Table) Len() int { return len(t.x) }

// Span returns the first and last abscissa.
func (t *Table) Span() (first, last float64) {
	return t.x[0], t.x[len(t.x)-1]
}

// At returns the interpolated value at q.
func (t *Table) At(q float64) float64 {
	n := len(t.x)
	if q <= t.x[0] {
		return t.y[0]
	}
	if q >= t.x[n-1] {
		return t.y[n-1]
	}
	j := sort.SearchFloat64s(t.x, q)
	if t.x[j] == q {
		return t.y[j]
	}
	return t.segment(j-1, q)
}

// Sample fills dst with the values at start + i*step, i = 0..len(dst)-1.
//
// The query grid is walked with a forward cursor, so the cost is
// O(len(dst) + Len()) for step > 0. Query times are computed from the index,
// not accumulated, to avoid drift over long records.
func (t *Table) Sample(dst []float64, start, step float64) {
	if step <= 0 || math.IsNaN(step) {
		for i := range dst {
			dst[i] = t.At(start)
		}
		return
	}

	n := len(t.x)
	j := 0
	for i := range dst {
		q := start + float64(i)*step
		if q <= t.x[0] {
			dst[i] = t.y[0]
			continue
		}
		if q >= t.x[n-1] {
			dst[i] = t.y[n-1]
			continue
		}
		for t.x[j+1] < q {
			j++
		}
		if t.x[j+1] == q {
			dst[i] = t.y[j+1]
			continue
		}
		dst[i] = t.segment(j, q)
	}
}

// segment interpolates inside [x[j], x[j+1]].
func (t *Table) segment(j int, q float64) float64 {
	x0, x1 := t.x[j], t.x[j+1]
	return Linear2((q-x0)/(x1-x0), t.y[j], t.y[j+1])
}
