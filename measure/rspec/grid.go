package rspec

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by NewGrid.
var (
	ErrInvalidFrequency = errors.New("rspec: frequency must be positive and finite")
	ErrFrequencyOrder   = errors.New("rspec: start frequency must be less than end frequency")
	ErrInvalidCount     = errors.New("rspec: number of frequencies must be >= 1")
)

// Spacing selects how grid frequencies are distributed between the end
// points.
type Spacing int

const (
	// Logarithmic spaces frequencies evenly in ln f.
	Logarithmic Spacing = iota
	// Linear spaces frequencies evenly in f.
	Linear
)

func (s Spacing) String() string {
	switch s {
	case Logarithmic:
		return "log"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing parses "log" or "linear". An empty string selects
// Logarithmic.
func ParseSpacing(s string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "log", "logarithmic":
		return Logarithmic, nil
	case "lin", "linear":
		return Linear, nil
	default:
		return Logarithmic, fmt.Errorf("rspec: unknown spacing %q", s)
	}
}

// Grid is an immutable, strictly increasing set of oscillator frequencies
// with their periods. Period[i] is exactly 1/Frequency[i].
type Grid struct {
	Frequency []float64 // Hz
	Period    []float64 // s
	Spacing   Spacing

	omega  []float64 // 2πf
	omega2 []float64 // ω²
}

// NewGrid builds n frequencies from start to end. The end points are
// reproduced exactly; n == 1 yields the single frequency start.
//
// With logarithmic spacing
//
//	f_i = exp(ln start + i·(ln end − ln start)/(n−1))
func NewGrid(start, end float64, n int, spacing Spacing) (*Grid, error) {
	if !core.IsPositive(start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidFrequency, start)
	}
	if !core.IsPositive(end) {
		return nil, fmt.Errorf("%w: end %v", ErrInvalidFrequency, end)
	}
	if start >= end {
		return nil, fmt.Errorf("%w: %v >= %v", ErrFrequencyOrder, start, end)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	freq := make([]float64, n)
	switch {
	case n == 1:
		freq[0] = start
	case spacing == Linear:
		floats.Span(freq, start, end)
	default:
		floats.LogSpan(freq, start, end)
	}
	freq[0] = start
	if n > 1 {
		freq[n-1] = end
	}
	for i := 1; i < n; i++ {
		if !(freq[i] > freq[i-1]) {
			return nil, fmt.Errorf("%w: %d frequencies do not fit in [%v, %v]", ErrFrequencyOrder, n, start, end)
		}
	}

	g := &Grid{
		Frequency: freq,
		Period:    make([]float64, n),
		Spacing:   spacing,
		omega:     make([]float64, n),
		omega2:    make([]float64, n),
	}
	for i, f := range freq {
		g.Period[i] = 1 / f
		w := 2 * math.Pi * f
		g.omega[i] = w
		g.omega2[i] = w * w
	}
	return g, nil
}

// Len returns the number of frequencies.
func (g *Grid) Len() int { return len(g.Frequency) }
