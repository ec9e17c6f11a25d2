package rspec

import "github.com/cwbudde/algo-rspectra/dsp/sdof"

// Spectrum holds the response spectrum of one record. Sd, Sv and Sa are
// index-aligned with the Grid the spectrum was swept on.
type Spectrum struct {
	Name string
	Sd   []float64
	Sv   []float64
	Sa   []float64

	grid *Grid
}

func newSpectrum(g *Grid) *Spectrum {
	n := g.Len()
	return &Spectrum{
		Sd:   make([]float64, n),
		Sv:   make([]float64, n),
		Sa:   make([]float64, n),
		grid: g,
	}
}

// Len returns the number of spectral ordinates.
func (s *Spectrum) Len() int { return len(s.Sd) }

// Grid returns the grid the spectrum was computed on.
func (s *Spectrum) Grid() *Grid { return s.grid }

// Point returns ordinate i.
func (s *Spectrum) Point(i int) sdof.Point {
	return sdof.Point{
		Period: s.grid.Period[i],
		Sd:     s.Sd[i],
		Sv:     s.Sv[i],
		Sa:     s.Sa[i],
	}
}

// PeakSa returns the index and value of the largest spectral acceleration.
// The first index wins on ties; an empty spectrum yields (-1, 0).
func (s *Spectrum) PeakSa() (int, float64) {
	idx, peak := -1, 0.0
	for i, v := range s.Sa {
		if idx < 0 || v > peak {
			idx, peak = i, v
		}
	}
	return idx, peak
}
