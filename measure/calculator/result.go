package calculator

import (
	"github.com/cwbudde/algo-rspectra/measure/rspec"
	"github.com/cwbudde/algo-rspectra/stats/motion"
)

// Output vector names.
const (
	VectorFrequency = "frequency"
	VectorPeriod    = "period"

	suffixSd = "_sd"
	suffixSv = "_sv"
	suffixSa = "_sa"
)

// Result holds the outputs of one run. All vectors share the grid's length
// and index order. Result slices alias internal state and must be treated as
// read-only.
type Result struct {
	RunID   string
	Grid    *rspec.Grid
	Names   []string // history names in output order
	Spectra map[string]*rspec.Spectrum
	Motion  map[string]motion.Measures
}

// VectorNames returns the output vector names in declaration order:
// frequency, period, then <name>_sd, <name>_sv, <name>_sa per history.
func (r *Result) VectorNames() []string {
	return vectorNames(r.Names)
}

// Vectors returns the output vectors keyed by name.
func (r *Result) Vectors() map[string][]float64 {
	out := make(map[string][]float64, 2+3*len(r.Names))
	out[VectorFrequency] = r.Grid.Frequency
	out[VectorPeriod] = r.Grid.Period
	for _, name := range r.Names {
		sp := r.Spectra[name]
		out[name+suffixSd] = sp.Sd
		out[name+suffixSv] = sp.Sv
		out[name+suffixSa] = sp.Sa
	}
	return out
}

func vectorNames(histories []string) []string {
	names := make([]string, 0, 2+3*len(histories))
	names = append(names, VectorFrequency, VectorPeriod)
	for _, h := range histories {
		names = append(names, h+suffixSd, h+suffixSv, h+suffixSa)
	}
	return names
}
