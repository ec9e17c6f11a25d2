package motion

import (
	"math"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// StandardGravity is the default gravitational acceleration in m/s².
const StandardGravity = 9.81

// Husid levels bounding the significant duration.
const (
	significantLow  = 0.05
	significantHigh = 0.95
)

// Measures holds the intensity measures of one acceleration record. Units
// follow the record: with a in m/s², PGA is m/s², Arias intensity m/s and
// CAV m/s.
type Measures struct {
	Samples  int
	Duration float64 // s

	PGA      float64 // max |a|
	PeakTime float64 // time of first |a| == PGA
	RMS      float64

	AriasIntensity      float64 // π/(2g)·∫a²dt
	SignificantDuration float64 // D5-95 from the Husid curve
	CAV                 float64 // ∫|a|dt
	ZeroCrossings       int     // sign changes, skipping exact zeros

	// MeanPeriod is the Fourier mean period; see [MeanPeriod]. Compute
	// leaves it zero.
	MeanPeriod float64
}

// Option configures Compute.
type Option func(*config)

type config struct {
	gravity float64
}

// WithGravity sets the gravitational acceleration used by the Arias
// intensity, in the record's units. Non-positive values are ignored.
func WithGravity(g float64) Option {
	return func(cfg *config) {
		if g > 0 {
			cfg.gravity = g
		}
	}
}

// Compute returns the intensity measures of s.
func Compute(s resample.Series, opts ...Option) Measures {
	cfg := config{gravity: StandardGravity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a := s.Values
	n := len(a)
	m := Measures{Samples: n, Duration: s.Duration()}
	if n == 0 {
		return m
	}

	m.PGA = vecmath.MaxAbs(a)
	for i, x := range a {
		if math.Abs(x) == m.PGA {
			m.PeakTime = s.Time(i)
			break
		}
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, a, a)
	m.RMS = math.Sqrt(floats.Sum(sq) / float64(n))
	if n < 2 {
		return m
	}

	// Husid curve: running ∫a²dt, exact for piecewise-linear a.
	husid := make([]float64, n)
	last := a[0] // last nonzero sample
	for i := 1; i < n; i++ {
		a0, a1 := a[i-1], a[i]
		husid[i] = husid[i-1] + s.Dt*(a0*a0+a0*a1+a1*a1)/3
		m.CAV += s.Dt * absSegment(a0, a1)
		if a1 != 0 {
			if last != 0 && (last < 0) != (a1 < 0) {
				m.ZeroCrossings++
			}
			last = a1
		}
	}

	total := husid[n-1]
	m.AriasIntensity = math.Pi / (2 * cfg.gravity) * total
	if total > 0 {
		floats.Scale(1/total, husid)
		m.SignificantDuration = crossing(husid, significantHigh, s) - crossing(husid, significantLow, s)
	}
	return m
}

// absSegment returns the mean of |a| over a linear segment from a0 to a1.
func absSegment(a0, a1 float64) float64 {
	if a0*a1 >= 0 {
		return (math.Abs(a0) + math.Abs(a1)) / 2
	}
	// Two triangles meeting at the zero crossing.
	return (a0*a0 + a1*a1) / (2 * (math.Abs(a0) + math.Abs(a1)))
}

// crossing returns the time at which the non-decreasing curve h first
// reaches level, interpolating linearly between samples.
func crossing(h []float64, level float64, s resample.Series) float64 {
	for i := 1; i < len(h); i++ {
		if h[i] >= level {
			frac := 0.0
			if d := h[i] - h[i-1]; d > 0 {
				frac = core.Clamp((level-h[i-1])/d, 0, 1)
			}
			return s.Time(i-1) + frac*s.Dt
		}
	}
	return s.Time(len(h) - 1)
}
