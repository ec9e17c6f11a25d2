package rspec

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/dsp/sdof"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNilGrid is returned when Sweep is called without a grid.
var ErrNilGrid = errors.New("rspec: grid is nil or empty")

// Option configures a Sweep.
type Option func(*sweepConfig)

type sweepConfig struct {
	workers int
	method  sdof.Method
}

func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		workers: runtime.GOMAXPROCS(0),
		method:  sdof.Pseudo,
	}
}

// WithWorkers bounds the number of goroutines solving frequencies. Values
// below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *sweepConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithMethod selects how Sv and Sa are obtained. The default is
// sdof.Pseudo.
func WithMethod(m sdof.Method) Option {
	return func(cfg *sweepConfig) {
		cfg.method = m
	}
}

// Sweep solves one oscillator per grid frequency for the acceleration
// record s and returns the spectrum, index-aligned with g.
//
// Frequencies are distributed over a bounded pool of workers writing
// distinct slots; the result is identical for any worker count.
func Sweep(s resample.Series, g *Grid, damping float64, opts ...Option) (*Spectrum, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrNilGrid
	}
	if !core.IsPositive(s.Dt) {
		return nil, fmt.Errorf("%w: %v", resample.ErrInvalidStep, s.Dt)
	}

	cfg := defaultSweepConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Grid and step are valid here; only the damping ratio can fail.
	if _, err := sdof.NewOscillator(g.Frequency[0], damping, s.Dt); err != nil {
		return nil, err
	}

	sp := newSpectrum(g)
	if len(s.Values) < 2 || vecmath.MaxAbs(s.Values) == 0 {
		return sp, nil
	}

	n := g.Len()
	workers := min(cfg.workers, n)
	kernel := cfg.method.Kernel()
	pseudo := cfg.method == sdof.Pseudo

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				o, _ := sdof.NewOscillator(g.Frequency[i], damping, s.Dt)
				p := kernel.Peak(o, s.Values)
				sp.Sd[i] = p.Sd
				if !pseudo {
					sp.Sv[i] = p.Sv
					sp.Sa[i] = p.Sa
				}
			}
		}(w)
	}
	wg.Wait()

	if pseudo {
		vecmath.MulBlock(sp.Sv, sp.Sd, g.omega)
		vecmath.MulBlock(sp.Sa, sp.Sd, g.omega2)
	}
	return sp, nil
}
