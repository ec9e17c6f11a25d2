package calculator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/measure/rspec"
	"github.com/cwbudde/algo-rspectra/stats/motion"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Calculator computes response spectra for the histories of a Provider.
//
// Setup validates the configuration, builds the frequency grid and declares
// the output vectors. Run may then be called any number of times; each call
// starts from cleared outputs. A Calculator is not safe for concurrent use.
type Calculator struct {
	cfg Config
	log *zap.Logger

	provider    Provider
	grid        *rspec.Grid
	names       []string
	vectorNames []string

	result *Result
}

// New returns a Calculator configured by opts applied to DefaultConfig.
func New(opts ...Option) *Calculator {
	return NewWithConfig(NewConfig(opts...))
}

// NewWithConfig returns a Calculator for cfg.
func NewWithConfig(cfg Config) *Calculator {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Name != "" {
		log = log.With(zap.String("run", cfg.Name))
	}
	return &Calculator{cfg: cfg, log: log}
}

// Config returns the run configuration.
func (c *Calculator) Config() Config { return c.cfg }

// Setup validates the configuration, builds the shared grid and binds the
// histories of p. Output vector names are available afterwards through
// VectorNames.
func (c *Calculator) Setup(p Provider) error {
	c.provider = nil
	c.grid = nil
	c.names = nil
	c.vectorNames = nil
	c.result = nil

	if err := c.cfg.Validate(); err != nil {
		c.log.Warn("invalid configuration", zap.Error(err))
		return err
	}

	var names []string
	if p != nil {
		names = p.Names()
	}
	if err := c.checkNames(names); err != nil {
		return err
	}

	g, err := rspec.NewGrid(c.cfg.StartFrequency, c.cfg.EndFrequency, c.cfg.NumFrequencies, c.cfg.Spacing)
	if err != nil {
		// Only a range too narrow for the requested count gets here.
		c.log.Warn("invalid configuration", zap.Error(err))
		return &ConfigError{Run: c.cfg.Name, Param: "num_frequencies", Value: c.cfg.NumFrequencies, Reason: err.Error()}
	}

	c.provider = p
	c.grid = g
	c.names = names
	c.vectorNames = vectorNames(names)

	c.log.Debug("setup complete",
		zap.Int("histories", len(names)),
		zap.Int("frequencies", g.Len()),
		zap.Stringer("spacing", g.Spacing),
		zap.Stringer("method", c.cfg.Method),
	)
	return nil
}

func (c *Calculator) checkNames(names []string) error {
	var err error
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		switch {
		case name == "":
			err = multierr.Append(err, &ConfigError{Run: c.cfg.Name, Param: "histories", Value: name, Reason: "empty history name"})
		case seen[name]:
			err = multierr.Append(err, &ConfigError{Run: c.cfg.Name, Param: "histories", Value: name, Reason: "duplicate history name"})
		}
		seen[name] = true
	}
	return err
}

// Grid returns the frequency grid built by Setup, or nil.
func (c *Calculator) Grid() *rspec.Grid { return c.grid }

// VectorNames returns the output vector names declared by Setup, in output
// order.
func (c *Calculator) VectorNames() []string {
	return append([]string(nil), c.vectorNames...)
}

// Result returns the outputs of the last successful Run, or nil.
func (c *Calculator) Result() *Result { return c.result }

// Reset clears the outputs of the previous Run. The grid and bound
// histories are kept.
func (c *Calculator) Reset() {
	c.result = nil
}

// Run regularizes and sweeps every history, in parallel, over the shared
// grid. The first failure cancels the remaining histories and Run returns
// nil with that error.
func (c *Calculator) Run(ctx context.Context) (*Result, error) {
	if c.grid == nil {
		return nil, ErrNotSetup
	}
	c.Reset()

	runID := uuid.NewString()
	log := c.log.With(zap.String("run_id", runID))
	start := time.Now()
	log.Info("run started",
		zap.Int("histories", len(c.names)),
		zap.Int("frequencies", c.grid.Len()),
		zap.Float64("damping_ratio", c.cfg.Damping),
		zap.Float64("regularize_dt", c.cfg.RegularizeDt),
	)

	workers := c.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	spectra := make([]*rspec.Spectrum, len(c.names))
	measures := make([]motion.Measures, len(c.names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range c.names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sp, m, err := c.history(name, workers, log)
			if err != nil {
				return err
			}
			spectra[i] = sp
			measures[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return nil, err
	}

	res := &Result{
		RunID:   runID,
		Grid:    c.grid,
		Names:   append([]string(nil), c.names...),
		Spectra: make(map[string]*rspec.Spectrum, len(c.names)),
		Motion:  make(map[string]motion.Measures, len(c.names)),
	}
	for i, name := range c.names {
		res.Spectra[name] = spectra[i]
		res.Motion[name] = measures[i]
	}
	c.result = res

	log.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (c *Calculator) history(name string, workers int, log *zap.Logger) (*rspec.Spectrum, motion.Measures, error) {
	start := time.Now()

	h, err := c.provider.History(name)
	if err != nil {
		return nil, motion.Measures{}, fmt.Errorf("calculator: history %q: %w", name, err)
	}
	h.Name = name

	s, err := resample.Regularize(h, c.cfg.RegularizeDt)
	if err != nil {
		return nil, motion.Measures{}, err
	}

	sp, err := rspec.Sweep(s, c.grid, c.cfg.Damping,
		rspec.WithWorkers(workers),
		rspec.WithMethod(c.cfg.Method),
	)
	if err != nil {
		return nil, motion.Measures{}, fmt.Errorf("calculator: history %q: %w", name, err)
	}
	sp.Name = name

	m := motion.Compute(s)
	if freq, amp, err := rspec.FourierAmplitude(s); err == nil {
		m.MeanPeriod = motion.MeanPeriod(freq, amp)
	}

	peakIdx, peakSa := sp.PeakSa()
	log.Debug("history done",
		zap.String("history", name),
		zap.Int("input_samples", h.Len()),
		zap.Int("samples", s.Len()),
		zap.Float64("peak_sa", peakSa),
		zap.Float64("peak_period", c.grid.Period[peakIdx]),
		zap.Float64("pga", m.PGA),
		zap.Duration("elapsed", time.Since(start)),
	)
	return sp, m, nil
}

// Calculate computes the spectra of histories with cfg in one call.
func Calculate(histories map[string]resample.History, cfg Config) (*Result, error) {
	c := NewWithConfig(cfg)
	if err := c.Setup(MapProvider(histories)); err != nil {
		return nil, err
	}
	return c.Run(context.Background())
}
