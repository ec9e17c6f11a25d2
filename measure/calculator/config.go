package calculator

import (
	"fmt"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"github.com/cwbudde/algo-rspectra/dsp/sdof"
	"github.com/cwbudde/algo-rspectra/measure/rspec"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Defaults applied by DefaultConfig.
const (
	DefaultDamping        = 0.05
	DefaultStartFrequency = 0.01  // Hz
	DefaultEndFrequency   = 100.0 // Hz
	DefaultNumFrequencies = 401
)

// Config holds the parameters of a run.
type Config struct {
	// Name labels the run in errors and logs. Optional.
	Name string

	Damping        float64 // damping ratio ξ
	StartFrequency float64 // Hz
	EndFrequency   float64 // Hz
	NumFrequencies int
	RegularizeDt   float64 // s, required

	Spacing rspec.Spacing
	Method  sdof.Method

	// Workers bounds both the histories processed concurrently and the
	// frequency workers of each sweep. Zero selects GOMAXPROCS.
	Workers int

	Logger *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default run parameters. RegularizeDt has no
// default and must be set.
func DefaultConfig() Config {
	return Config{
		Damping:        DefaultDamping,
		StartFrequency: DefaultStartFrequency,
		EndFrequency:   DefaultEndFrequency,
		NumFrequencies: DefaultNumFrequencies,
		Spacing:        rspec.Logarithmic,
		Method:         sdof.Pseudo,
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithName sets the run name.
func WithName(name string) Option {
	return func(cfg *Config) { cfg.Name = name }
}

// WithDamping sets the damping ratio.
func WithDamping(xi float64) Option {
	return func(cfg *Config) { cfg.Damping = xi }
}

// WithFrequencyRange sets the first and last grid frequency in Hz.
func WithFrequencyRange(start, end float64) Option {
	return func(cfg *Config) {
		cfg.StartFrequency = start
		cfg.EndFrequency = end
	}
}

// WithNumFrequencies sets the grid size.
func WithNumFrequencies(n int) Option {
	return func(cfg *Config) { cfg.NumFrequencies = n }
}

// WithRegularizeDt sets the regularization step in seconds.
func WithRegularizeDt(dt float64) Option {
	return func(cfg *Config) { cfg.RegularizeDt = dt }
}

// WithSpacing selects the grid spacing.
func WithSpacing(s rspec.Spacing) Option {
	return func(cfg *Config) { cfg.Spacing = s }
}

// WithMethod selects how Sv and Sa are derived.
func WithMethod(m sdof.Method) Option {
	return func(cfg *Config) { cfg.Method = m }
}

// WithWorkers bounds run concurrency. Zero selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *Config) { cfg.Workers = n }
}

// WithLogger sets the run logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// Validate reports every violated parameter constraint. The returned error
// combines one *ConfigError per violation; use multierr.Errors to list
// them.
func (c Config) Validate() error {
	var err error
	fail := func(param string, value any, reason string) {
		err = multierr.Append(err, &ConfigError{Run: c.Name, Param: param, Value: value, Reason: reason})
	}

	switch {
	case !core.IsPositive(c.Damping):
		fail("damping_ratio", c.Damping, "must be positive and finite")
	case c.Damping >= sdof.MaxDamping:
		fail("damping_ratio", c.Damping, fmt.Sprintf("must be below %v", sdof.MaxDamping))
	}

	startOK := core.IsPositive(c.StartFrequency)
	if !startOK {
		fail("start_frequency", c.StartFrequency, "must be positive and finite")
	}
	endOK := core.IsPositive(c.EndFrequency)
	if !endOK {
		fail("end_frequency", c.EndFrequency, "must be positive and finite")
	}
	if startOK && endOK && c.StartFrequency >= c.EndFrequency {
		fail("start_frequency", c.StartFrequency, fmt.Sprintf("must be below end_frequency %v", c.EndFrequency))
	}

	if c.NumFrequencies < 1 {
		fail("num_frequencies", c.NumFrequencies, "must be at least 1")
	}
	if !core.IsPositive(c.RegularizeDt) {
		fail("regularize_dt", c.RegularizeDt, "must be positive and finite")
	}
	if c.Spacing != rspec.Logarithmic && c.Spacing != rspec.Linear {
		fail("spacing", c.Spacing, "unknown spacing")
	}
	if c.Method != sdof.Pseudo && c.Method != sdof.Absolute {
		fail("method", c.Method, "unknown method")
	}
	if c.Workers < 0 {
		fail("workers", c.Workers, "must not be negative")
	}
	return err
}
