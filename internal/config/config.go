package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-rspectra/dsp/core"
	"github.com/cwbudde/algo-rspectra/dsp/sdof"
	"github.com/cwbudde/algo-rspectra/measure/calculator"
	"github.com/cwbudde/algo-rspectra/measure/rspec"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Default history column names.
const (
	DefaultTimeColumn  = "time"
	DefaultValueColumn = "accel"
)

// Run is a parsed run file.
type Run struct {
	Name           string  `yaml:"name"`
	DampingRatio   float64 `yaml:"damping_ratio"`
	StartFrequency float64 `yaml:"start_frequency"`
	EndFrequency   float64 `yaml:"end_frequency"`
	NumFrequencies int     `yaml:"num_frequencies"`
	RegularizeDt   float64 `yaml:"regularize_dt"`
	Spacing        string  `yaml:"spacing"`
	Method         string  `yaml:"method"`
	Workers        int     `yaml:"workers"`

	Histories []HistoryFile `yaml:"histories"`
}

// HistoryFile locates one acceleration history.
type HistoryFile struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	TimeColumn  string `yaml:"time_column"`
	ValueColumn string `yaml:"value_column"`

	// Scale multiplies every value, e.g. 9.81 to convert g to m/s².
	// Zero or omitted means 1.
	Scale float64 `yaml:"scale"`
}

// Load reads the run file at path. Relative history paths are resolved
// against the directory of path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	run, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range run.Histories {
		if f := run.Histories[i].File; !filepath.IsAbs(f) {
			run.Histories[i].File = filepath.Join(dir, f)
		}
	}
	return run, nil
}

// Parse decodes and validates a run file.
func Parse(data []byte) (*Run, error) {
	run := defaults()
	if err := yaml.Unmarshal(data, run); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	for i := range run.Histories {
		h := &run.Histories[i]
		if h.TimeColumn == "" {
			h.TimeColumn = DefaultTimeColumn
		}
		if h.ValueColumn == "" {
			h.ValueColumn = DefaultValueColumn
		}
		if h.Scale == 0 {
			h.Scale = 1
		}
	}

	if err := validate(run); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return run, nil
}

func defaults() *Run {
	d := calculator.DefaultConfig()
	return &Run{
		DampingRatio:   d.Damping,
		StartFrequency: d.StartFrequency,
		EndFrequency:   d.EndFrequency,
		NumFrequencies: d.NumFrequencies,
		Spacing:        d.Spacing.String(),
		Method:         d.Method.String(),
	}
}

// validate checks the file-level structure. Spectrum parameters are
// checked by calculator.Config.Validate.
func validate(run *Run) error {
	var err error
	if len(run.Histories) == 0 {
		err = multierr.Append(err, errors.New("histories: at least one history is required"))
	}

	seen := make(map[string]bool, len(run.Histories))
	for i, h := range run.Histories {
		switch {
		case h.Name == "":
			err = multierr.Append(err, fmt.Errorf("histories[%d]: name is required", i))
		case seen[h.Name]:
			err = multierr.Append(err, fmt.Errorf("histories[%d]: duplicate name %q", i, h.Name))
		}
		seen[h.Name] = true

		if h.File == "" {
			err = multierr.Append(err, fmt.Errorf("histories[%d]: file is required", i))
		}
		if !core.IsFinite(h.Scale) {
			err = multierr.Append(err, fmt.Errorf("histories[%d]: scale must be finite", i))
		}
		if h.TimeColumn == h.ValueColumn {
			err = multierr.Append(err, fmt.Errorf("histories[%d]: time and value columns must differ", i))
		}
	}

	if _, e := rspec.ParseSpacing(run.Spacing); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := sdof.ParseMethod(run.Method); e != nil {
		err = multierr.Append(err, e)
	}
	return err
}

// CalculatorConfig translates the run into calculator options. Extra opts
// are applied last.
func (r *Run) CalculatorConfig(opts ...calculator.Option) (calculator.Config, error) {
	spacing, err := rspec.ParseSpacing(r.Spacing)
	if err != nil {
		return calculator.Config{}, err
	}
	method, err := sdof.ParseMethod(r.Method)
	if err != nil {
		return calculator.Config{}, err
	}

	base := []calculator.Option{
		calculator.WithName(r.Name),
		calculator.WithDamping(r.DampingRatio),
		calculator.WithFrequencyRange(r.StartFrequency, r.EndFrequency),
		calculator.WithNumFrequencies(r.NumFrequencies),
		calculator.WithRegularizeDt(r.RegularizeDt),
		calculator.WithSpacing(spacing),
		calculator.WithMethod(method),
		calculator.WithWorkers(r.Workers),
	}
	return calculator.NewConfig(append(base, opts...)...), nil
}
