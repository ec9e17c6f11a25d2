package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/measure/calculator"
)

// ErrMissingColumn is returned when a history file lacks a configured
// column.
var ErrMissingColumn = errors.New("config: column not found")

// ReadHistory reads the time and value columns of a CSV history. The first
// record is the header; lines starting with '#' are skipped. Values are
// multiplied by h.Scale.
func ReadHistory(r io.Reader, h HistoryFile) (resample.History, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return resample.History{}, fmt.Errorf("config: %s: header: %w", h.Name, err)
	}
	ti, vi := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case strings.ToLower(h.TimeColumn):
			ti = i
		case strings.ToLower(h.ValueColumn):
			vi = i
		}
	}
	if ti < 0 {
		return resample.History{}, fmt.Errorf("%w: %s: %q", ErrMissingColumn, h.Name, h.TimeColumn)
	}
	if vi < 0 {
		return resample.History{}, fmt.Errorf("%w: %s: %q", ErrMissingColumn, h.Name, h.ValueColumn)
	}

	scale := h.Scale
	if scale == 0 {
		scale = 1
	}

	out := resample.History{Name: h.Name}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return resample.History{}, fmt.Errorf("config: %s: %w", h.Name, err)
		}

		line, _ := cr.FieldPos(0)
		t, err := parseField(rec, ti)
		if err != nil {
			return resample.History{}, fmt.Errorf("config: %s: line %d: %s: %w", h.Name, line, h.TimeColumn, err)
		}
		v, err := parseField(rec, vi)
		if err != nil {
			return resample.History{}, fmt.Errorf("config: %s: line %d: %s: %w", h.Name, line, h.ValueColumn, err)
		}
		out.Time = append(out.Time, t)
		out.Value = append(out.Value, v*scale)
	}
	return out, nil
}

func parseField(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, errors.New("missing field")
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
}

// Provider serves the histories of a run from their files. It implements
// calculator.Provider; files are read when the calculator asks for them.
type Provider struct {
	run *Run
}

// NewProvider returns a Provider for run.
func NewProvider(run *Run) *Provider {
	return &Provider{run: run}
}

// Names returns the history names in run-file order.
func (p *Provider) Names() []string {
	names := make([]string, len(p.run.Histories))
	for i, h := range p.run.Histories {
		names[i] = h.Name
	}
	return names
}

// History opens and reads the named history file.
func (p *Provider) History(name string) (resample.History, error) {
	for _, h := range p.run.Histories {
		if h.Name != name {
			continue
		}
		f, err := os.Open(h.File)
		if err != nil {
			return resample.History{}, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		return ReadHistory(f, h)
	}
	return resample.History{}, fmt.Errorf("%w: %q", calculator.ErrUnknownHistory, name)
}
