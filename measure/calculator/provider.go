package calculator

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
)

// Provider supplies named acceleration histories.
type Provider interface {
	// Names returns the history names in output order.
	Names() []string
	// History returns the samples of the named history.
	History(name string) (resample.History, error)
}

// MapProvider serves histories from a map, in lexical name order.
type MapProvider map[string]resample.History

func (m MapProvider) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (m MapProvider) History(name string) (resample.History, error) {
	h, ok := m[name]
	if !ok {
		return resample.History{}, fmt.Errorf("%w: %q", ErrUnknownHistory, name)
	}
	return h, nil
}
