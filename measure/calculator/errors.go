package calculator

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
)

// Errors returned by Calculator.
var (
	ErrNotSetup       = errors.New("calculator: Setup must succeed before Run")
	ErrUnknownHistory = errors.New("calculator: unknown history")
)

// ConfigError describes one invalid run parameter.
type ConfigError struct {
	Run    string // run name, empty if unnamed
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Run == "" {
		return fmt.Sprintf("calculator: %s = %v: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("calculator: run %q: %s = %v: %s", e.Run, e.Param, e.Value, e.Reason)
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsDataError reports whether err is or wraps a *resample.DataError.
func IsDataError(err error) bool {
	var de *resample.DataError
	return errors.As(err, &de)
}
