package sdof

import (
	"errors"
	"fmt"
)

// MaxDamping is the exclusive upper bound for the damping ratio. Values at
// or above 1 are over-critical and accepted; beyond MaxDamping the
// oscillator no longer describes a structure.
const MaxDamping = 10.0

// Errors wrapped by [ParameterError].
var (
	ErrInvalidFrequency = errors.New("sdof: frequency must be positive and finite")
	ErrInvalidDamping   = errors.New("sdof: damping ratio must be in (0, MaxDamping)")
	ErrInvalidStep      = errors.New("sdof: time step must be positive and finite")
)

// ParameterError reports an invalid oscillator parameter.
type ParameterError struct {
	Param string
	Value float64
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Err, e.Param, e.Value)
}

func (e *ParameterError) Unwrap() error { return e.Err }
