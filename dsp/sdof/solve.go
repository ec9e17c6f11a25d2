package sdof

import (
	"fmt"
	"math"
	"strings"
)

// Point is one response-spectrum ordinate.
type Point struct {
	Period float64 // 1/f in s
	Sd     float64 // spectral displacement
	Sv     float64 // spectral velocity
	Sa     float64 // spectral acceleration
}

// Method selects how Sv and Sa are obtained from the oscillator response.
type Method int

const (
	// Pseudo derives Sv = ω·Sd and Sa = ω²·Sd from the peak displacement.
	Pseudo Method = iota
	// Absolute tracks the peak relative velocity and the peak absolute
	// acceleration directly. Sd is identical to Pseudo.
	Absolute
)

// String returns the method name as used in configuration files.
func (m Method) String() string {
	switch m {
	case Pseudo:
		return "pseudo"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "pseudo" or "absolute" (case-insensitive). An empty
// string selects Pseudo.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pseudo":
		return Pseudo, nil
	case "absolute":
		return Absolute, nil
	default:
		return Pseudo, fmt.Errorf("sdof: unknown method %q", s)
	}
}

// Kernel computes a spectral point from an excitation record.
type Kernel interface {
	Peak(o *Oscillator, accel []float64) Point
}

// Kernel returns the implementation for m. Unknown values fall back to
// Pseudo.
func (m Method) Kernel() Kernel {
	if m == Absolute {
		return absoluteKernel{}
	}
	return pseudoKernel{}
}

type pseudoKernel struct{}

func (pseudoKernel) Peak(o *Oscillator, accel []float64) Point {
	c := o.Coefficients
	var u, v, sd float64
	for i := 0; i+1 < len(accel); i++ {
		a0, a1 := accel[i], accel[i+1]
		u, v = c.A11*u+c.A12*v+c.B11*a0+c.B12*a1,
			c.A21*u+c.A22*v+c.B21*a0+c.B22*a1
		if au := math.Abs(u); au > sd {
			sd = au
		}
	}
	return Point{
		Period: 1 / o.freq,
		Sd:     sd,
		Sv:     o.omega * sd,
		Sa:     o.omega * o.omega * sd,
	}
}

type absoluteKernel struct{}

func (absoluteKernel) Peak(o *Oscillator, accel []float64) Point {
	c := o.Coefficients
	k2 := 2 * o.damping * o.omega
	w2 := o.omega * o.omega

	var u, v, sd, sv, sa float64
	for i := 0; i+1 < len(accel); i++ {
		a0, a1 := accel[i], accel[i+1]
		u, v = c.A11*u+c.A12*v+c.B11*a0+c.B12*a1,
			c.A21*u+c.A22*v+c.B21*a0+c.B22*a1
		if au := math.Abs(u); au > sd {
			sd = au
		}
		if av := math.Abs(v); av > sv {
			sv = av
		}
		// ü + a = -(2ξω·u̇ + ω²·u)
		if aa := math.Abs(k2*v + w2*u); aa > sa {
			sa = aa
		}
	}
	return Point{Period: 1 / o.freq, Sd: sd, Sv: sv, Sa: sa}
}

// Solve returns the pseudo-spectral point of an oscillator with natural
// frequency freq and the given damping ratio, excited by accel sampled at dt.
func Solve(accel []float64, dt, freq, damping float64) (Point, error) {
	o, err := NewOscillator(freq, damping, dt)
	if err != nil {
		return Point{}, err
	}
	return o.Peak(accel, Pseudo), nil
}

// Response returns the relative displacement and velocity history of the
// oscillator excited by accel sampled at dt.
func Response(accel []float64, dt, freq, damping float64) (u, v []float64, err error) {
	o, err := NewOscillator(freq, damping, dt)
	if err != nil {
		return nil, nil, err
	}
	u, v = o.Response(accel, nil, nil)
	return u, v, nil
}
