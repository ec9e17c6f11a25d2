package sdof

import (
	"math"

	"github.com/cwbudde/algo-rspectra/dsp/core"
)

// Coefficients holds the constant step matrices of the recursion.
//
//	u'  = A11*u + A12*v + B11*a0 + B12*a1
//	v'  = A21*u + A22*v + B21*a0 + B22*a1
//
// where (u, v) is relative displacement and velocity and a0, a1 are the
// ground acceleration at the start and end of the step.
type Coefficients struct {
	A11, A12, A21, A22 float64 // state transition
	B11, B12, B21, B22 float64 // load participation
}

// Oscillator is a damped SDOF oscillator discretized at a fixed time step.
// It is immutable after construction and safe for concurrent use.
type Oscillator struct {
	Coefficients

	freq    float64
	omega   float64
	damping float64
	dt      float64
}

// NewOscillator precomputes the step coefficients for natural frequency freq
// (Hz), damping ratio and time step dt (s).
func NewOscillator(freq, damping, dt float64) (*Oscillator, error) {
	if !core.IsPositive(freq) {
		return nil, &ParameterError{Param: "frequency", Value: freq, Err: ErrInvalidFrequency}
	}
	if !(damping > 0) || !(damping < MaxDamping) {
		return nil, &ParameterError{Param: "damping_ratio", Value: damping, Err: ErrInvalidDamping}
	}
	if !core.IsPositive(dt) {
		return nil, &ParameterError{Param: "dt", Value: dt, Err: ErrInvalidStep}
	}

	omega := 2 * math.Pi * freq
	return &Oscillator{
		Coefficients: computeCoefficients(omega, damping, dt),
		freq:         freq,
		omega:        omega,
		damping:      damping,
		dt:           dt,
	}, nil
}

// Frequency returns the natural frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// Omega returns the natural circular frequency in rad/s.
func (o *Oscillator) Omega() float64 { return o.omega }

// Damping returns the damping ratio.
func (o *Oscillator) Damping() float64 { return o.damping }

// Dt returns the time step.
func (o *Oscillator) Dt() float64 { return o.dt }

// Step advances the state (u, v) over one time step with ground acceleration
// varying linearly from a0 to a1.
func (o *Oscillator) Step(u, v, a0, a1 float64) (float64, float64) {
	return o.A11*u + o.A12*v + o.B11*a0 + o.B12*a1,
		o.A21*u + o.A22*v + o.B21*a0 + o.B22*a1
}

// Peak returns the spectral point for accel using method m. The oscillator
// starts at rest at the first sample.
func (o *Oscillator) Peak(accel []float64, m Method) Point {
	return m.Kernel().Peak(o, accel)
}

// Response writes the relative displacement and velocity history for accel
// into u and v, growing them if needed, and returns them. The oscillator
// starts at rest.
func (o *Oscillator) Response(accel, u, v []float64) ([]float64, []float64) {
	u = core.EnsureLen(u, len(accel))
	v = core.EnsureLen(v, len(accel))
	if len(accel) == 0 {
		return u, v
	}

	u[0], v[0] = 0, 0
	for i := 0; i+1 < len(accel); i++ {
		u[i+1], v[i+1] = o.Step(u[i], v[i], accel[i], accel[i+1])
	}
	return u, v
}

// Damping ratios this close to 1 use the critically damped closed form.
const criticalTolerance = 1e-12

// seriesLimit is the ω·dt below which the load terms are summed as a Taylor
// series instead of the closed form.
const seriesLimit = 1e-2

// seriesTerms reaches full precision for σ·dt up to 0.1, the bound implied by
// seriesLimit and MaxDamping.
const seriesTerms = 16

// computeCoefficients evaluates the exact step matrices for
//
//	ü + 2σ·u̇ + ω²·u = f(t),  σ = ξω,  f linear over [0, dt], f = -a.
//
// With Ac the continuous system matrix and Φ = exp(Ac·dt):
//
//	g0 = Ac⁻¹(Φ - I)·e₂              response to unit constant load
//	g1 = Ac⁻¹(g0 - dt·e₂)            response to unit ramp load τ
//
// so the load on f(0) is g0 - g1/dt and the load on f(dt) is g1/dt.
func computeCoefficients(omega, xi, dt float64) Coefficients {
	sigma := xi * omega
	w2 := omega * omega

	// ec = e^{-σdt}·c, es = e^{-σdt}·s with c, s the damped cosine and
	// normalized sine of each damping regime.
	var ec, es float64
	switch {
	case core.NearlyEqual(xi, 1, criticalTolerance):
		e := math.Exp(-sigma * dt)
		ec = e
		es = e * dt
	case xi < 1:
		wd := omega * math.Sqrt(1-xi*xi)
		e := math.Exp(-sigma * dt)
		ec = e * math.Cos(wd*dt)
		es = e * math.Sin(wd*dt) / wd
	default:
		// Split cosh/sinh into decaying exponentials; cosh alone overflows
		// for stiff, heavily damped oscillators at coarse steps.
		wd := omega * math.Sqrt(xi*xi-1)
		slow := math.Exp((wd - sigma) * dt)
		fast := math.Exp(-(wd + sigma) * dt)
		ec = (slow + fast) / 2
		es = (slow - fast) / (2 * wd)
	}

	a11 := ec + sigma*es
	a12 := es
	a21 := -w2 * es
	a22 := ec - sigma*es

	var g0u, g0v, g1u, g1v float64
	if omega*dt < seriesLimit {
		// Φ - I cancels to rounding noise; integrate the loads directly.
		g0u, g0v = loadSeries(sigma, w2, dt, 0)
		g1u, g1v = loadSeries(sigma, w2, dt, 1)
	} else {
		// Second column of Φ - I.
		p12 := a12
		p22 := a22 - 1

		g0u = (-2*sigma*p12 - p22) / w2
		g0v = p12
		g1u = (-2*sigma*g0u - (g0v - dt)) / w2
		g1v = g0u
	}

	// f = -a flips the load signs.
	return Coefficients{
		A11: a11, A12: a12,
		A21: a21, A22: a22,
		B11: -(g0u - g1u/dt), B12: -g1u / dt,
		B21: -(g0v - g1v/dt), B22: -g1v / dt,
	}
}

// loadSeries returns displacement and velocity at dt, starting from rest,
// under the load t^p (p is 0 or 1). It sums u = Σ d_k with d_k = c_k·dt^k,
// where the Taylor coefficients c_k follow from the equation of motion:
//
//	(k+2)(k+1)·c_{k+2} = [k = p] - 2σ(k+1)·c_{k+1} - ω²·c_k
func loadSeries(sigma, w2, dt float64, p int) (u, v float64) {
	var d [seriesTerms]float64
	s := 2 * sigma * dt
	q := w2 * dt * dt
	for k := 0; k+2 < len(d); k++ {
		var f float64
		if k == p {
			f = math.Pow(dt, float64(k+2))
		}
		d[k+2] = (f - s*float64(k+1)*d[k+1] - q*d[k]) / float64((k+2)*(k+1))
	}
	for k := len(d) - 1; k >= 0; k-- {
		u += d[k]
		v += float64(k) * d[k]
	}
	return u, v / dt
}
