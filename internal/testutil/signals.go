package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*freqHz*i*dt) for i = 0..length-1.
func DeterministicSine(freqHz, dt, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz * dt
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// SinePulse generates a whole number of sine cycles at freqHz sampled at dt,
// followed by zeros up to total samples.
func SinePulse(freqHz, dt, amplitude float64, cycles, total int) []float64 {
	out := make([]float64, total)
	n := int(math.Round(float64(cycles) / (freqHz * dt)))
	step := 2 * math.Pi * freqHz * dt
	for i := 0; i <= n && i < total; i++ {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	if n < total {
		// sin(2*pi*k) is not exactly zero in floating point.
		out[n] = 0
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// IrregularTimes returns length strictly increasing times starting at 0 with
// increments uniformly drawn from [0.5, 1.5)*meanDt.
func IrregularTimes(seed int64, meanDt float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < length; i++ {
		out[i] = out[i-1] + meanDt*(0.5+rng.Float64())
	}
	return out
}

// UniformTimes returns i*dt for i = 0..length-1.
func UniformTimes(dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
