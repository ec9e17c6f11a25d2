// Package rspec computes response spectra: the peak response of a family of
// damped single-degree-of-freedom oscillators, one per frequency of a
// [Grid], excited by a uniformly sampled ground acceleration.
//
// A [Grid] is built once and shared read-only by every [Sweep] of a run, so
// spectra of different records are index-aligned. Sweep spreads the
// frequencies over a bounded worker pool; each worker writes distinct slots
// of the pre-sized output, so the result does not depend on scheduling.
//
// [FourierAmplitude] provides the companion Fourier amplitude spectrum of
// the same record.
package rspec
