// Package motion computes ground-motion intensity measures of a uniformly
// sampled acceleration record: peak ground acceleration, RMS, Arias
// intensity, significant duration, cumulative absolute velocity and the
// Fourier mean period.
//
// Integrals treat the record as piecewise linear between samples, the same
// interpretation the response-spectrum recursion uses.
package motion
