// Package interp provides interpolation primitives for sampled signals.
//
// Available tools:
//
//   - [Linear2]: 2-point linear interpolation at a fractional position
//   - [Table]:   piecewise-linear lookup over a strictly increasing abscissa,
//     clamped at both ends (no extrapolation)
//
// [Table.Sample] evaluates a uniformly stepped query grid in a single forward
// pass, which is how irregular records are brought onto a fixed time step.
package interp
