// Package resample brings time histories onto a fixed time step.
//
// A [History] is an ordered list of (time, value) samples, as recorded by an
// instrument or written by a simulation with adaptive stepping. [Regularize]
// resamples it onto a uniform grid starting at the first sample time:
//
//	n = floor((t_last - t_first) / dt) + 1
//
// Each output sample is linearly interpolated between the two bracketing
// input samples (exact where the query time coincides with an input time).
// Queries past the last input time are clamped to the last value; nothing is
// extrapolated.
//
// Malformed histories are reported as [*DataError]; an invalid step is
// reported as [ErrInvalidStep].
package resample
