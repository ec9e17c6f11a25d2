// Package calculator runs response-spectrum analyses over named
// acceleration histories.
//
// A run regularizes every history to a common step, sweeps it over one
// shared frequency grid and collects index-aligned output vectors:
//
//	frequency, period, <name>_sd, <name>_sv, <name>_sa
//
// [Calculate] is the one-shot entry point. [Calculator] exposes the
// Setup, Reset and Run lifecycle for drivers that declare their outputs
// before any data is available.
//
// Invalid parameters are reported together as [*ConfigError] values before
// any numerical work; a malformed history aborts the run with a
// [*resample.DataError]. A failed run produces no partial output.
package calculator
