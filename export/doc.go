// Package export writes calculator results to files.
//
// WriteCSV emits the run's output vectors as columns, one row per grid
// index. WriteParquet emits one row per history and grid index, the long
// layout analytics tools expect.
package export
