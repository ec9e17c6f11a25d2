// Package config loads rspectra run files.
//
// A run file is YAML:
//
//	name: site-a
//	damping_ratio: 0.05
//	start_frequency: 0.1
//	end_frequency: 50
//	num_frequencies: 200
//	regularize_dt: 0.005
//	spacing: log        # log | linear
//	method: pseudo      # pseudo | absolute
//	workers: 0          # 0 = GOMAXPROCS
//	histories:
//	  - name: ns
//	    file: records/ns.csv
//	    time_column: time
//	    value_column: accel
//	    scale: 9.81
//
// Omitted spectrum parameters take the calculator defaults; regularize_dt
// is required. History files are CSV with a header row and are resolved
// relative to the run file.
package config
