package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-rspectra/measure/calculator"
)

// WriteCSV writes res as a header of vector names followed by one row per
// grid index. Values use the shortest representation that round-trips.
func WriteCSV(w io.Writer, res *calculator.Result) error {
	names := res.VectorNames()
	vectors := res.Vectors()

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}

	record := make([]string, len(names))
	for i := range res.Grid.Len() {
		for j, name := range names {
			record[j] = strconv.FormatFloat(vectors[name][i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}
	return nil
}
