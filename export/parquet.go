package export

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-rspectra/measure/calculator"
	"github.com/parquet-go/parquet-go"
)

// Row is one spectral ordinate of one history.
type Row struct {
	RunID     string  `parquet:"run_id,dict"`
	History   string  `parquet:"history,dict"`
	Index     int32   `parquet:"index"`
	Frequency float64 `parquet:"frequency"`
	Period    float64 `parquet:"period"`
	Sd        float64 `parquet:"sd"`
	Sv        float64 `parquet:"sv"`
	Sa        float64 `parquet:"sa"`
}

// Rows flattens res into history-major rows.
func Rows(res *calculator.Result) []Row {
	g := res.Grid
	rows := make([]Row, 0, len(res.Names)*g.Len())
	for _, name := range res.Names {
		sp := res.Spectra[name]
		for i := range g.Len() {
			rows = append(rows, Row{
				RunID:     res.RunID,
				History:   name,
				Index:     int32(i),
				Frequency: g.Frequency[i],
				Period:    g.Period[i],
				Sd:        sp.Sd[i],
				Sv:        sp.Sv[i],
				Sa:        sp.Sa[i],
			})
		}
	}
	return rows
}

// WriteParquet writes Rows(res) as a snappy-compressed Parquet file.
func WriteParquet(w io.Writer, res *calculator.Result) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(Rows(res)); err != nil {
		_ = pw.Close()
		return fmt.Errorf("export: parquet write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export: parquet close: %w", err)
	}
	return nil
}
