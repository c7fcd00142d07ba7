package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is the tabular payload handed to the renderers. Rows are positional
// and must match the header count.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderCSV encodes the table as CSV bytes. The title is not emitted; CSV
// consumers import the file straight into spreadsheets.
func RenderCSV(t Table) ([]byte, error) {
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return nil, fmt.Errorf("csv row has %d cells, want %d", len(row), len(t.Headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
