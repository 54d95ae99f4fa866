// Copyright Security Ronin, 2026. All rights reserved.

package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a workbook. The first row is the
// header; short data rows are padded to the header width since excelize
// drops trailing empty cells.
func loadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q from %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading header from %s: sheet %q is empty", path, sheet)
	}

	headers := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		data = append(data, row)
	}
	return &Dataset{Headers: headers, Rows: data}, nil
}

// xlsxWriter accumulates rows into an in-memory workbook and saves it on
// Flush. Workbooks cannot be streamed to disk row by row, so the save is
// deferred until the run is known to have produced every row.
type xlsxWriter struct {
	path  string
	file  *excelize.File
	sheet string
	row   int
}

func newXLSXWriter(path string) *xlsxWriter {
	f := excelize.NewFile()
	return &xlsxWriter{path: path, file: f, sheet: f.GetSheetName(0)}
}

func (x *xlsxWriter) Write(record []string) error {
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(record))
	for i, v := range record {
		cells[i] = v
	}
	return x.file.SetSheetRow(x.sheet, cell, &cells)
}

func (x *xlsxWriter) Flush() error {
	if err := x.file.SaveAs(x.path); err != nil {
		return fmt.Errorf("creating output file %s: %w", x.path, err)
	}
	return x.file.Close()
}
