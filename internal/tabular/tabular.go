// Copyright Security Ronin, 2026. All rights reserved.

// Package tabular loads and writes tabular datasets. The input format is
// chosen by file extension: CSV is the default, with XLSX workbooks and
// parquet files loading into the same in-memory Dataset shape.
package tabular

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is a fully loaded tabular file. Column detection needs
// look-ahead over the data, so inputs are buffered in full before the
// first output row is written.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Load reads the tabular file at path into memory.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".parquet":
		return loadParquet(path)
	default:
		return loadCSV(path)
	}
}

// Writer emits rows of a tabular file. Write may buffer; Flush commits
// everything and reports any deferred write error.
type Writer interface {
	Write(record []string) error
	Flush() error
}

// Create opens a Writer for path. An empty path writes CSV to stdout, a
// .xlsx path writes a workbook, and anything else writes a CSV file. The
// returned Closer releases the underlying file once writing is done.
func Create(path string) (Writer, io.Closer, error) {
	if path == "" {
		return newCSVWriter(os.Stdout), nopCloser{}, nil
	}
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		// Workbooks only hit the filesystem on Flush; probe the path now so
		// an uncreatable output fails before the run, like the CSV path.
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
		}
		f.Close()
		return newXLSXWriter(path), nopCloser{}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return newCSVWriter(f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
