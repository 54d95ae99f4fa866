// Copyright Security Ronin, 2026. All rights reserved.

package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// loadCSV reads a comma-separated file with standard quoting. The first
// record is the header; every data record must carry the same field count,
// anything else aborts the load.
func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header from %s: %w", path, err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records from %s: %w", path, err)
	}
	return &Dataset{Headers: headers, Rows: rows}, nil
}

type csvWriter struct {
	w *csv.Writer
}

func newCSVWriter(w io.Writer) *csvWriter {
	return &csvWriter{w: csv.NewWriter(w)}
}

func (c *csvWriter) Write(record []string) error {
	return c.w.Write(record)
}

func (c *csvWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
