// Copyright Security Ronin, 2026. All rights reserved.

package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// loadParquet reads every row of a parquet file as a map and renders the
// values to strings in schema column order.
func loadParquet(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("opening parquet file %s: %w", path, err)
	}

	fields := pf.Schema().Fields()
	headers := make([]string, len(fields))
	for i, field := range fields {
		headers[i] = field.Name()
	}

	r := parquet.NewReader(pf)
	defer r.Close()

	var rows [][]string
	for {
		row := make(map[string]interface{})
		err := r.Read(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading parquet record from %s: %w", path, err)
		}
		rec := make([]string, len(headers))
		for i, name := range headers {
			rec[i] = formatValue(row[name])
		}
		rows = append(rows, rec)
	}
	return &Dataset{Headers: headers, Rows: rows}, nil
}

// formatValue renders a parquet scalar as field text.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
