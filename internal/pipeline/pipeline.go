// Copyright Security Ronin, 2026. All rights reserved.

// Package pipeline converts the detected coordinate column of a loaded
// dataset and streams the augmented rows to a tabular writer.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/securityronin/mgrs2latlon/internal/detect"
	"github.com/securityronin/mgrs2latlon/internal/tabular"
)

// Names of the two columns appended to every output header set.
const (
	LatitudeHeader  = "Latitude"
	LongitudeHeader = "Longitude"
)

// Converter turns a normalized grid reference into decimal degrees. The
// real implementation lives in internal/mgrs; tests substitute a fake so
// detection and streaming are exercised independently of the grid math.
type Converter interface {
	ToLatLon(ref string) (lat, lon float64, err error)
}

// Result summarizes a completed run for the user-facing status line.
type Result struct {
	Records int
	Column  int
}

// Detect picks the coordinate column for ds. Callers run it before
// creating any output resource: a dataset with no plausible column aborts
// the run, and a failed run must leave no output file behind.
func Detect(ds *tabular.Dataset) (int, error) {
	column, ok := detect.Column(ds.Rows)
	if !ok {
		return 0, fmt.Errorf("no MGRS-like column detected")
	}
	return column, nil
}

// Write emits the augmented header line followed by every row of ds in
// order, each with Latitude and Longitude appended. Rows whose designated
// value is blank, implausible, or rejected by conv get two empty fields;
// those failures are row-local and silent.
func Write(ds *tabular.Dataset, column int, conv Converter, w tabular.Writer) (Result, error) {
	headers := append(append(make([]string, 0, len(ds.Headers)+2), ds.Headers...),
		LatitudeHeader, LongitudeHeader)
	if err := w.Write(headers); err != nil {
		return Result{}, fmt.Errorf("writing header: %w", err)
	}

	for _, row := range ds.Rows {
		lat, lon := convertField(row, column, conv)
		record := append(append(make([]string, 0, len(row)+2), row...), lat, lon)
		if err := w.Write(record); err != nil {
			return Result{}, fmt.Errorf("writing record: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return Result{}, err
	}
	return Result{Records: len(ds.Rows), Column: column}, nil
}

// convertField resolves one row's coordinate value to rendered degrees,
// or to two empty strings when nothing convertible is there. A column
// index beyond the row's width reads as empty.
func convertField(row []string, column int, conv Converter) (lat, lon string) {
	var value string
	if column < len(row) {
		value = strings.TrimSpace(row[column])
	}
	if value == "" || !detect.LooksLikeCoordinate(value) {
		return "", ""
	}

	latDeg, lonDeg, err := conv.ToLatLon(normalize(value))
	if err != nil {
		return "", ""
	}
	return formatDegrees(latDeg), formatDegrees(lonDeg)
}

// normalize strips all internal whitespace so space-grouped references
// parse as a single token.
func normalize(value string) string {
	return strings.Join(strings.Fields(value), "")
}

// formatDegrees renders the shortest decimal string that round-trips the
// float64, never in scientific notation.
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
