// Copyright Security Ronin, 2026. All rights reserved.

// Package types holds data types shared between the CLI and the internal
// packages.
package types

// ColumnScore records how many sampled rows of one column classified as
// grid-reference candidates.
type ColumnScore struct {
	Index  int    `json:"index" yaml:"index"`
	Header string `json:"header" yaml:"header"`
	Score  int    `json:"score" yaml:"score"`
}

// DetectionReport summarizes column scoring over the sampled row prefix.
type DetectionReport struct {
	// Input is the path of the inspected file.
	Input string `json:"input" yaml:"input"`

	// Sampled is the number of rows actually scored.
	Sampled int `json:"sampled_rows" yaml:"sampled_rows"`

	// Column is the detected column index, or -1 when no column scored.
	Column int `json:"detected_column" yaml:"detected_column"`

	// Columns lists the score of every column in header order.
	Columns []ColumnScore `json:"columns" yaml:"columns"`
}
