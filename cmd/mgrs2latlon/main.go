// Copyright Security Ronin, 2026. All rights reserved.

// Package main is the entry point for the mgrs2latlon CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/securityronin/mgrs2latlon/internal/mgrs"
	"github.com/securityronin/mgrs2latlon/internal/pipeline"
	"github.com/securityronin/mgrs2latlon/internal/tabular"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the conversion itself: one positional input path, an
// optional output path, nothing else to configure.
var rootCmd = &cobra.Command{
	Use:   "mgrs2latlon <input>",
	Short: "Convert MGRS coordinates to latitude/longitude in tabular files",
	Long: `mgrs2latlon reads a tabular file (CSV, XLSX, or parquet), finds the
column holding MGRS grid references without being told which one, and writes
every row back out with Latitude and Longitude columns appended.

Rows whose value cannot be converted get blank coordinate fields. The run
only aborts when the file cannot be read or no column looks like MGRS at all.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return run(args[0], output)
	},
}

func init() {
	rootCmd.Flags().StringP("output", "o", "", "output file path (defaults to stdout)")
}

// run drives the whole conversion: load, detect, then stream. Detection
// runs before the output is created so a failed run leaves no file behind.
func run(input, output string) error {
	ds, err := tabular.Load(input)
	if err != nil {
		return err
	}

	column, err := pipeline.Detect(ds)
	if err != nil {
		return fmt.Errorf("%w in %s", err, input)
	}

	w, closer, err := tabular.Create(output)
	if err != nil {
		return err
	}

	result, err := pipeline.Write(ds, column, mgrs.Converter{}, w)
	if err != nil {
		closer.Close()
		return err
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", output, err)
	}

	fmt.Fprintf(os.Stderr, "Processed %d records. MGRS column detected at index %d.\n",
		result.Records, result.Column)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
