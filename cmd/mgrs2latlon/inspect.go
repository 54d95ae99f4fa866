// Copyright Security Ronin, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/securityronin/mgrs2latlon/internal/detect"
	"github.com/securityronin/mgrs2latlon/internal/tabular"
	"github.com/securityronin/mgrs2latlon/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Show per-column MGRS detection scores",
	Long: `Inspect scores every column over the same sampled row prefix the
converter uses and reports which column would be picked. Useful when
detection lands on the wrong column, or on nothing at all.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return runInspect(args[0], format)
	},
}

func init() {
	inspectCmd.Flags().String("format", "table", "report format: table or yaml")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(input, format string) error {
	ds, err := tabular.Load(input)
	if err != nil {
		return err
	}

	report := buildReport(input, ds)

	switch format {
	case "table":
		renderTable(report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		os.Stdout.Write(data)
	default:
		return fmt.Errorf("unsupported format %q (want table or yaml)", format)
	}
	return nil
}

func buildReport(input string, ds *tabular.Dataset) types.DetectionReport {
	sampled := len(ds.Rows)
	if sampled > detect.SampleSize {
		sampled = detect.SampleSize
	}

	report := types.DetectionReport{Input: input, Sampled: sampled, Column: -1}
	if column, ok := detect.Column(ds.Rows); ok {
		report.Column = column
	}
	for i, score := range detect.Scores(ds.Rows) {
		header := ""
		if i < len(ds.Headers) {
			header = ds.Headers[i]
		}
		report.Columns = append(report.Columns, types.ColumnScore{
			Index:  i,
			Header: header,
			Score:  score,
		})
	}
	return report
}

func renderTable(report types.DetectionReport) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Column", "Score", "Detected"})
	for _, col := range report.Columns {
		marker := ""
		if col.Index == report.Column {
			marker = "*"
		}
		table.Append([]string{strconv.Itoa(col.Index), col.Header, strconv.Itoa(col.Score), marker})
	}
	table.Render()

	if report.Column < 0 {
		fmt.Fprintln(os.Stderr, "No MGRS-like column detected.")
	}
}
