// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
	"github.com/hdfs-lab/benchreport/benchplot"
	"github.com/hdfs-lab/benchreport/benchtab"
)

var (
	flagOut      string
	flagBaseline int64
	flagFormats  []string
	flagDPI      int
)

var reportCmd = &cobra.Command{
	Use:   "report <results.csv | run-dir>",
	Short: "Render figures and a summary from one result table",
	Long: `Report reads a single CSV result table, detects the experiment type
from its columns, and writes the figures and text summary for that
type. The argument may be the CSV file itself or a run directory
containing results.csv or all_results.csv.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagOut, "output", "o", "",
		"output directory (default: alongside the input)")
	reportCmd.Flags().Int64Var(&flagBaseline, "baseline-nodes", 0,
		"node count speedups are measured against (overrides config)")
	reportCmd.Flags().StringSliceVar(&flagFormats, "formats", nil,
		"figure formats, any of png,pdf (overrides config)")
	reportCmd.Flags().IntVar(&flagDPI, "dpi", 0,
		"raster figure DPI (overrides config)")
	rootCmd.AddCommand(reportCmd)
}

// resolveInput maps the command argument to a concrete CSV path. A
// directory argument resolves to its results.csv, falling back to
// all_results.csv.
func resolveInput(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return "", fmt.Errorf("input not found: %s", arg)
	}
	if !info.IsDir() {
		return arg, nil
	}
	for _, name := range []string{"results.csv", "all_results.csv"} {
		p := filepath.Join(arg, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("input not found: no results.csv or all_results.csv in %s", arg)
}

func runReport(cmd *cobra.Command, args []string) error {
	path, err := resolveInput(args[0])
	if err != nil {
		return err
	}

	tab, err := benchtab.ReadCSV(path)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d rows from %s\n", tab.Len(), path)

	kind := benchtab.Detect(tab.Cols)
	if kind == benchtab.Unknown {
		return fmt.Errorf("%w (columns: %s)", benchtab.ErrUnknownSchema, strings.Join(tab.Cols, ", "))
	}
	fmt.Printf("Detected experiment type: %s\n", kind)

	norm, err := benchnorm.Normalize(tab, kind)
	if err != nil {
		return err
	}

	baseline := cfg.BaselineNodes
	if flagBaseline != 0 {
		baseline = flagBaseline
	}
	metrics := benchmetric.Derive(norm, benchmetric.Options{
		BaselineNodes: baseline,
		BudgetsGiB:    cfg.HeapBudgetsGiB,
	})

	outDir := flagOut
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	formats := flagFormats
	if len(formats) == 0 {
		formats = cfg.Formats
	}
	dpi := flagDPI
	if dpi == 0 {
		dpi = cfg.DPI
	}

	arts, err := benchplot.Render(os.Stdout, norm, metrics, outDir, benchplot.Options{
		Formats: formats,
		DPI:     dpi,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d artifacts to %s\n", len(arts), outDir)
	return nil
}
