// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdfs-lab/benchreport/benchmetric"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <results-root>",
	Short: "Summarize runtimes across repeated experiment runs",
	Long: `Analyze scans every run directory under the results root for a
runtime_seconds.txt file and reports the run count, mean runtime, and
standard deviation. Runs missing the file are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyze(w io.Writer, root string) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("input not found: %s", root)
	}
	runs, err := filepath.Glob(filepath.Join(root, "*"))
	if err != nil {
		return err
	}
	sort.Strings(runs)

	var times []float64
	for _, run := range runs {
		data, err := os.ReadFile(filepath.Join(run, "runtime_seconds.txt"))
		if err != nil {
			fmt.Fprintf(w, "Warning: runtime_seconds.txt not found in %s\n", run)
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
		if err != nil {
			fmt.Fprintf(w, "Warning: bad runtime_seconds.txt in %s: %v\n", run, err)
			continue
		}
		times = append(times, v)
	}

	s := benchmetric.Summarize(times)
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "WordCount Experiment Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total runs: %d\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(w, "Mean runtime: %.2f sec\n", s.Mean)
		if s.Count > 1 {
			fmt.Fprintf(w, "Std deviation: %.2f sec\n", s.StdDev)
		}
	}
	fmt.Fprintln(w, rule)
	return nil
}
