// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport turns raw storage-benchmark result tables into figures
// and plain-text summaries.
//
// Usage:
//
//	benchreport report <results.csv | run-dir> [flags]
//	benchreport analyze <results-root>
//
// The report command reads one CSV table, detects which experiment
// produced it from its column set, normalizes and filters the rows,
// derives summary metrics, and writes the figures and summary file
// next to the input (or under -o). The analyze command aggregates
// per-run runtime files across repeated experiment runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdfs-lab/benchreport/internal/config"
)

var (
	cfgFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "benchreport",
	Short:         "Render reports from HDFS storage-scaling benchmark results",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.benchreport.yaml)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchreport: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchreport: warning: %v\n", err)
		return
	}
	cfg = c
}
