// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hdfs-lab/benchreport/benchtab"
	"github.com/hdfs-lab/benchreport/internal/csvtest"
)

func TestReportCommand(t *testing.T) {
	in := t.TempDir()
	csvtest.WriteDir(t, in, "results.csv",
		"num_dirs,write_throughput_mbps,read_throughput_mbps,block_report_ms,namenode_heap_mb",
		"1,100.0,200.0,50.0,512.0",
		"2,180.0,250.0,60.0,520.0",
		"4,170.0,240.0,90.0,530.0",
	)
	out := t.TempDir()

	rootCmd.SetArgs([]string{"report", in, "-o", out, "--formats", "png"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "storage_dirs_results.png")); err != nil {
		t.Errorf("missing figure: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "storage_dirs_results.pdf")); err == nil {
		t.Error("wrote PDF despite --formats png")
	}
}

func TestReportCommandUnknownSchema(t *testing.T) {
	path := csvtest.Write(t, "results.csv",
		"foo,bar",
		"1,2",
	)
	rootCmd.SetArgs([]string{"report", path})
	err := rootCmd.Execute()
	if !errors.Is(err, benchtab.ErrUnknownSchema) {
		t.Errorf("got %v, want ErrUnknownSchema", err)
	}
}
