// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
	"github.com/hdfs-lab/benchreport/benchtab"
)

// Options configures rendering. The zero value renders PNG and PDF
// (where a layout defines a PDF) at 150 DPI.
type Options struct {
	// Formats selects figure formats, a subset of "png", "pdf".
	// Layouts that historically emit only PNG ignore "pdf".
	Formats []string

	// DPI for raster output.
	DPI int

	// RunName is the suffix of the block-size figure name. When
	// empty it is taken from the output directory's base name if
	// that looks like a run directory ("run_*"), else "blocksize".
	RunName string
}

func (o Options) formats() []string {
	if len(o.Formats) == 0 {
		return []string{"png", "pdf"}
	}
	return o.Formats
}

func (o Options) pngOnly() []string {
	for _, f := range o.formats() {
		if f == "png" {
			return []string{"png"}
		}
	}
	return nil
}

func (o Options) dpi() int {
	if o.DPI == 0 {
		return 150
	}
	return o.DPI
}

func (o Options) runName(dir string) string {
	if o.RunName != "" {
		return o.RunName
	}
	if base := filepath.Base(dir); strings.HasPrefix(base, "run_") {
		return base
	}
	return "blocksize"
}

// Render writes the report for one normalized table: the console
// summary to w, then the fixed per-kind figure files beneath dir
// (created if needed). The returned artifacts list the summary and
// every file written.
//
// Panels whose optional inputs are unavailable are rendered in
// degraded form or omitted; only I/O failures and violated series
// invariants (DuplicateKeyError) abort the render.
func Render(w io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	var lines []string
	switch t.Kind {
	case benchtab.StorageDirScaling:
		lines = storageDirsSummary(t, m)
	case benchtab.BlockCountScaling:
		lines = blockScalingSummary(t, m)
	case benchtab.MemoryOverTime:
		lines = memoryMonitorSummary(t, m)
	case benchtab.BlockSizeBenchmark:
		lines = blockSizeSummary(t, m)
	case benchtab.MultiNodeBenchmark:
		lines = multiNodeSummary(t, m)
	default:
		return nil, fmt.Errorf("cannot render %s table", t.Kind)
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return nil, err
	}
	arts := []Artifact{{Kind: KindSummary}}

	var figs []Artifact
	var err error
	switch t.Kind {
	case benchtab.StorageDirScaling:
		figs, err = renderStorageDirs(w, t, m, dir, opts)
	case benchtab.BlockCountScaling:
		figs, err = renderBlockScaling(w, t, m, dir, opts)
	case benchtab.MemoryOverTime:
		figs, err = renderMemoryMonitor(w, t, m, dir, opts)
	case benchtab.BlockSizeBenchmark:
		figs, err = renderBlockSize(w, t, m, dir, opts)
	case benchtab.MultiNodeBenchmark:
		figs, err = renderMultiNode(w, t, m, dir, opts)
	}
	if err != nil {
		return nil, err
	}
	return append(arts, figs...), nil
}
