// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// renderStorageDirs draws the 2x2 storage-directory scaling grid:
// throughput, block-report latency, NameNode heap, and the summary
// panel.
func renderStorageDirs(logw io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	dirs := t.Floats(benchnorm.ColNumDirs)
	write := t.Floats(benchnorm.ColWriteTput)
	read := t.Floats(benchnorm.ColReadTput)
	report := t.Floats(benchnorm.ColBlockReportMS)
	heap := t.Floats(benchnorm.ColNamenodeHeapMB)

	// Panel 1: throughput vs storage dirs.
	p1 := newPlot("I/O Throughput vs Virtual Storage Units",
		"Number of Storage Directories", "Throughput (MB/s)")
	writeXY, err := series(benchnorm.ColNumDirs, dirs, write)
	if err != nil {
		return nil, err
	}
	readXY, err := series(benchnorm.ColNumDirs, dirs, read)
	if err != nil {
		return nil, err
	}
	wl, ws, err := newLine(writeXY, colorBlue)
	if err != nil {
		return nil, err
	}
	rl, rs, err := newLine(readXY, colorRed)
	if err != nil {
		return nil, err
	}
	p1.Add(wl, ws, rl, rs)
	p1.Legend.Add("Write", wl)
	p1.Legend.Add("Read", rl)
	p1.Legend.Top = true
	if positive(dirs) {
		p1.X.Scale = plot.LogScale{}
		p1.X.Tick.Marker = pow2Ticks{}
	}

	// Panel 2: block report latency bars, one per configuration.
	p2 := newPlot("Block Report Latency vs Virtual Storage Units",
		"Number of Storage Directories", "Block Report Time (ms)")
	bars, err := plotter.NewBarChart(plotter.Values(report), barWidth(len(report)))
	if err != nil {
		return nil, err
	}
	bars.Color = colorTeal
	bars.LineStyle.Width = 0
	p2.Add(bars)
	labels := make([]string, len(dirs))
	for i, d := range t.Ints(benchnorm.ColNumDirs) {
		labels[i] = strconv.FormatInt(d, 10)
	}
	p2.NominalX(labels...)

	// Panel 3: NameNode heap vs storage dirs.
	p3 := newPlot("NameNode Memory vs Virtual Storage Units",
		"Number of Storage Directories", "NameNode Heap (MB)")
	heapXY, err := series(benchnorm.ColNumDirs, dirs, heap)
	if err != nil {
		return nil, err
	}
	hl, hs, err := newLine(heapXY, colorPurple)
	if err != nil {
		return nil, err
	}
	p3.Add(hl, hs)
	if positive(dirs) {
		p3.X.Scale = plot.LogScale{}
		p3.X.Tick.Marker = pow2Ticks{}
	}

	p4 := textPanel(storageDirsSummary(t, m))

	return writeFigure(logw, dir, "storage_dirs_results", opts.formats(), opts.dpi(), 14, 10,
		[][]*plot.Plot{{p1, p2}, {p3, p4}})
}
