// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// renderMemoryMonitor draws the 2x2 heap-monitoring grid over sample
// index: heap used, heap percentage with warning thresholds, block
// count, and the stats panel. The percentage and block-count panels
// are omitted when their columns are absent; the run still renders.
func renderMemoryMonitor(logw io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	heap := t.Floats(benchnorm.ColHeapUsedMB)
	n := len(heap)

	// Panel 1: heap used over time, filled to the baseline.
	p1 := newPlot("NameNode Heap Usage Over Time", "Sample", "Heap Used (MB)")
	hl, _, err := newLine(indexSeries(heap), colorCrimson)
	if err != nil {
		return nil, err
	}
	hl.FillColor = color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0x50}
	hl.Width = vg.Points(1.5)
	p1.Add(hl)

	// Panel 2: heap percentage with the operational thresholds.
	var p2 *plot.Plot
	if pcts := t.Floats(benchnorm.ColHeapPct); pcts != nil {
		p2 = newPlot("NameNode Heap Percentage", "Sample", "Heap Usage (%)")
		pl, _, err := newLine(indexSeries(pcts), colorPurple)
		if err != nil {
			return nil, err
		}
		pl.Width = vg.Points(1.5)
		warn := refLine(0, float64(n-1), 80, colorOrange)
		crit := refLine(0, float64(n-1), 95, colorRed)
		p2.Add(pl, warn, crit)
		p2.Legend.Add("Warning (80%)", warn)
		p2.Legend.Add("Critical (95%)", crit)
		p2.Y.Min, p2.Y.Max = 0, 100
	}

	// Panel 3: block count over time.
	var p3 *plot.Plot
	if counts := t.Floats(benchnorm.ColBlockCount); counts != nil {
		p3 = newPlot("HDFS Block Count Over Time", "Sample", "Block Count")
		cl, _, err := newLine(indexSeries(counts), colorSky)
		if err != nil {
			return nil, err
		}
		cl.Width = vg.Points(1.5)
		p3.Add(cl)
	}

	p4 := textPanel(memoryMonitorSummary(t, m))

	return writeFigure(logw, dir, "memory_monitor_results", opts.pngOnly(), opts.dpi(), 14, 10,
		[][]*plot.Plot{{p1, p2}, {p3, p4}})
}
