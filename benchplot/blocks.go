// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// renderBlockScaling draws the 2x2 block-count scaling grid: heap
// growth with trend, per-block memory cost, operation latency, and
// the projection panel.
func renderBlockScaling(logw io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	blocks := t.Floats(benchnorm.ColActualBlocks)
	heap := t.Floats(benchnorm.ColHeapMB)

	// Panel 1: heap vs block count, with the fitted trend when
	// available.
	p1 := newPlot("NameNode Memory vs Block Count", "Block Count", "NameNode Heap (MB)")
	heapXY, err := series(benchnorm.ColActualBlocks, blocks, heap)
	if err != nil {
		return nil, err
	}
	hl, hs, err := newLine(heapXY, colorCrimson)
	if err != nil {
		return nil, err
	}
	p1.Add(hl, hs)
	if m.Trend != nil {
		lo, hi := minMax(blocks)
		tl, err := plotter.NewLine(plotter.XYs{
			{X: lo, Y: m.Trend.At(lo)},
			{X: hi, Y: m.Trend.At(hi)},
		})
		if err != nil {
			return nil, err
		}
		tl.Color = colorGray
		dashed(tl)
		p1.Add(tl)
		p1.Legend.Add(fmt.Sprintf("Trend: %.4f MB/block", m.Trend.Slope), tl)
		p1.Legend.Top = true
	}
	if positive(blocks) {
		p1.X.Scale = plot.LogScale{}
		p1.X.Tick.Marker = plot.LogTicks{}
	}

	// Panel 2: estimated bytes per block, against the standard
	// 150-byte sizing estimate. Degrades to an empty panel when
	// the heap-delta column is absent.
	p2 := newPlot("Memory Cost per Block", "Measurement Point", "Bytes per Block (estimate)")
	if m.PerUnit != nil {
		bytesPer := make(plotter.Values, len(m.PerUnit.Values))
		for i, v := range m.PerUnit.Values {
			bytesPer[i] = v * 1024 * 1024
		}
		bars, err := plotter.NewBarChart(bytesPer, barWidth(len(bytesPer)))
		if err != nil {
			return nil, err
		}
		bars.Color = colorSky
		bars.LineStyle.Width = 0
		p2.Add(bars)
		ref := refLine(-0.5, float64(len(bytesPer))-0.5, benchmetric.DefaultBytesPerBlock, colorRed)
		p2.Add(ref)
		p2.Legend.Add(fmt.Sprintf("Typical: %d bytes/block", benchmetric.DefaultBytesPerBlock), ref)
		p2.Legend.Top = true
	}

	// Panel 3: operation latency vs block count. Either latency
	// column may be missing; plot what is there.
	p3 := newPlot("Operation Latency vs Block Count", "Block Count", "Latency (ms)")
	addLatency := func(col, name string, c color.Color) error {
		vals := t.Floats(col)
		if vals == nil {
			return nil
		}
		xy, err := series(benchnorm.ColActualBlocks, blocks, vals)
		if err != nil {
			return err
		}
		l, s, err := newLine(xy, c)
		if err != nil {
			return err
		}
		p3.Add(l, s)
		p3.Legend.Add(name, l)
		return nil
	}
	if err := addLatency(benchnorm.ColLsLatencyMS, "ls -R", colorGreen); err != nil {
		return nil, err
	}
	if err := addLatency(benchnorm.ColFsckLatencyMS, "fsck", colorOrange); err != nil {
		return nil, err
	}
	p3.Legend.Top = true
	if positive(blocks) {
		p3.X.Scale = plot.LogScale{}
		p3.X.Tick.Marker = plot.LogTicks{}
	}

	p4 := textPanel(blockScalingSummary(t, m))

	return writeFigure(logw, dir, "block_scaling_results", opts.formats(), opts.dpi(), 14, 10,
		[][]*plot.Plot{{p1, p2}, {p3, p4}})
}
