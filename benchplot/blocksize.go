// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// renderBlockSize draws the single runtime-vs-block-size chart. The
// split count rides on the same panel, linearly rescaled into the
// runtime range since the chart has one Y axis; the legend marks it
// as a secondary scale.
func renderBlockSize(logw io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	labels := t.Strings(benchnorm.ColBlockSizeHuman)
	runtimes := t.Floats(benchnorm.ColRuntimeSec)
	if err := uniqueLabels(benchnorm.ColBlockSizeHuman, labels); err != nil {
		return nil, err
	}

	p := newPlot("WordCount Runtime vs HDFS Block Size (lower is better)",
		"Block Size", "Runtime (seconds)")
	rl, rs, err := newLine(indexSeries(runtimes), colorBlue)
	if err != nil {
		return nil, err
	}
	p.Add(rl, rs)
	p.Legend.Add("Runtime", rl)

	minR, maxR := minMax(runtimes)
	if splits := t.Floats(benchnorm.ColNumSplits); splits != nil && maxR > minR {
		minS, maxS := minMax(splits)
		scaled := make([]float64, len(splits))
		for i, s := range splits {
			if maxS > minS {
				scaled[i] = minR + (s-minS)*(maxR-minR)/(maxS-minS)
			} else {
				scaled[i] = (minR + maxR) / 2
			}
		}
		sl, ss, err := newLine(indexSeries(scaled), colorRed)
		if err != nil {
			return nil, err
		}
		dashed(sl)
		ss.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sl, ss)
		p.Legend.Add("Blocks/Splits (rescaled)", sl)
	}

	if m.Optimal != nil {
		i := m.Optimal.Index
		marker, err := plotter.NewLine(plotter.XYs{
			{X: float64(i), Y: minR},
			{X: float64(i), Y: maxR},
		})
		if err != nil {
			return nil, err
		}
		marker.Color = colorGreen
		marker.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}
		p.Add(marker)
		p.Legend.Add(fmt.Sprintf("Optimal: %s (%.1fs)", labels[i], runtimes[i]), marker)
	}
	p.Legend.Top = true
	p.NominalX(labels...)

	base := "wordcount-blocksize-" + opts.runName(dir)
	return writeFigure(logw, dir, base, opts.formats(), opts.dpi(), 12, 7,
		[][]*plot.Plot{{p}})
}
