// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// renderMultiNode draws the multi-node report family: the combined
// line chart, one bar chart per node count, the runtime heatmap, and
// the speedup chart (skipped with a notice when the baseline group
// is missing).
func renderMultiNode(logw io.Writer, t *benchnorm.Table, m *benchmetric.Metrics, dir string, opts Options) ([]Artifact, error) {
	groups := m.Groups
	if groups == nil {
		groups = benchmetric.NodeGroups(t)
	}
	for _, g := range groups {
		var labels []string
		for _, pt := range g.Points {
			labels = append(labels, pt.Label)
		}
		if err := uniqueLabels(benchnorm.ColBlockSizeHuman, labels); err != nil {
			return nil, err
		}
	}

	var arts []Artifact
	add := func(got []Artifact, err error) error {
		if err != nil {
			return err
		}
		arts = append(arts, got...)
		return nil
	}

	if err := add(renderCombined(logw, groups, dir, opts)); err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := add(renderNodeBars(logw, g, dir, opts)); err != nil {
			return nil, err
		}
	}
	if err := add(renderHeatmap(logw, groups, dir, opts)); err != nil {
		return nil, err
	}
	if m.Speedup == nil {
		fmt.Fprintf(logw, "No baseline group, skipping speedup chart\n")
	} else if err := add(renderSpeedup(logw, m.Speedup, groups, dir, opts)); err != nil {
		return nil, err
	}
	return arts, nil
}

// axisLabels returns the block-size labels of the first group, which
// fix the x axis for every multi-node chart.
func axisLabels(groups []benchmetric.NodeGroup) []string {
	if len(groups) == 0 {
		return nil
	}
	labels := make([]string, len(groups[0].Points))
	for i, p := range groups[0].Points {
		labels[i] = p.Label
	}
	return labels
}

func renderCombined(logw io.Writer, groups []benchmetric.NodeGroup, dir string, opts Options) ([]Artifact, error) {
	p := newPlot("WordCount Performance: Block Size vs Runtime", "Block Size", "Runtime (seconds)")
	for i, g := range groups {
		var runtimes []float64
		for _, pt := range g.Points {
			runtimes = append(runtimes, pt.Runtime)
		}
		l, s, err := plotter.NewLinePoints(indexSeries(runtimes))
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(2)
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(l, s)
		p.Legend.Add(fmt.Sprintf("%d nodes", g.Nodes), l, s)
	}
	p.Legend.Top = true
	p.NominalX(axisLabels(groups)...)

	return writeFigure(logw, dir, "combined_results", opts.pngOnly(), opts.dpi(), 12, 8,
		[][]*plot.Plot{{p}})
}

func renderNodeBars(logw io.Writer, g benchmetric.NodeGroup, dir string, opts Options) ([]Artifact, error) {
	p := newPlot(fmt.Sprintf("WordCount Performance with %d Nodes", g.Nodes),
		"Block Size", "Runtime (seconds)")

	values := make(plotter.Values, len(g.Points))
	labels := make([]string, len(g.Points))
	max := 0.0
	for i, pt := range g.Points {
		values[i] = pt.Runtime
		labels[i] = pt.Label
		if pt.Runtime > max {
			max = pt.Runtime
		}
	}
	bars, err := plotter.NewBarChart(values, barWidth(len(values)))
	if err != nil {
		return nil, err
	}
	bars.Color = colorSteel
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	// Value labels above each bar.
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v + max*0.02}
		texts[i] = fmt.Sprintf("%.1fs", v)
	}
	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = draw.XCenter
		valueLabels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(valueLabels)

	base := fmt.Sprintf("results_%dnodes", g.Nodes)
	return writeFigure(logw, dir, base, opts.pngOnly(), opts.dpi(), 10, 6,
		[][]*plot.Plot{{p}})
}

// runtimeGrid adapts node groups to the heatmap's grid interface:
// columns are block sizes, rows are node counts.
type runtimeGrid struct {
	labels []string
	groups []benchmetric.NodeGroup
}

func (g runtimeGrid) Dims() (c, r int) { return len(g.labels), len(g.groups) }
func (g runtimeGrid) X(c int) float64  { return float64(c) }
func (g runtimeGrid) Y(r int) float64  { return float64(r) }

func (g runtimeGrid) Z(c, r int) float64 {
	if c < len(g.groups[r].Points) {
		return g.groups[r].Points[c].Runtime
	}
	return math.NaN()
}

func renderHeatmap(logw io.Writer, groups []benchmetric.NodeGroup, dir string, opts Options) ([]Artifact, error) {
	labels := axisLabels(groups)
	grid := runtimeGrid{labels: labels, groups: groups}

	p := newPlot("WordCount Runtime Heatmap (seconds)", "Block Size", "Node Count")
	heat := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))
	p.Add(heat)

	p.X.Tick.Marker = nominalTicks{labels: labels}
	nodeLabels := make([]string, len(groups))
	for i, g := range groups {
		nodeLabels[i] = fmt.Sprintf("%d nodes", g.Nodes)
	}
	p.Y.Tick.Marker = nominalTicks{labels: nodeLabels}

	// Runtime annotations, white on hot cells for contrast.
	med := gridMedian(grid)
	var xys plotter.XYs
	var texts []string
	var hot []bool
	for r := range groups {
		for c := range groups[r].Points {
			v := grid.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, fmt.Sprintf("%.0fs", v))
			hot = append(hot, v > med)
		}
	}
	cells, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range cells.TextStyle {
		cells.TextStyle[i].XAlign = draw.XCenter
		cells.TextStyle[i].YAlign = draw.YCenter
		cells.TextStyle[i].Font.Size = vg.Points(8)
		if hot[i] {
			cells.TextStyle[i].Color = colorWhite
		}
	}
	p.Add(cells)

	return writeFigure(logw, dir, "heatmap", opts.pngOnly(), opts.dpi(), 12, 6,
		[][]*plot.Plot{{p}})
}

func gridMedian(g runtimeGrid) float64 {
	var vals []float64
	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := g.Z(c, r); !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

func renderSpeedup(logw io.Writer, set *benchmetric.SpeedupSet, groups []benchmetric.NodeGroup, dir string, opts Options) ([]Artifact, error) {
	p := newPlot(fmt.Sprintf("WordCount Speedup Analysis (relative to %d nodes)", set.BaselineNodes),
		"Block Size", fmt.Sprintf("Speedup (relative to %d nodes)", set.BaselineNodes))

	labels := axisLabels(groups)
	for i, g := range set.Groups {
		if len(g.Points) == 0 {
			continue
		}
		// Position each point at its label's axis slot so groups
		// with missing configurations still line up.
		slot := make(map[string]int, len(labels))
		for j, l := range labels {
			slot[l] = j
		}
		var xys plotter.XYs
		for _, pt := range g.Points {
			j, ok := slot[pt.Label]
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(j), Y: pt.Speedup})
		}
		l, s, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(2)
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(l, s)
		p.Legend.Add(fmt.Sprintf("%d nodes", g.Nodes), l, s)
	}

	base := refLine(0, float64(len(labels)-1), 1.0, colorGray)
	p.Add(base)
	p.Legend.Add("Baseline (1x)", base)
	p.Legend.Top = true
	p.NominalX(labels...)

	return writeFigure(logw, dir, "speedup", opts.pngOnly(), opts.dpi(), 12, 8,
		[][]*plot.Plot{{p}})
}
