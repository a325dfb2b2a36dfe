// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hdfs-lab/benchreport/benchmetric"
	"github.com/hdfs-lab/benchreport/benchnorm"
)

// The summary builders produce the console text block for each
// experiment kind. Field order and precision are fixed: scripts
// parse this output, and re-running on unchanged input must produce
// byte-identical text.

const rule60 = "============================================================"
const dash60 = "------------------------------------------------------------"

// commas formats n with thousands separators.
func commas(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// pctChange is the last-over-first relative change in percent.
// ok is false when the first value is zero.
func pctChange(vals []float64) (pct float64, ok bool) {
	first, last := vals[0], vals[len(vals)-1]
	if first == 0 {
		return 0, false
	}
	return (last/first - 1) * 100, true
}

func storageDirsSummary(t *benchnorm.Table, m *benchmetric.Metrics) []string {
	dirs := t.Ints(benchnorm.ColNumDirs)
	write := t.Floats(benchnorm.ColWriteTput)
	report := t.Floats(benchnorm.ColBlockReportMS)

	minDirs, maxDirs := dirs[0], dirs[0]
	for _, d := range dirs[1:] {
		if d < minDirs {
			minDirs = d
		}
		if d > maxDirs {
			maxDirs = d
		}
	}

	lines := []string{
		"Storage Directory Scaling Summary",
		dash60[:33],
		"",
		fmt.Sprintf("Tested configurations: %d", t.Len()),
		fmt.Sprintf("Storage dirs range: %d to %d", minDirs, maxDirs),
	}
	if m.Optimal != nil {
		i := m.Optimal.Index
		read := t.Floats(benchnorm.ColReadTput)
		lines = append(lines,
			"",
			"Optimal Configuration:",
			fmt.Sprintf("  Storage directories: %d", dirs[i]),
			fmt.Sprintf("  Write throughput: %.1f MB/s", write[i]),
			fmt.Sprintf("  Read throughput: %.1f MB/s", read[i]),
			fmt.Sprintf("  Block report time: %.1f ms", report[i]),
		)
	}
	var behavior []string
	if pct, ok := pctChange(write); ok {
		behavior = append(behavior, fmt.Sprintf("  Write throughput change: %.1f%%", pct))
	}
	if pct, ok := pctChange(report); ok {
		behavior = append(behavior, fmt.Sprintf("  Block report change: %.1f%%", pct))
	}
	if len(behavior) > 0 {
		lines = append(lines, "", "Scaling Behavior:")
		lines = append(lines, behavior...)
	}
	return lines
}

func blockScalingSummary(t *benchnorm.Table, m *benchmetric.Metrics) []string {
	blocks := t.Floats(benchnorm.ColActualBlocks)
	heap := t.Floats(benchnorm.ColHeapMB)
	minB, maxB := minMax(blocks)

	lines := []string{
		"Block Scaling Analysis",
		dash60[:33],
		"",
		fmt.Sprintf("Measured range: %s to %s blocks", commas(int64(minB)), commas(int64(maxB))),
		fmt.Sprintf("Memory growth: %.0fMB -> %.0fMB", heap[0], heap[len(heap)-1]),
	}
	if m.Trend != nil {
		lines = append(lines, fmt.Sprintf("Trend: %.4f MB/block", m.Trend.Slope))
	}
	if p := m.Projection; p != nil {
		note := ""
		if !p.Measured {
			note = " (default estimate)"
		}
		lines = append(lines,
			"",
			fmt.Sprintf("Estimated memory per block: ~%.0f bytes%s", p.BytesPerUnit, note),
			"",
			"NameNode Capacity Projections:",
		)
		for _, b := range p.Budgets {
			lines = append(lines, fmt.Sprintf("  %dGB heap -> ~%s blocks (~%.1fTB @ 128MB blocks)",
				b.GiB, commas(b.MaxUnits), b.TBAt128MB))
		}
		lines = append(lines,
			"",
			"Implications for Virtual Storage:",
			"  1000 virtual storages x 10 blocks each = 10,000 blocks",
			fmt.Sprintf("  Overhead: ~%.1fMB NameNode heap", 10000*p.BytesPerUnit/1024/1024),
		)
	}
	return lines
}

func memoryMonitorSummary(t *benchnorm.Table, _ *benchmetric.Metrics) []string {
	heap := t.Floats(benchnorm.ColHeapUsedMB)
	minH, maxH := minMax(heap)

	lines := []string{
		"NameNode Memory Monitoring Summary",
		dash60[:34],
		"",
		fmt.Sprintf("Duration: %d samples", t.Len()),
		"",
		"Heap Usage:",
		fmt.Sprintf("  Min: %.0f MB", minH),
		fmt.Sprintf("  Max: %.0f MB", maxH),
		fmt.Sprintf("  Avg: %.0f MB", mean(heap)),
	}
	if pcts := t.Floats(benchnorm.ColHeapPct); pcts != nil {
		_, maxPct := minMax(pcts)
		lines = append(lines, fmt.Sprintf("  Max %%: %.1f%%", maxPct))
	}
	if counts := t.Ints(benchnorm.ColBlockCount); counts != nil {
		first, last := counts[0], counts[len(counts)-1]
		lines = append(lines,
			"",
			"Block Count:",
			fmt.Sprintf("  Start: %s", commas(first)),
			fmt.Sprintf("  End: %s", commas(last)),
			fmt.Sprintf("  Delta: %s", commas(last-first)),
		)
	}
	return lines
}

func blockSizeSummary(t *benchnorm.Table, m *benchmetric.Metrics) []string {
	labels := t.Strings(benchnorm.ColBlockSizeHuman)
	runtimes := t.Floats(benchnorm.ColRuntimeSec)
	minR, maxR := minMax(runtimes)

	lines := []string{
		rule60,
		"WordCount Block Size Benchmark Results",
		rule60,
		"",
		fmt.Sprintf("Number of configurations tested: %d", t.Len()),
		"",
		fmt.Sprintf("Block size range: %s to %s", labels[0], labels[len(labels)-1]),
		"",
		fmt.Sprintf("Runtime range: %.1fs to %.1fs", minR, maxR),
	}
	if m.Optimal != nil {
		i := m.Optimal.Index
		lines = append(lines,
			"",
			fmt.Sprintf("Optimal block size: %s (%.1fs)", labels[i], runtimes[i]),
		)
		bytes := t.Ints(benchnorm.ColBlockSizeBytes)
		if formulas := t.Strings(benchnorm.ColBlockSizeFormula); formulas != nil {
			lines = append(lines, fmt.Sprintf("  Formula: %s = %d bytes", formulas[i], bytes[i]))
		} else if exps := t.Ints(benchnorm.ColBlockSizeExp); exps != nil {
			lines = append(lines, fmt.Sprintf("  Formula: 2^%d = %d bytes", exps[i], bytes[i]))
		}
	}
	lines = append(lines, "", dash60, "Detailed Results:", dash60)
	lines = append(lines, detailTable(t)...)
	lines = append(lines, rule60)
	return lines
}

// detailTable renders every column of every row, right-aligned, in
// column order.
func detailTable(t *benchnorm.Table) []string {
	cols := t.Cols
	rows := make([][]string, t.Len()+1)
	rows[0] = cols
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = t.Value(i, c).String()
		}
		rows[i+1] = row
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			b.WriteString(cell)
		}
		out[i] = b.String()
	}
	return out
}

func multiNodeSummary(t *benchnorm.Table, m *benchmetric.Metrics) []string {
	lines := []string{
		rule60,
		"Multi-Node WordCount Benchmark Results",
		rule60,
		"",
		fmt.Sprintf("Measurements: %d", t.Len()),
	}

	var nodeList []string
	for _, g := range m.Groups {
		nodeList = append(nodeList, strconv.FormatInt(g.Nodes, 10))
	}
	lines = append(lines, fmt.Sprintf("Node configurations: %s", strings.Join(nodeList, ", ")))

	// Best configuration across all groups.
	bestG, bestP := -1, -1
	for gi, g := range m.Groups {
		for pi, p := range g.Points {
			if bestG < 0 || p.Runtime < m.Groups[bestG].Points[bestP].Runtime {
				bestG, bestP = gi, pi
			}
		}
	}
	if bestG >= 0 {
		best := m.Groups[bestG].Points[bestP]
		lines = append(lines, fmt.Sprintf("Best configuration: %d nodes @ %s (%.1fs)",
			m.Groups[bestG].Nodes, best.Label, best.Runtime))
	}

	if m.Speedup == nil {
		lines = append(lines, "", "Speedup: unavailable (no baseline group)")
	} else {
		lines = append(lines, "", fmt.Sprintf("Speedup vs %d nodes:", m.Speedup.BaselineNodes))
		for _, g := range m.Speedup.Groups {
			if len(g.Points) == 0 {
				continue
			}
			var vals []float64
			for _, p := range g.Points {
				vals = append(vals, p.Speedup)
			}
			lines = append(lines, fmt.Sprintf("  %d nodes: mean %.2fx", g.Nodes, mean(vals)))
		}
	}
	lines = append(lines, rule60)
	return lines
}
