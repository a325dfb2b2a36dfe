// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmetric computes secondary statistics from normalized
// result tables: trend fits, per-unit cost estimates, capacity
// projections, optimal-configuration selection, and multi-node
// speedups.
//
// Every metric is optional. A nil field in Metrics means the
// metric's preconditions were not met (too few points, missing
// optional column, absent baseline group); renderers branch on nil
// rather than probing columns themselves. One metric being
// unavailable never prevents the others from being computed.
package benchmetric

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hdfs-lab/benchreport/benchnorm"
	"github.com/hdfs-lab/benchreport/benchtab"
)

// DefaultBytesPerBlock is the capacity-projection fallback when the
// measured block range has zero span. 150 bytes per block is the
// standard NameNode sizing estimate.
const DefaultBytesPerBlock = 150

// DefaultBudgetsGiB are the hypothetical heap sizes projected when
// the caller does not configure its own set.
var DefaultBudgetsGiB = []int{4, 8, 16, 32, 64}

// Options configures derivation. The zero value uses a 2-node
// speedup baseline and DefaultBudgetsGiB.
type Options struct {
	// BaselineNodes is the node-count group speedups are computed
	// against. It is fixed by configuration, never auto-detected.
	BaselineNodes int64

	// BudgetsGiB are the heap budgets for capacity projection.
	BudgetsGiB []int
}

func (o Options) baseline() int64 {
	if o.BaselineNodes == 0 {
		return 2
	}
	return o.BaselineNodes
}

func (o Options) budgets() []int {
	if len(o.BudgetsGiB) == 0 {
		return DefaultBudgetsGiB
	}
	return o.BudgetsGiB
}

// Metrics holds every derived metric for one table. Nil fields are
// unavailable. A Metrics value is computed once per table and never
// mutated afterwards.
type Metrics struct {
	Trend      *TrendFit
	PerUnit    *PerUnitSeries
	Projection *CapacityProjection
	Optimal    *OptimalRow
	Groups     []NodeGroup
	Speedup    *SpeedupSet
}

// A TrendFit is an ordinary least-squares line through a dependent
// column versus an independent one.
type TrendFit struct {
	Slope     float64
	Intercept float64
}

// Fit returns the least-squares line through (x[i], y[i]), or nil
// with fewer than 3 points.
func Fit(x, y []float64) *TrendFit {
	if len(x) < 3 || len(x) != len(y) {
		return nil
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return &TrendFit{Slope: slope, Intercept: intercept}
}

// At evaluates the fitted line at x.
func (f *TrendFit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// A PerUnitSeries is Δdependent/Δindependent between consecutive
// rows, aligned one-to-one with the table's rows.
type PerUnitSeries struct {
	Values []float64
}

// PerUnit computes consecutive-row deltas. The first row compares to
// itself, so its delta uses the raw values. A zero independent delta
// uses a divisor of 1 instead of faulting; with noisy repeated
// configurations this surfaces the dependent delta directly.
func PerUnit(indep, dep []float64) *PerUnitSeries {
	if len(indep) == 0 || len(indep) != len(dep) {
		return nil
	}
	vals := make([]float64, len(indep))
	for i := range indep {
		di, dd := indep[i], dep[i]
		if i > 0 {
			di -= indep[i-1]
			dd -= dep[i-1]
		}
		if di == 0 {
			di = 1
		}
		vals[i] = dd / di
	}
	return &PerUnitSeries{Values: vals}
}

// A Budget is one capacity projection: the unit count a hypothetical
// resource budget supports at the estimated per-unit cost.
type Budget struct {
	GiB      int
	MaxUnits int64

	// TBAt128MB is the addressable data at 128 MB blocks, in TB.
	TBAt128MB float64
}

// A CapacityProjection estimates per-unit memory cost from the
// endpoints of the measured range and projects capacity for a set of
// heap budgets.
type CapacityProjection struct {
	// BytesPerUnit is the estimated cost. When Measured is false
	// the measured range had zero span and DefaultBytesPerBlock
	// was substituted.
	BytesPerUnit float64
	Measured     bool

	Budgets []Budget
}

// Project estimates bytes per unit from the first and last rows of
// units (counts) and costMB (megabytes), then sizes each budget.
// It returns nil with fewer than 2 points.
func Project(units, costMB []float64, budgetsGiB []int) *CapacityProjection {
	if len(units) < 2 || len(units) != len(costMB) {
		return nil
	}
	last := len(units) - 1
	du := units[last] - units[0]
	dc := costMB[last] - costMB[0]

	p := &CapacityProjection{BytesPerUnit: DefaultBytesPerBlock}
	if du > 0 {
		if bpu := dc * 1024 * 1024 / du; bpu > 0 {
			p.BytesPerUnit = bpu
			p.Measured = true
		}
	}
	for _, gib := range budgetsGiB {
		max := int64(float64(gib) * 1024 * 1024 * 1024 / p.BytesPerUnit)
		p.Budgets = append(p.Budgets, Budget{
			GiB:       gib,
			MaxUnits:  max,
			TBAt128MB: float64(max) * 128 / 1024 / 1024,
		})
	}
	return p
}

// An OptimalRow identifies the row optimizing an objective column.
type OptimalRow struct {
	Index    int
	Column   string
	Minimize bool
	Value    float64
}

// Optimal returns the index of the best value. Ties are broken by
// first occurrence in table order. ok is false for an empty slice.
func Optimal(values []float64, minimize bool) (index int, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if minimize && values[i] < values[best] {
			best = i
		} else if !minimize && values[i] > values[best] {
			best = i
		}
	}
	return best, true
}

// Derive computes every metric applicable to t's kind. Metrics whose
// preconditions are unmet are left nil; no sub-computation aborts
// the others.
func Derive(t *benchnorm.Table, opts Options) *Metrics {
	m := &Metrics{}
	switch t.Kind {
	case benchtab.StorageDirScaling:
		if vals := t.Floats(benchnorm.ColWriteTput); vals != nil {
			if i, ok := Optimal(vals, false); ok {
				m.Optimal = &OptimalRow{Index: i, Column: benchnorm.ColWriteTput, Value: vals[i]}
			}
		}

	case benchtab.BlockCountScaling:
		blocks := t.Floats(benchnorm.ColActualBlocks)
		heap := t.Floats(benchnorm.ColHeapMB)
		m.Trend = Fit(blocks, heap)
		if deltas := t.Floats(benchnorm.ColHeapDeltaMB); deltas != nil {
			m.PerUnit = PerUnit(blocks, deltas)
		}
		m.Projection = Project(blocks, heap, opts.budgets())

	case benchtab.BlockSizeBenchmark:
		if vals := t.Floats(benchnorm.ColRuntimeSec); vals != nil {
			if i, ok := Optimal(vals, true); ok {
				m.Optimal = &OptimalRow{Index: i, Column: benchnorm.ColRuntimeSec, Minimize: true, Value: vals[i]}
			}
		}

	case benchtab.MultiNodeBenchmark:
		m.Groups = NodeGroups(t)
		m.Speedup = Speedup(m.Groups, opts.baseline())
	}
	return m
}
