// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// A DuplicateKeyError reports a repeated independent value within
// one rendered series. Duplicates mean the harness wrote the same
// configuration twice; merging them silently would hide that, so
// series extraction refuses instead.
type DuplicateKeyError struct {
	Column string
	Value  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate independent value %s in column %s", e.Value, e.Column)
}

// series pairs x and y into plotter points, enforcing unique
// independent values.
func series(col string, x, y []float64) (plotter.XYs, error) {
	seen := make(map[float64]bool, len(x))
	xys := make(plotter.XYs, len(x))
	for i := range x {
		if seen[x[i]] {
			return nil, &DuplicateKeyError{Column: col, Value: strconv.FormatFloat(x[i], 'g', -1, 64)}
		}
		seen[x[i]] = true
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return xys, nil
}

// indexSeries pairs 0..n-1 with y, for panels plotted over nominal
// positions.
func indexSeries(y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(y))
	for i, v := range y {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	return xys
}

// uniqueLabels enforces the unique-independent-value invariant for
// label-keyed series.
func uniqueLabels(col string, labels []string) error {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return &DuplicateKeyError{Column: col, Value: l}
		}
		seen[l] = true
	}
	return nil
}

// positive reports whether every value is > 0, i.e. whether a log
// scale is usable for the axis.
func positive(vals []float64) bool {
	for _, v := range vals {
		if v <= 0 {
			return false
		}
	}
	return true
}

// pow2Ticks labels a log-scaled axis at powers of two, the natural
// grid for doubling sweeps.
type pow2Ticks struct{}

func (pow2Ticks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = 1
	}
	var ts []plot.Tick
	for p := math.Floor(math.Log2(min)); math.Pow(2, p) <= max*(1+1e-9); p++ {
		v := math.Pow(2, p)
		if v < min {
			continue
		}
		ts = append(ts, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ts
}

// nominalTicks places one labeled tick per category index.
type nominalTicks struct {
	labels []string
}

func (n nominalTicks) Ticks(min, max float64) []plot.Tick {
	var ts []plot.Tick
	for i, l := range n.labels {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ts = append(ts, plot.Tick{Value: v, Label: l})
	}
	return ts
}
