// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmetric

import "github.com/aclements/go-moremath/stats"

// A RunSummary aggregates the runtimes of repeated experiment runs.
type RunSummary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 with fewer than 2 runs
}

// Summarize computes count, mean, and sample standard deviation over
// a set of run times.
func Summarize(times []float64) RunSummary {
	out := RunSummary{Count: len(times)}
	if len(times) == 0 {
		return out
	}
	s := stats.Sample{Xs: times}
	out.Mean = s.Mean()
	if len(times) > 1 {
		out.StdDev = s.StdDev()
	}
	return out
}
