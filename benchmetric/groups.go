// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmetric

import (
	"sort"

	"github.com/hdfs-lab/benchreport/benchnorm"
)

// A GroupPoint is one measurement within a node-count group.
type GroupPoint struct {
	Label   string // block size label, e.g. "128MB"
	Runtime float64
}

// A NodeGroup is the series of measurements taken at one cluster
// size.
type NodeGroup struct {
	Nodes  int64
	Points []GroupPoint
}

// NodeGroups splits a multi-node table into one series per
// node_count, ordered by ascending node count. Points within a group
// keep table order.
func NodeGroups(t *benchnorm.Table) []NodeGroup {
	nodes := t.Ints(benchnorm.ColNodeCount)
	labels := t.Strings(benchnorm.ColBlockSizeHuman)
	runtimes := t.Floats(benchnorm.ColRuntimeSec)
	if nodes == nil || labels == nil || runtimes == nil {
		return nil
	}

	byNode := make(map[int64]int)
	var groups []NodeGroup
	for i := range nodes {
		gi, ok := byNode[nodes[i]]
		if !ok {
			gi = len(groups)
			byNode[nodes[i]] = gi
			groups = append(groups, NodeGroup{Nodes: nodes[i]})
		}
		groups[gi].Points = append(groups[gi].Points, GroupPoint{
			Label:   labels[i],
			Runtime: runtimes[i],
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Nodes < groups[j].Nodes })
	return groups
}

// A SpeedupPoint is one block-size configuration's speedup over the
// baseline group.
type SpeedupPoint struct {
	Label   string
	Speedup float64
}

// A SpeedupGroup holds the speedups for one non-baseline node count.
type SpeedupGroup struct {
	Nodes  int64
	Points []SpeedupPoint
}

// A SpeedupSet holds per-group speedups relative to a fixed baseline
// node count.
type SpeedupSet struct {
	BaselineNodes int64
	Groups        []SpeedupGroup
}

// Speedup computes baseline_runtime/runtime per matching block-size
// label for each non-baseline group. It returns nil when the
// baseline group is absent; speedup is then reported as unavailable
// rather than failing the run. Points with no matching baseline
// label, or with a non-positive runtime, are skipped.
func Speedup(groups []NodeGroup, baseline int64) *SpeedupSet {
	var base map[string]float64
	for _, g := range groups {
		if g.Nodes != baseline {
			continue
		}
		base = make(map[string]float64, len(g.Points))
		for _, p := range g.Points {
			if _, dup := base[p.Label]; !dup {
				base[p.Label] = p.Runtime
			}
		}
		break
	}
	if base == nil {
		return nil
	}

	set := &SpeedupSet{BaselineNodes: baseline}
	for _, g := range groups {
		if g.Nodes == baseline {
			continue
		}
		sg := SpeedupGroup{Nodes: g.Nodes}
		for _, p := range g.Points {
			ref, ok := base[p.Label]
			if !ok || p.Runtime <= 0 {
				continue
			}
			sg.Points = append(sg.Points, SpeedupPoint{Label: p.Label, Speedup: ref / p.Runtime})
		}
		set.Groups = append(set.Groups, sg)
	}
	return set
}
