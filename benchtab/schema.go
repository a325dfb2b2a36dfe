// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"fmt"
)

// A Kind identifies which experiment harness produced a result
// table. It is determined solely from the column set; row contents
// are never inspected.
type Kind int

const (
	// Unknown means no marker columns matched. It is a valid
	// classification, not an error; callers decide whether it is
	// fatal (for the report pipeline it is, via ErrUnknownSchema).
	Unknown Kind = iota

	// StorageDirScaling is the virtual-storage-unit scaling
	// experiment: I/O throughput and NameNode load as the number
	// of storage directories grows.
	StorageDirScaling

	// BlockCountScaling is the NameNode memory scaling
	// experiment: heap use as the block count grows.
	BlockCountScaling

	// MemoryOverTime is the NameNode heap monitor: periodic
	// samples of heap use during a long-running workload.
	MemoryOverTime

	// BlockSizeBenchmark is the single-cluster WordCount sweep
	// over HDFS block sizes.
	BlockSizeBenchmark

	// MultiNodeBenchmark is the WordCount block-size sweep
	// repeated across cluster sizes.
	MultiNodeBenchmark
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case StorageDirScaling:
		return "storage_dirs"
	case BlockCountScaling:
		return "block_scaling"
	case MemoryOverTime:
		return "memory_monitor"
	case BlockSizeBenchmark:
		return "blocksize_benchmark"
	case MultiNodeBenchmark:
		return "multinode_benchmark"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUnknownSchema is reported by callers when Detect returns
// Unknown and the pipeline cannot proceed.
var ErrUnknownSchema = errors.New("unrecognized result schema")

// Detect classifies a column set into a Kind.
//
// The decision is a fixed priority order over marker columns; the
// first matching rule wins, which matters because several harnesses
// share columns:
//
//	1. num_dirs                         -> StorageDirScaling
//	2. target_blocks or block_size_exp  -> BlockCountScaling
//	3. heap_used_mb and timestamp       -> MemoryOverTime
//	4. block_size_bytes or block_size_human,
//	   without node_count               -> BlockSizeBenchmark
//	5. node_count and block_size_human  -> MultiNodeBenchmark
//
// The node_count exclusion in rule 4 keeps the multi-node sweep
// reachable: its tables carry block_size_human too, and only the
// node_count column tells the two sweeps apart.
func Detect(cols []string) Kind {
	set := make(map[string]bool, len(cols))
	for _, c := range cols {
		set[c] = true
	}
	switch {
	case set["num_dirs"]:
		return StorageDirScaling
	case set["target_blocks"] || set["block_size_exp"]:
		return BlockCountScaling
	case set["heap_used_mb"] && set["timestamp"]:
		return MemoryOverTime
	case (set["block_size_bytes"] || set["block_size_human"]) && !set["node_count"]:
		return BlockSizeBenchmark
	case set["node_count"] && set["block_size_human"]:
		return MultiNodeBenchmark
	}
	return Unknown
}
