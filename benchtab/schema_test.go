// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import "testing"

func TestDetect(t *testing.T) {
	test := func(kind Kind, cols ...string) {
		t.Helper()
		if got := Detect(cols); got != kind {
			t.Errorf("Detect(%v) = %s, want %s", cols, got, kind)
		}
	}

	test(StorageDirScaling, "num_dirs", "write_throughput_mbps", "read_throughput_mbps", "block_report_ms", "namenode_heap_mb")
	test(BlockCountScaling, "target_blocks", "actual_blocks", "heap_mb")
	test(BlockCountScaling, "block_size_exp", "actual_blocks", "heap_mb")
	test(MemoryOverTime, "timestamp", "heap_used_mb", "heap_pct", "block_count")
	test(BlockSizeBenchmark, "block_size_bytes", "block_size_human", "runtime_seconds", "num_splits")
	test(BlockSizeBenchmark, "block_size_human", "runtime_seconds")
	test(MultiNodeBenchmark, "node_count", "block_size_human", "runtime_seconds")

	test(Unknown)
	test(Unknown, "runtime_seconds", "timestamp")
	test(Unknown, "heap_used_mb") // timestamp missing

	// num_dirs wins over every other marker combination.
	test(StorageDirScaling, "num_dirs", "target_blocks", "block_size_exp",
		"heap_used_mb", "timestamp", "block_size_bytes", "block_size_human", "node_count")

	// The exponent marker outranks the block-size markers, so an
	// exponent-bearing sweep stays a block-count experiment.
	test(BlockCountScaling, "block_size_exp", "block_size_bytes", "block_size_human")

	// node_count keeps a block-size table out of the single-node rule.
	test(MultiNodeBenchmark, "block_size_human", "node_count", "runtime_seconds", "num_splits")
}

func TestKindString(t *testing.T) {
	if got := StorageDirScaling.String(); got != "storage_dirs" {
		t.Errorf("StorageDirScaling.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
