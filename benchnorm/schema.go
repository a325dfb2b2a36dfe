// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchnorm

import "github.com/hdfs-lab/benchreport/benchtab"

// Column names shared across the pipeline. Keeping them as
// constants avoids the stringly-typed drift the raw CSVs invite.
const (
	ColNumDirs        = "num_dirs"
	ColWriteTput      = "write_throughput_mbps"
	ColReadTput       = "read_throughput_mbps"
	ColBlockReportMS  = "block_report_ms"
	ColNamenodeHeapMB = "namenode_heap_mb"

	ColTargetBlocks  = "target_blocks"
	ColActualBlocks  = "actual_blocks"
	ColHeapMB        = "heap_mb"
	ColHeapDeltaMB   = "heap_delta_mb"
	ColLsLatencyMS   = "ls_latency_ms"
	ColFsckLatencyMS = "fsck_latency_ms"

	ColTimestamp  = "timestamp"
	ColHeapUsedMB = "heap_used_mb"
	ColHeapPct    = "heap_pct"
	ColBlockCount = "block_count"

	ColBlockSizeExp     = "block_size_exp"
	ColBlockSizeKB      = "block_size_kb"
	ColBlockSizeBytes   = "block_size_bytes"
	ColBlockSizeHuman   = "block_size_human"
	ColBlockSizeFormula = "block_size_formula"
	ColRuntimeSec       = "runtime_seconds"
	ColNumSplits        = "num_splits"

	ColNodeCount = "node_count"
)

type colType int

const (
	colFloat colType = iota
	colInt
)

type column struct {
	name string
	typ  colType
}

// A schema declares, for one experiment kind, which columns must be
// present (after backfill), which columns are numeric when present,
// and which backfill derivations apply. Numeric columns that are not
// required are optional: absent is fine, but a present column is
// held to the same sentinel/coercion filtering as a required one.
type schema struct {
	required    []string
	numeric     []column
	derivations []derivation
}

var schemas = map[benchtab.Kind]schema{
	benchtab.StorageDirScaling: {
		required: []string{ColNumDirs, ColWriteTput, ColReadTput, ColBlockReportMS, ColNamenodeHeapMB},
		numeric: []column{
			{ColNumDirs, colInt},
			{ColWriteTput, colFloat},
			{ColReadTput, colFloat},
			{ColBlockReportMS, colFloat},
			{ColNamenodeHeapMB, colFloat},
		},
	},
	benchtab.BlockCountScaling: {
		required: []string{ColActualBlocks, ColHeapMB},
		numeric: []column{
			{ColTargetBlocks, colInt},
			{ColActualBlocks, colInt},
			{ColHeapMB, colFloat},
			{ColHeapDeltaMB, colFloat},
			{ColLsLatencyMS, colFloat},
			{ColFsckLatencyMS, colFloat},
			{ColBlockSizeExp, colInt},
		},
	},
	benchtab.MemoryOverTime: {
		required: []string{ColTimestamp, ColHeapUsedMB},
		numeric: []column{
			{ColHeapUsedMB, colFloat},
			{ColHeapPct, colFloat},
			{ColBlockCount, colInt},
		},
	},
	benchtab.BlockSizeBenchmark: {
		required: []string{ColBlockSizeBytes, ColBlockSizeHuman, ColRuntimeSec},
		numeric: []column{
			{ColBlockSizeExp, colInt},
			{ColBlockSizeKB, colInt},
			{ColBlockSizeBytes, colInt},
			{ColRuntimeSec, colFloat},
			{ColNumSplits, colInt},
		},
		// Order matters: bytes are reconstructed from the KB
		// column first so the exponent and label can be
		// reconstructed from bytes.
		derivations: []derivation{deriveBytesFromKB, deriveExpFromBytes, deriveHumanFromBytes},
	},
	benchtab.MultiNodeBenchmark: {
		required: []string{ColNodeCount, ColBlockSizeHuman, ColRuntimeSec},
		numeric: []column{
			{ColNodeCount, colInt},
			{ColRuntimeSec, colFloat},
			{ColNumSplits, colInt},
			{ColBlockSizeBytes, colInt},
		},
	},
}
