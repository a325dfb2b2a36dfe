// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchnorm

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hdfs-lab/benchreport/benchtab"
)

func load(t *testing.T, lines ...string) *benchtab.Table {
	t.Helper()
	tab, err := benchtab.Read(strings.NewReader(strings.Join(lines, "\n")), "test.csv")
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestNormalizeFiltersSentinels(t *testing.T) {
	tab := load(t,
		"block_size_bytes,block_size_human,runtime_seconds,num_splits",
		"1048576,1MB,210.4,4800",
		"4194304,4MB,ERROR,",
		"16777216,16MB,SKIPPED,",
		"67108864,64MB,102.7,75",
		"134217728,128MB,not-a-number,38",
	)
	norm, err := Normalize(tab, benchtab.BlockSizeBenchmark)
	if err != nil {
		t.Fatal(err)
	}
	if norm.Len() > tab.Len() {
		t.Fatalf("normalized table has %d rows, raw had %d", norm.Len(), tab.Len())
	}
	if norm.Len() != 2 {
		t.Fatalf("got %d surviving rows, want 2", norm.Len())
	}
	// Order preserved from the source.
	want := []float64{210.4, 102.7}
	if got := norm.Floats(ColRuntimeSec); !reflect.DeepEqual(got, want) {
		t.Errorf("runtime_seconds = %v, want %v", got, want)
	}
	wantLabels := []string{"1MB", "64MB"}
	if got := norm.Strings(ColBlockSizeHuman); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("block_size_human = %v, want %v", got, wantLabels)
	}
}

func TestNormalizeBackfillsExponent(t *testing.T) {
	// Old harness format: no block_size_exp column.
	tab := load(t,
		"block_size_bytes,block_size_human,runtime_seconds,num_splits",
		"1048576,1MB,210.4,4800",
		"134217728,128MB,95.1,38",
	)
	norm, err := Normalize(tab, benchtab.BlockSizeBenchmark)
	if err != nil {
		t.Fatal(err)
	}
	if !norm.HasColumn(ColBlockSizeExp) {
		t.Fatal("block_size_exp was not backfilled")
	}
	want := []int64{20, 27}
	if got := norm.Ints(ColBlockSizeExp); !reflect.DeepEqual(got, want) {
		t.Errorf("block_size_exp = %v, want %v", got, want)
	}
}

func TestNormalizeBackfillsFromKB(t *testing.T) {
	// Intermediate harness format: sizes recorded in KB only.
	tab := load(t,
		"block_size_kb,runtime_seconds",
		"1024,210.4",
		"131072,95.1",
	)
	norm, err := Normalize(tab, benchtab.BlockSizeBenchmark)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := norm.Ints(ColBlockSizeBytes), []int64{1048576, 134217728}; !reflect.DeepEqual(got, want) {
		t.Errorf("block_size_bytes = %v, want %v", got, want)
	}
	if got, want := norm.Strings(ColBlockSizeHuman), []string{"1MB", "128MB"}; !reflect.DeepEqual(got, want) {
		t.Errorf("block_size_human = %v, want %v", got, want)
	}
	if got, want := norm.Ints(ColBlockSizeExp), []int64{20, 27}; !reflect.DeepEqual(got, want) {
		t.Errorf("block_size_exp = %v, want %v", got, want)
	}
}

func TestNormalizeIntCoercion(t *testing.T) {
	tab := load(t,
		"num_dirs,write_throughput_mbps,read_throughput_mbps,block_report_ms,namenode_heap_mb",
		"1.0,102.3,240.1,12.5,310",
		"2,98.7,238.9,14.1,318",
	)
	norm, err := Normalize(tab, benchtab.StorageDirScaling)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := norm.Ints(ColNumDirs), []int64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("num_dirs = %v, want %v", got, want)
	}
}

func TestNormalizeSchemaMismatch(t *testing.T) {
	tab := load(t,
		"num_dirs,write_throughput_mbps",
		"1,102.3",
	)
	_, err := Normalize(tab, benchtab.StorageDirScaling)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want SchemaMismatchError", err)
	}
	for _, col := range []string{ColReadTput, ColBlockReportMS, ColNamenodeHeapMB} {
		found := false
		for _, m := range mismatch.Missing {
			if m == col {
				found = true
			}
		}
		if !found {
			t.Errorf("missing columns %v do not include %s", mismatch.Missing, col)
		}
	}
}

func TestNormalizeEmptyAfterFiltering(t *testing.T) {
	tab := load(t,
		"block_size_bytes,block_size_human,runtime_seconds",
		"1048576,1MB,ERROR",
		"4194304,4MB,SKIPPED",
	)
	_, err := Normalize(tab, benchtab.BlockSizeBenchmark)
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("got %v, want ErrEmptyTable", err)
	}
}

func TestNormalizeUnknownKind(t *testing.T) {
	tab := load(t, "a,b", "1,2")
	if _, err := Normalize(tab, benchtab.Unknown); err == nil {
		t.Fatal("normalizing an unknown kind succeeded")
	}
}

func TestNormalizeOptionalColumnStillFiltered(t *testing.T) {
	// block_count is optional for the memory monitor, but a row
	// where it is present and garbage is dropped, not defaulted.
	tab := load(t,
		"timestamp,heap_used_mb,heap_pct,block_count",
		"2025-05-01T10:00:00,512,40.0,1000",
		"2025-05-01T10:00:05,530,41.4,ERROR",
		"2025-05-01T10:00:10,545,42.6,1210",
	)
	norm, err := Normalize(tab, benchtab.MemoryOverTime)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := norm.Ints(ColBlockCount), []int64{1000, 1210}; !reflect.DeepEqual(got, want) {
		t.Errorf("block_count = %v, want %v", got, want)
	}
}
