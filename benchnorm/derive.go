// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchnorm

import (
	"fmt"
	"math"

	"github.com/hdfs-lab/benchreport/benchtab"
)

// This file holds the column backfill formulas. Older harness
// versions wrote fewer columns; each formula below reconstructs one
// missing column from one that is present. They are plain functions
// (rather than branches inside Normalize) so each is testable on its
// own.

// ExpFromBytes returns floor(log2(b)) for a byte count b, the
// block-size exponent the newer harnesses record directly. For
// b <= 0 the exponent is defined as 0.
func ExpFromBytes(b float64) int64 {
	if b <= 0 {
		return 0
	}
	return int64(math.Floor(math.Log2(b)))
}

// BytesFromKB converts the intermediate-format block_size_kb column
// to bytes.
func BytesFromKB(kb float64) int64 {
	return int64(kb * 1024)
}

// HumanFromBytes renders a byte count the way the harnesses label
// block sizes: binary factors with the conventional HDFS suffixes
// ("128MB" is 128 MiB).
func HumanFromBytes(b int64) string {
	if b <= 0 {
		return "0B"
	}
	units := []struct {
		factor int64
		suffix string
	}{
		{1 << 30, "GB"},
		{1 << 20, "MB"},
		{1 << 10, "KB"},
	}
	for _, u := range units {
		if b < u.factor {
			continue
		}
		if b%u.factor == 0 {
			return fmt.Sprintf("%d%s", b/u.factor, u.suffix)
		}
		return fmt.Sprintf("%.1f%s", float64(b)/float64(u.factor), u.suffix)
	}
	return fmt.Sprintf("%dB", b)
}

// A derivation backfills column col from column from when col is
// absent from a loaded table.
type derivation struct {
	col  string
	from string
	fn   func(benchtab.Value) (benchtab.Value, bool)
}

func floatDerivation(fn func(float64) benchtab.Value) func(benchtab.Value) (benchtab.Value, bool) {
	return func(v benchtab.Value) (benchtab.Value, bool) {
		f, ok := v.Float()
		if !ok {
			return "", false
		}
		return fn(f), true
	}
}

var (
	deriveBytesFromKB = derivation{
		col:  ColBlockSizeBytes,
		from: ColBlockSizeKB,
		fn: floatDerivation(func(kb float64) benchtab.Value {
			return benchtab.Value(fmt.Sprintf("%d", BytesFromKB(kb)))
		}),
	}
	deriveExpFromBytes = derivation{
		col:  ColBlockSizeExp,
		from: ColBlockSizeBytes,
		fn: floatDerivation(func(b float64) benchtab.Value {
			return benchtab.Value(fmt.Sprintf("%d", ExpFromBytes(b)))
		}),
	}
	deriveHumanFromBytes = derivation{
		col:  ColBlockSizeHuman,
		from: ColBlockSizeBytes,
		fn: floatDerivation(func(b float64) benchtab.Value {
			return benchtab.Value(HumanFromBytes(int64(b)))
		}),
	}
)
