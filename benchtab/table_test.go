// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"github.com/hdfs-lab/benchreport/internal/csvtest"
)

func TestRead(t *testing.T) {
	in := strings.Join([]string{
		"block_size_bytes,block_size_human,runtime_seconds,num_splits",
		"1048576,1MB,210.4,4800",
		"134217728,128MB,95.1,38",
		"268435456,256MB,ERROR,",
	}, "\n")
	tab, err := Read(strings.NewReader(in), "results.csv")
	if err != nil {
		t.Fatal(err)
	}

	wantCols := []string{"block_size_bytes", "block_size_human", "runtime_seconds", "num_splits"}
	if !reflect.DeepEqual(tab.Cols, wantCols) {
		t.Errorf("columns: got %v, want %v", tab.Cols, wantCols)
	}
	if tab.Len() != 3 {
		t.Fatalf("got %d rows, want 3", tab.Len())
	}

	cell := func(i int, col, want string) {
		t.Helper()
		v, ok := tab.Rows[i].Get(col)
		if !ok {
			t.Errorf("row %d: missing column %s", i, col)
			return
		}
		if v.String() != want {
			t.Errorf("row %d %s: got %q, want %q", i, col, v, want)
		}
	}
	cell(0, "block_size_human", "1MB")
	cell(1, "runtime_seconds", "95.1")
	cell(2, "runtime_seconds", "ERROR")

	if !tab.HasColumn("num_splits") || tab.HasColumn("node_count") {
		t.Errorf("HasColumn misreported the column set")
	}
}

func TestReadErrors(t *testing.T) {
	bad := func(in string, frag string) {
		t.Helper()
		_, err := Read(strings.NewReader(in), "results.csv")
		if err == nil {
			t.Errorf("Read(%q) succeeded, want error containing %q", in, frag)
			return
		}
		if !strings.Contains(err.Error(), frag) {
			t.Errorf("Read(%q) = %v, want error containing %q", in, err, frag)
		}
	}
	bad("", "empty table")
	bad("a,b,a\n1,2,3", "duplicate column")
	bad("a,,c\n1,2,3", "blank column")
	bad("a,b\n1,2,3", "")
}

func TestReadCSV(t *testing.T) {
	path := csvtest.Write(t, "results.csv",
		"num_dirs,write_throughput_mbps",
		"1,102.3",
	)
	tab, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 1 || tab.Path != path {
		t.Errorf("got %d rows from %q, want 1 row from %q", tab.Len(), tab.Path, path)
	}

	_, err = ReadCSV(path + ".missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v, want fs.ErrNotExist", err)
	}
}

func TestValue(t *testing.T) {
	f := func(in string, want float64, ok bool) {
		t.Helper()
		got, gotOK := Value(in).Float()
		if gotOK != ok || (ok && got != want) {
			t.Errorf("Value(%q).Float() = %v, %v; want %v, %v", in, got, gotOK, want, ok)
		}
	}
	f("95.1", 95.1, true)
	f(" 12 ", 12, true)
	f("ERROR", 0, false)
	f("", 0, false)

	i := func(in string, want int64, ok bool) {
		t.Helper()
		got, gotOK := Value(in).Int()
		if gotOK != ok || (ok && got != want) {
			t.Errorf("Value(%q).Int() = %v, %v; want %v, %v", in, got, gotOK, want, ok)
		}
	}
	i("1024", 1024, true)
	i("42.0", 42, true)
	i("42.5", 0, false)
	i("SKIPPED", 0, false)
}
