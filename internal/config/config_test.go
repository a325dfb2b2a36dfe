// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point the home lookup at an empty directory so a developer's
	// real ~/.benchreport.yaml cannot leak into the test.
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", c, Default())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchreport.yaml")
	body := "baseline_nodes: 4\nheap_budgets_gib: [8, 16]\nformats: [png]\ndpi: 96\n"
	if err := os.WriteFile(path, []byte(body), 0666); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.BaselineNodes != 4 {
		t.Errorf("BaselineNodes = %d, want 4", c.BaselineNodes)
	}
	if !reflect.DeepEqual(c.HeapBudgetsGiB, []int{8, 16}) {
		t.Errorf("HeapBudgetsGiB = %v, want [8 16]", c.HeapBudgetsGiB)
	}
	if !reflect.DeepEqual(c.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, want [png]", c.Formats)
	}
	if c.DPI != 96 {
		t.Errorf("DPI = %d, want 96", c.DPI)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchreport.yaml")
	if err := os.WriteFile(path, []byte("dpi: 300\n"), 0666); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.DPI != 300 {
		t.Errorf("DPI = %d, want 300", c.DPI)
	}
	if c.BaselineNodes != 2 {
		t.Errorf("BaselineNodes = %d, want default 2", c.BaselineNodes)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing explicit file: want error")
	}
}
