// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads benchreport's configuration: viper-backed,
// with an optional YAML file and sane defaults for every key.
package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config holds the tunables the report pipeline reads. Command-line
// flags override these per invocation.
type Config struct {
	// BaselineNodes is the node-count group multi-node speedups
	// are computed against.
	BaselineNodes int64 `mapstructure:"baseline_nodes"`

	// HeapBudgetsGiB are the hypothetical heap sizes used for
	// capacity projections.
	HeapBudgetsGiB []int `mapstructure:"heap_budgets_gib"`

	// Formats are the figure formats to write ("png", "pdf").
	Formats []string `mapstructure:"formats"`

	// DPI for raster figures.
	DPI int `mapstructure:"dpi"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaselineNodes:  2,
		HeapBudgetsGiB: []int{4, 8, 16, 32, 64},
		Formats:        []string{"png", "pdf"},
		DPI:            150,
	}
}

// Load reads configuration from path, or, when path is empty, from
// .benchreport.yaml in the home or current directory. A missing
// default config file is not an error; an explicit path that cannot
// be read is.
func Load(path string) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("baseline_nodes", d.BaselineNodes)
	v.SetDefault("heap_budgets_gib", d.HeapBudgetsGiB)
	v.SetDefault("formats", d.Formats)
	v.SetDefault("dpi", d.DPI)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName(".benchreport")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
