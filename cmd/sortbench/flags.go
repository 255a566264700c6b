// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-sortbench/harness"
)

// unitValue adapts harness.Unit to pflag.Value so bad units fail at parse
// time.
type unitValue struct {
	unit *harness.Unit
}

var _ pflag.Value = unitValue{}

func (u unitValue) String() string {
	if u.unit == nil {
		return ""
	}
	return string(*u.unit)
}

func (u unitValue) Set(s string) error {
	unit := harness.Unit(s)
	if _, ok := unit.Duration(); !ok {
		return fmt.Errorf("unknown unit %q (want ns, us, ms or s)", s)
	}
	*u.unit = unit
	return nil
}

func (unitValue) Type() string { return "unit" }

// bindRunFlags registers the flags shared by run and bench on fs.
func bindRunFlags(fs *pflag.FlagSet, cfg *harness.Config) {
	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Input file: a count followed by that many integers")
	fs.Var(unitValue{&cfg.Unit}, "unit", "Time unit for reports (ns, us, ms, s)")
	fs.IntVar(&cfg.MaxPrint, "max-print", cfg.MaxPrint, "Print at most this many values per sequence (0 prints all)")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check that every output is a sorted permutation of its input")
}

// progress writes a status line to stderr when verbose is set.
func progress(cmd *cobra.Command, verbose bool, format string, args ...any) {
	if verbose {
		cmd.PrintErrf(format+"\n", args...)
	}
}
