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
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/harness"
)

func newBenchCmd(cfg *harness.Config, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "Time several algorithms, one after another, on the same input",
		Long: `Time the given algorithms (all of them by default) on the input. Each one
sorts its own copy of the input and runs only after the previous one has
finished. Distribution sorts need non-negative input; the whole benchmark is
rejected before anything runs if the input contains negative values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			r := harness.NewRunner(*cfg)
			algs, err := r.Select(args...)
			if err != nil {
				return err
			}
			data, err := r.Load()
			if err != nil {
				return err
			}
			progress(cmd, *verbose, "benchmarking %d algorithms on %d values, %d repetitions each",
				len(algs), len(data), cfg.Repeat)
			results, err := r.Bench(algs, data)
			if err != nil {
				return err
			}
			return harness.RenderSummary(cmd.OutOrStdout(), results, *cfg)
		},
	}
	bindRunFlags(cmd.Flags(), cfg)
	cmd.Flags().IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "Run each algorithm this many times and keep the fastest")
	return cmd
}
