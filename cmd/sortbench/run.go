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

func newRunCmd(cfg *harness.Config, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Sort the input with one algorithm and report the result",
		Long: `Sort the input with one algorithm, selected by name (e.g. quick, radix_sort)
or by its number in "sortbench list", and print the sequence before and after
sorting together with the time taken by the sort step alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			r := harness.NewRunner(*cfg)
			algs, err := r.Select(args[0])
			if err != nil {
				return err
			}
			data, err := r.Load()
			if err != nil {
				return err
			}
			progress(cmd, *verbose, "running %s on %d values from %s", algs[0].Name, len(data), cfg.Input)
			res, err := r.Run(algs[0], data)
			if err != nil {
				return err
			}
			return harness.Render(cmd.OutOrStdout(), res, *cfg)
		},
	}
	bindRunFlags(cmd.Flags(), cfg)
	return cmd
}
