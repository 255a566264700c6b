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
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/harness"
)

func newGenCmd() *cobra.Command {
	var (
		n        int
		pattern  string
		maxValue int
		seed     uint64
		output   string
	)
	patterns := strings.Join(lo.Map(harness.Patterns, func(p harness.Pattern, _ int) string { return string(p) }), ", ")

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := harness.Generate(n, harness.Pattern(pattern), maxValue, seed)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return harness.WriteSequence(cmd.OutOrStdout(), data)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := harness.WriteSequence(f, data); err != nil {
				f.Close()
				return fmt.Errorf("write output: %w", err)
			}
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&n, "n", 1000, "Number of values")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", string(harness.Random), "Value layout: "+patterns)
	cmd.Flags().IntVar(&maxValue, "max", 10000, "Largest generated magnitude")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
