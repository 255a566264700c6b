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

// Command sortbench runs classical sorting algorithms on an integer sequence
// and reports the sorted result and the time taken by the sort alone.
//
// Usage:
//
//	sortbench list
//	sortbench run quick -i input_sort.txt
//	sortbench bench --repeat 5 --unit us
//	sortbench bench merge heap radix
//	sortbench gen --n 10000 --pattern reversed -o input_sort.txt
//
// The input file holds an element count followed by that many integers,
// separated by spaces or newlines. Defaults come from the SORTBENCH_INPUT,
// SORTBENCH_UNIT, SORTBENCH_MAX_PRINT, SORTBENCH_VERIFY and SORTBENCH_REPEAT
// environment variables; flags override them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/harness"
)

func main() {
	cfg, err := harness.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with flag defaults taken from cfg.
func newRootCmd(cfg harness.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Run and time classical sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress to stderr")

	root.AddCommand(
		newListCmd(),
		newRunCmd(&cfg, &verbose),
		newBenchCmd(&cfg, &verbose),
		newGenCmd(),
	)
	return root
}
