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

package harness

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts and durations with thousands separators.
var printer = message.NewPrinter(language.English)

// FormatDuration renders d in unit u. Nanoseconds are whole numbers; larger
// units keep three decimals.
func FormatDuration(d time.Duration, u Unit) string {
	size, ok := u.Duration()
	if !ok {
		u, size = Nanoseconds, time.Nanosecond
	}
	if u == Nanoseconds {
		return printer.Sprintf("%d %s", d.Nanoseconds(), u.Long())
	}
	return printer.Sprintf("%.3f %s", float64(d)/float64(size), u.Long())
}

// FormatSequence renders data as space separated values, truncated after
// maxPrint values when maxPrint > 0.
func FormatSequence(data []int, maxPrint int) string {
	shown := data
	if maxPrint > 0 && len(data) > maxPrint {
		shown = data[:maxPrint]
	}
	var sb strings.Builder
	for i, v := range shown {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	if rest := len(data) - len(shown); rest > 0 {
		printer.Fprintf(&sb, " ... (%d more)", rest)
	}
	return sb.String()
}

// Render writes the report of a single run: the algorithm, the sequence
// before and after sorting, and the time taken by the sort.
func Render(w io.Writer, res Result, cfg Config) error {
	a := res.Algorithm
	_, err := fmt.Fprintf(w,
		"Algorithm: %s (%s, %s, %s)\nUnsorted array: %s\nSorted array: %s\nTime taken: %s\n",
		a.Name, a.Storage, a.Method, stability(a.Stable),
		FormatSequence(res.Input, cfg.MaxPrint),
		FormatSequence(res.Output, cfg.MaxPrint),
		FormatDuration(res.Elapsed, cfg.Unit))
	return err
}

// RenderSummary writes a host line followed by one table row per result, in
// run order.
func RenderSummary(w io.Writer, results []Result, cfg Config) error {
	if _, err := fmt.Fprintf(w, "host: %s\n", DescribeHost()); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tN\tSTORAGE\tMETHOD\tSTABLE\tTIME")
	for _, res := range results {
		a := res.Algorithm
		printer.Fprintf(tw, "%s\t%d\t%s\t%s\t%t\t%s\n",
			a.Name, len(res.Output), a.Storage, a.Method, a.Stable,
			FormatDuration(res.Elapsed, cfg.Unit))
	}
	return tw.Flush()
}

func stability(stable bool) string {
	if stable {
		return "stable"
	}
	return "unstable"
}
