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

package sorts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Storage tells whether an algorithm sorts within the input slice or needs
// auxiliary storage proportional to the input.
type Storage int

const (
	// InPlace algorithms use O(1) or O(log n) extra space.
	InPlace Storage = iota

	// Auxiliary algorithms allocate buffers proportional to the input size
	// (or, for counting sort, to the value range).
	Auxiliary
)

// String returns a human-readable name for the storage class.
func (s Storage) String() string {
	switch s {
	case InPlace:
		return "in-place"
	case Auxiliary:
		return "auxiliary"
	default:
		return "unknown"
	}
}

// Method tells how an algorithm orders elements.
type Method int

const (
	// Comparison algorithms only compare pairs of elements.
	Comparison Method = iota

	// Distribution algorithms bucket elements by value and only accept
	// non-negative input.
	Distribution
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case Comparison:
		return "comparison"
	case Distribution:
		return "distribution"
	default:
		return "unknown"
	}
}

// Complexity records the asymptotic costs of an algorithm.
type Complexity struct {
	Best    string
	Average string
	Worst   string
	Space   string
}

// Algorithm describes one sorting algorithm. The descriptive fields are
// metadata only; Sort runs the algorithm itself.
type Algorithm struct {
	Name       string
	Storage    Storage
	Method     Method
	Stable     bool
	Complexity Complexity

	// MaxValue is the largest value a distribution sort accepts.
	MaxValue int

	sort func([]int) error
}

// Sort sorts data ascending. Only distribution sorts can fail, and they fail
// before data is modified.
func (a Algorithm) Sort(data []int) error {
	if a.sort == nil {
		return fmt.Errorf("%w: %q has no implementation", ErrUnknownAlgorithm, a.Name)
	}
	return a.sort(data)
}

// Check reports whether data is within the algorithm's input domain without
// modifying it. Distribution sorts reject values outside [0, MaxValue] with
// ErrValueOutOfRange; everything else accepts any input.
func (a Algorithm) Check(data []int) error {
	if a.Method != Distribution {
		return nil
	}
	limit := a.MaxValue
	if limit <= 0 {
		limit = math.MaxInt
	}
	if v, i, found := lo.FindIndexOf(data, func(v int) bool { return v < 0 || v > limit }); found {
		return fmt.Errorf("%s sort: %w", a.Name, checkValue(i, v, limit))
	}
	return nil
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return a.Name
}

func comparison(fn func([]int)) func([]int) error {
	return func(data []int) error {
		fn(data)
		return nil
	}
}

var registry = []Algorithm{
	{
		Name: "bubble", Storage: InPlace, Method: Comparison, Stable: true,
		Complexity: Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		sort:       comparison(Bubble),
	},
	{
		Name: "insertion", Storage: InPlace, Method: Comparison, Stable: true,
		Complexity: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		sort:       comparison(Insertion),
	},
	{
		Name: "selection", Storage: InPlace, Method: Comparison, Stable: false,
		Complexity: Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		sort:       comparison(Selection),
	},
	{
		Name: "shell", Storage: InPlace, Method: Comparison, Stable: false,
		Complexity: Complexity{Best: "O(n log n)", Average: "depends on gaps", Worst: "O(n²)", Space: "O(1)"},
		sort:       comparison(Shell),
	},
	{
		Name: "merge", Storage: Auxiliary, Method: Comparison, Stable: true,
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
		sort:       comparison(Merge),
	},
	{
		Name: "quick", Storage: InPlace, Method: Comparison, Stable: false,
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
		sort:       comparison(Quick),
	},
	{
		Name: "heap", Storage: InPlace, Method: Comparison, Stable: false,
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
		sort:       comparison(Heap),
	},
	{
		Name: "counting", Storage: Auxiliary, Method: Distribution, Stable: true,
		Complexity: Complexity{Best: "O(n+k)", Average: "O(n+k)", Worst: "O(n+k)", Space: "O(n+k)"},
		MaxValue:   MaxCountingValue,
		sort:       Counting,
	},
	{
		Name: "radix", Storage: Auxiliary, Method: Distribution, Stable: true,
		Complexity: Complexity{Best: "O(d·(n+10))", Average: "O(d·(n+10))", Worst: "O(d·(n+10))", Space: "O(n)"},
		MaxValue:   math.MaxInt,
		sort:       Radix,
	},
}

// All returns every algorithm in canonical order: bubble, insertion,
// selection, shell, merge, quick, heap, counting, radix.
func All() []Algorithm {
	return append([]Algorithm(nil), registry...)
}

// Names returns the algorithm names in canonical order.
func Names() []string {
	return lo.Map(registry, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup selects an algorithm by name or by 1-based position in All.
//
// Names match case-insensitively and may carry a "sort" suffix, so "Quick",
// "quick-sort" and "quick_sort" all select quicksort. Unknown selectors fail
// with ErrUnknownAlgorithm.
func Lookup(selector string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(selector))
	if idx, err := strconv.Atoi(s); err == nil {
		if idx >= 1 && idx <= len(registry) {
			return registry[idx-1], nil
		}
		return Algorithm{}, fmt.Errorf("%w: index %d not in [1, %d]", ErrUnknownAlgorithm, idx, len(registry))
	}

	for _, suffix := range []string{"-sort", "_sort", " sort", "sort"} {
		if trimmed, ok := strings.CutSuffix(s, suffix); ok && trimmed != "" {
			s = trimmed
			break
		}
	}
	if a, ok := lo.Find(registry, func(a Algorithm) bool { return a.Name == s }); ok {
		return a, nil
	}
	return Algorithm{}, fmt.Errorf("%w: %q (want one of %s)",
		ErrUnknownAlgorithm, selector, strings.Join(Names(), ", "))
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
