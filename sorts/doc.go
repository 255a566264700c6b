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

// Package sorts provides classical in-memory sorting algorithms over []int
// behind one execution contract.
//
// # Algorithms
//
// Comparison sorts:
//   - Bubble, Insertion, Selection: O(n²), in-place
//   - Shell: halving gap sequence, O(n²) worst case, in-place
//   - Merge: O(n log n), stable, O(n) auxiliary buffers
//   - Quick: Lomuto partition with the last element as pivot, O(n²) worst case
//   - Heap: O(n log n), in-place, not stable
//
// Distribution sorts (non-negative values only):
//   - Counting: O(n + k) where k is the maximum value + 1
//   - Radix: LSD base 10, one stable counting pass per digit place
//
// Counting and Radix reject negative input with ErrValueOutOfRange before
// touching the slice.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sorts"
//
//	func Process(data []int) error {
//	    a, err := sorts.Lookup("radix")
//	    if err != nil {
//	        return err
//	    }
//	    return a.Sort(data)
//	}
//
// All algorithms are stateless; concurrent calls on distinct slices are safe.
package sorts
