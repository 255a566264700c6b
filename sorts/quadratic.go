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

// identity is the key of a plain int.
func identity(v int) int { return v }

// Bubble sorts data in place with bubble sort.
//
// Every pass walks the unsorted prefix swapping adjacent out-of-order
// elements, so after pass i the i largest values sit at the tail. It always
// makes n-1 passes. Stable, O(n²) comparisons, O(1) extra space.
func Bubble(data []int) {
	bubbleBy(data, identity)
}

func bubbleBy[E any](data []E, key func(E) int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if key(data[j]) > key(data[j+1]) {
				swap(data, j, j+1)
			}
		}
	}
}

// Insertion sorts data in place with insertion sort.
//
// Adaptive: already sorted input costs n-1 comparisons and no shifts.
// Stable, O(n²) worst case, O(1) extra space.
func Insertion(data []int) {
	insertionBy(data, identity)
}

func insertionBy[E any](data []E, key func(E) int) {
	for i := 1; i < len(data); i++ {
		cur := data[i]
		k := key(cur)
		j := i - 1
		for j >= 0 && key(data[j]) > k {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = cur
	}
}

// Selection sorts data in place with selection sort.
//
// It performs exactly n-1 swaps whatever the input order, including
// self-swaps when the minimum is already in position. Not stable: the long
// swap can carry an element past an equal one.
func Selection(data []int) {
	selection(data)
}

// selection is Selection returning the number of swaps made.
func selection(data []int) (swaps int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		swap(data, i, minIdx)
		swaps++
	}
	return swaps
}

func swap[E any](data []E, i, j int) {
	data[i], data[j] = data[j], data[i]
}
