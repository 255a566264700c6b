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

// Merge sorts data with top-down merge sort.
//
// O(n log n) comparisons for every input. Each merge copies its two halves
// into temporary buffers, so peak extra memory is O(n). Stable: on ties the
// left half wins.
func Merge(data []int) {
	mergeBy(data, identity)
}

func mergeBy[E any](data []E, key func(E) int) {
	mergeSortRange(data, 0, len(data)-1, key)
}

// mergeSortRange sorts the inclusive range data[left..right].
func mergeSortRange[E any](data []E, left, right int, key func(E) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSortRange(data, left, mid, key)
	mergeSortRange(data, mid+1, right, key)
	mergeHalves(data, left, mid, right, key)
}

// mergeHalves merges the sorted ranges data[left..mid] and data[mid+1..right].
func mergeHalves[E any](data []E, left, mid, right int, key func(E) int) {
	lo := make([]E, mid-left+1)
	hi := make([]E, right-mid)
	copy(lo, data[left:mid+1])
	copy(hi, data[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if key(lo[i]) <= key(hi[j]) {
			data[k] = lo[i]
			i++
		} else {
			data[k] = hi[j]
			j++
		}
		k++
	}
	k += copy(data[k:], lo[i:])
	copy(data[k:], hi[j:])
}
