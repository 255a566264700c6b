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

// Quick sorts data in place with quicksort using Lomuto partitioning and the
// last element of each range as pivot.
//
// Average O(n log n). Already sorted, reverse sorted and all-equal inputs
// are the O(n²) worst case for this pivot choice. Not stable.
func Quick(data []int) {
	quickRange(data, 0, len(data)-1)
}

// quickRange sorts the inclusive range data[lo..hi]. It recurses into the
// smaller side and loops on the larger one, keeping the stack O(log n) deep
// even on worst-case input; the partitions produced are unchanged.
func quickRange(data []int, lo, hi int) {
	for lo < hi {
		p := partition(data, lo, hi)
		if p-lo < hi-p {
			quickRange(data, lo, p-1)
			lo = p + 1
		} else {
			quickRange(data, p+1, hi)
			hi = p - 1
		}
	}
}

// partition places data[hi] at its final position within data[lo..hi] and
// returns that position. Values <= pivot end up to its left.
func partition(data []int, lo, hi int) int {
	pivot := data[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if data[j] <= pivot {
			i++
			swap(data, i, j)
		}
	}
	swap(data, i+1, hi)
	return i + 1
}
