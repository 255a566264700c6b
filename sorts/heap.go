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
// Heap sorts data in place with heapsort.
//
// data[:end] is kept as a max-heap (every parent >= both of its children)
// while data[end:] holds the largest values in their final order. Each step
// moves the root to end-1 and shrinks the heap by one. O(n log n) in every
// case, O(1) extra space, not stable.
func Heap(data []int) {
	n := len(data)

	// Every index past n/2-1 is a leaf, so it already is a valid heap.
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(data, root, n)
	}
	for end := n - 1; end > 0; end-- {
		swap(data, 0, end)
		siftDown(data, 0, end)
	}
}

// siftDown pushes data[root] down the heap data[:bound] until it is no smaller
// than either child. It assumes both child subtrees are already heaps and
// never reads at or past bound, where extracted maxima live.
func siftDown(data []int, root, bound int) {
	for {
		child := 2*root + 1
		if child >= bound {
			return
		}
		// Prefer the right child only when strictly larger.
		if right := child + 1; right < bound && data[right] > data[child] {
			child = right
		}
		if data[root] >= data[child] {
			return
		}
		swap(data, root, child)
		root = child
	}
}
