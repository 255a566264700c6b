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

// Shell sorts data in place with Shell's original gap sequence
// ⌊n/2⌋, ⌊n/4⌋, ..., 1.
//
// Each gap runs an insertion sort over the elements gap apart; the last pass
// (gap 1) is a plain insertion sort over nearly ordered data. With halving
// gaps the worst case is O(n²). Not stable.
func Shell(data []int) {
	n := len(data)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := data[i]
			j := i
			for j >= gap && data[j-gap] > v {
				data[j] = data[j-gap]
				j -= gap
			}
			data[j] = v
		}
	}
}
