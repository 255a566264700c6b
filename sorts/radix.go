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

import "math"

// radixBase is the numeral base of each radix pass; each pass uses exactly
// radixBase buckets.
const radixBase = 10

// Radix sorts non-negative values in data with least-significant-digit radix
// sort in base 10.
//
// One stable counting pass per decimal digit of the maximum value, so time is
// O(d·(n+10)). Stable. Negative values are rejected with ErrValueOutOfRange
// before data is modified.
func Radix(data []int) error {
	maxVal, err := boundedMax(data, math.MaxInt)
	if err != nil {
		return err
	}
	if len(data) <= 1 {
		return nil
	}
	radixBy(data, maxVal, identity)
	return nil
}

// radixBy sorts data by key, where every key is in [0, maxKey].
func radixBy[E any](data []E, maxKey int, key func(E) int) {
	for place := 1; ; place *= radixBase {
		countingSortBy(data, radixBase, func(e E) int {
			return (key(e) / place) % radixBase
		})
		// Stop before place*radixBase passes maxKey (or overflows int).
		if maxKey/place < radixBase {
			return
		}
	}
}
