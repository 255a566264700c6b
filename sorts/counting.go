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

import "fmt"

// MaxCountingValue is the largest value Counting accepts. The count array
// has one slot per value up to the maximum, so this caps it at 16M slots.
const MaxCountingValue = 1<<24 - 1

// Counting sorts non-negative values in data with counting sort.
//
// The count array has max(data)+1 slots, so time is O(n + k) and extra space
// O(n + k). Stable. Negative values and values above MaxCountingValue are
// rejected with ErrValueOutOfRange before data is modified.
func Counting(data []int) error {
	maxVal, err := boundedMax(data, MaxCountingValue)
	if err != nil {
		return err
	}
	if len(data) <= 1 {
		return nil
	}
	countingSortBy(data, maxVal+1, identity)
	return nil
}

// countingSortBy stably sorts data by key, where key maps every element into
// [0, buckets).
//
// Counts are turned into prefix sums so count[k] is the number of elements
// with key <= k; scanning the input right to left and placing each element at
// count[k]-1 before decrementing keeps equal keys in input order.
func countingSortBy[E any](data []E, buckets int, key func(E) int) {
	count := make([]int, buckets)
	for _, v := range data {
		count[key(v)]++
	}
	for k := 1; k < buckets; k++ {
		count[k] += count[k-1]
	}

	out := make([]E, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		k := key(data[i])
		out[count[k]-1] = data[i]
		count[k]--
	}
	copy(data, out)
}

// boundedMax returns the largest value in data, or an error naming the first
// value outside [0, limit]. It returns 0 for empty data.
func boundedMax(data []int, limit int) (int, error) {
	maxVal := 0
	for i, v := range data {
		if err := checkValue(i, v, limit); err != nil {
			return 0, err
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}

// checkValue reports data[i] = v if it is negative or above limit.
func checkValue(i, v, limit int) error {
	if v < 0 {
		return fmt.Errorf("%w: data[%d] = %d is negative", ErrValueOutOfRange, i, v)
	}
	if v > limit {
		return fmt.Errorf("%w: data[%d] = %d exceeds %d", ErrValueOutOfRange, i, v, limit)
	}
	return nil
}
