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
	"math"
	"math/rand/v2"
)

// MaxGenerateValue bounds maxValue so [-maxValue, maxValue] fits in an int.
const MaxGenerateValue = math.MaxInt32

// Pattern selects the shape of generated input.
type Pattern string

const (
	Random   Pattern = "random"
	Sorted   Pattern = "sorted"
	Reversed Pattern = "reversed"
	Equal    Pattern = "equal"

	// Negative draws from [-maxValue, maxValue]; only comparison sorts accept it.
	Negative Pattern = "negative"
)

// Patterns lists every supported pattern.
var Patterns = []Pattern{Random, Sorted, Reversed, Equal, Negative}

// Generate returns n values in [0, maxValue] (or [-maxValue, maxValue] for
// Negative) arranged according to pattern. The same seed yields the same
// sequence.
func Generate(n int, pattern Pattern, maxValue int, seed uint64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("n must be >= 0, got %d", n)
	}
	if maxValue < 0 || maxValue > MaxGenerateValue {
		return nil, fmt.Errorf("max value must be in [0, %d], got %d", MaxGenerateValue, maxValue)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]int, n)

	switch pattern {
	case Random:
		for i := range data {
			data[i] = rng.IntN(maxValue + 1)
		}
	case Negative:
		for i := range data {
			data[i] = rng.IntN(2*maxValue+1) - maxValue
		}
	case Sorted, Reversed:
		// Evenly spread over [0, maxValue].
		for i := range data {
			v := 0
			if n > 1 {
				v = int(float64(i) / float64(n-1) * float64(maxValue))
			}
			if pattern == Reversed {
				data[n-1-i] = v
			} else {
				data[i] = v
			}
		}
	case Equal:
		v := rng.IntN(maxValue + 1)
		for i := range data {
			data[i] = v
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q (want one of %v)", pattern, Patterns)
	}
	return data, nil
}
