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
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/sorts"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func mustLookup(t *testing.T, name string) sorts.Algorithm {
	t.Helper()
	a, err := sorts.Lookup(name)
	require.NoError(t, err)
	return a
}

func TestRunEveryAlgorithm(t *testing.T) {
	r := NewRunner(DefaultConfig())
	for _, a := range sorts.All() {
		data := []int{5, 3, 8, 4, 2}
		res, err := r.Run(a, data)
		require.NoError(t, err, a.Name)
		assert.Equal(t, []int{5, 3, 8, 4, 2}, res.Input, a.Name)
		assert.Equal(t, []int{2, 3, 4, 5, 8}, res.Output, a.Name)
		assert.Equal(t, []int{2, 3, 4, 5, 8}, data, "%s sorts the caller's slice", a.Name)
		assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
	}
}

func TestRunTimesOnlySort(t *testing.T) {
	r := NewRunner(DefaultConfig())
	r.Now = fakeClock(7 * time.Millisecond)

	res, err := r.Run(mustLookup(t, "quick"), []int{9, 8, 7, 6, 5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 7*time.Millisecond, res.Elapsed)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, res.Output)
}

func TestRunRejectsNegativeForDistributionSorts(t *testing.T) {
	r := NewRunner(DefaultConfig())
	for _, name := range []string{"counting", "radix"} {
		data := []int{3, -1, 2}
		_, err := r.Run(mustLookup(t, name), data)
		require.Error(t, err)
		assert.ErrorIs(t, err, sorts.ErrValueOutOfRange)

		var runErr *RunError
		require.True(t, errors.As(err, &runErr))
		assert.Equal(t, StageValidate, runErr.Stage)
		assert.Equal(t, name, runErr.Algorithm)
		assert.Equal(t, []int{3, -1, 2}, data, "input must not be mutated")
	}
}

func TestRunRejectsCountingRangeOverflow(t *testing.T) {
	r := NewRunner(DefaultConfig())
	data := []int{1, math.MaxInt}
	_, err := r.Run(mustLookup(t, "counting"), data)
	require.Error(t, err)
	assert.ErrorIs(t, err, sorts.ErrValueOutOfRange)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, StageValidate, runErr.Stage)
	assert.Equal(t, []int{1, math.MaxInt}, data)

	res, err := r.Run(mustLookup(t, "radix"), data)
	require.NoError(t, err)
	assert.Equal(t, []int{1, math.MaxInt}, res.Output)
}

func TestRunVerify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify = true
	r := NewRunner(cfg)
	res, err := r.Run(mustLookup(t, "heap"), []int{4, 1, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3, 4}, res.Output)
}

func TestSamePermutation(t *testing.T) {
	assert.True(t, samePermutation([]int{1, 2, 2}, []int{2, 1, 2}))
	assert.False(t, samePermutation([]int{1, 2, 2}, []int{1, 1, 2}))
	assert.False(t, samePermutation([]int{1}, []int{1, 1}))
	assert.True(t, samePermutation(nil, []int{}))
}

func TestBench(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repeat = 3
	r := NewRunner(cfg)
	r.Now = fakeClock(time.Microsecond)

	data := []int{170, 45, 75, 90, 802, 24, 2, 66}
	results, err := r.Bench(sorts.All(), data)
	require.NoError(t, err)
	require.Len(t, results, 9)

	assert.Equal(t, []int{170, 45, 75, 90, 802, 24, 2, 66}, data, "bench must not mutate its input")
	for i, res := range results {
		assert.Equal(t, sorts.Names()[i], res.Algorithm.Name, "results stay in run order")
		assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, res.Output)
		assert.Equal(t, data, res.Input)
		assert.Equal(t, time.Microsecond, res.Elapsed)
	}
}

func TestBenchValidatesBeforeRunning(t *testing.T) {
	r := NewRunner(DefaultConfig())
	calls := 0
	r.Now = func() time.Time {
		calls++
		return time.Unix(0, 0)
	}

	_, err := r.Bench(sorts.All(), []int{1, -5, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, sorts.ErrValueOutOfRange)
	assert.Zero(t, calls, "no algorithm should run once validation fails")
}

func TestSelect(t *testing.T) {
	r := NewRunner(DefaultConfig())

	all, err := r.Select()
	require.NoError(t, err)
	assert.Len(t, all, 9)

	algs, err := r.Select("merge", "2")
	require.NoError(t, err)
	require.Len(t, algs, 2)
	assert.Equal(t, "merge", algs[0].Name)
	assert.Equal(t, "insertion", algs[1].Name)

	_, err = r.Select("quick", "bogo")
	assert.ErrorIs(t, err, sorts.ErrUnknownAlgorithm)
	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, StageSelect, runErr.Stage)
}

func TestLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
	_, err := NewRunner(cfg).Load()
	assert.ErrorIs(t, err, ErrInputUnavailable)
	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, StageLoad, runErr.Stage)
	assert.Contains(t, err.Error(), "load:")

	cfg.Input = filepath.Join(t.TempDir(), "input_sort.txt")
	require.NoError(t, os.WriteFile(cfg.Input, []byte("2\n2 1\n"), 0o644))
	data, err := NewRunner(cfg).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, data)
}

func TestRunErrorMessage(t *testing.T) {
	err := &RunError{Stage: StageValidate, Algorithm: "radix", Err: sorts.ErrValueOutOfRange}
	assert.Equal(t, "validate radix: value out of range", err.Error())
}
