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
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/sorts"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageLoad     Stage = "load"
	StageSelect   Stage = "select"
	StageValidate Stage = "validate"
	StageSort     Stage = "sort"
	StageVerify   Stage = "verify"
)

// RunError is returned by Runner methods. It records the failed stage and,
// once one is selected, the algorithm.
type RunError struct {
	Stage     Stage
	Algorithm string
	Err       error
}

func (e *RunError) Error() string {
	if e.Algorithm == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Algorithm, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Result is the outcome of sorting one sequence with one algorithm.
type Result struct {
	Algorithm sorts.Algorithm

	// Input is a copy of the sequence taken before sorting.
	Input []int

	// Output is the caller's sequence after sorting.
	Output []int

	// Elapsed covers the sort call only.
	Elapsed time.Duration
}

// Runner performs timed runs. The zero value is not usable; use NewRunner.
type Runner struct {
	Config Config

	// Now is the clock; tests may replace it.
	Now func() time.Time
}

// NewRunner returns a Runner using the wall clock.
func NewRunner(cfg Config) *Runner {
	return &Runner{Config: cfg, Now: time.Now}
}

// Load reads the configured input file.
func (r *Runner) Load() ([]int, error) {
	data, err := LoadFile(r.Config.Input)
	if err != nil {
		return nil, &RunError{Stage: StageLoad, Err: err}
	}
	return data, nil
}

// Select resolves selectors to algorithms. No selectors selects all of them.
func (r *Runner) Select(selectors ...string) ([]sorts.Algorithm, error) {
	if len(selectors) == 0 {
		return sorts.All(), nil
	}
	algs := make([]sorts.Algorithm, 0, len(selectors))
	for _, sel := range selectors {
		a, err := sorts.Lookup(sel)
		if err != nil {
			return nil, &RunError{Stage: StageSelect, Err: err}
		}
		algs = append(algs, a)
	}
	return algs, nil
}

// Run sorts data in place with a and times only the sort call. Domain checks
// happen first, so a rejected run leaves data untouched.
func (r *Runner) Run(a sorts.Algorithm, data []int) (Result, error) {
	if err := a.Check(data); err != nil {
		return Result{}, &RunError{Stage: StageValidate, Algorithm: a.Name, Err: err}
	}
	res := Result{Algorithm: a, Input: slices.Clone(data), Output: data}

	elapsed, err := r.timeSort(a, data)
	if err != nil {
		return Result{}, &RunError{Stage: StageSort, Algorithm: a.Name, Err: err}
	}
	res.Elapsed = elapsed

	if err := r.verify(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Bench runs every algorithm one after another, each on its own copy of
// data, which is never modified. All algorithms are checked against data
// before the first one runs. With Config.Repeat > 1 each algorithm keeps its
// fastest time.
func (r *Runner) Bench(algs []sorts.Algorithm, data []int) ([]Result, error) {
	for _, a := range algs {
		if err := a.Check(data); err != nil {
			return nil, &RunError{Stage: StageValidate, Algorithm: a.Name, Err: err}
		}
	}

	repeat := max(r.Config.Repeat, 1)
	results := make([]Result, 0, len(algs))
	for _, a := range algs {
		var best Result
		for i := range repeat {
			res, err := r.Run(a, slices.Clone(data))
			if err != nil {
				return results, err
			}
			if i == 0 || res.Elapsed < best.Elapsed {
				best = res
			}
		}
		results = append(results, best)
	}
	return results, nil
}

func (r *Runner) timeSort(a sorts.Algorithm, data []int) (time.Duration, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	err := a.Sort(data)
	elapsed := now().Sub(start)
	return max(elapsed, 0), err
}

func (r *Runner) verify(res Result) error {
	if !r.Config.Verify {
		return nil
	}
	if !sorts.IsSorted(res.Output) {
		return &RunError{Stage: StageVerify, Algorithm: res.Algorithm.Name, Err: fmt.Errorf("output is not sorted")}
	}
	if !samePermutation(res.Input, res.Output) {
		return &RunError{Stage: StageVerify, Algorithm: res.Algorithm.Name, Err: fmt.Errorf("output is not a permutation of the input")}
	}
	return nil
}

// samePermutation reports whether a and b hold the same multiset of values.
func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ca := lo.CountValues(a)
	cb := lo.CountValues(b)
	if len(ca) != len(cb) {
		return false
	}
	for v, n := range ca {
		if cb[v] != n {
			return false
		}
	}
	return true
}
