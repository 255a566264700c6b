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

// Package harness loads integer sequences, runs sorting algorithms on them
// with the sort step timed in isolation, and renders the results.
package harness

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvInput    = "SORTBENCH_INPUT"
	EnvUnit     = "SORTBENCH_UNIT"
	EnvMaxPrint = "SORTBENCH_MAX_PRINT"
	EnvVerify   = "SORTBENCH_VERIFY"
	EnvRepeat   = "SORTBENCH_REPEAT"
)

// DefaultInput is the input file used when none is configured.
const DefaultInput = "input_sort.txt"

// Unit is the time unit used to report durations.
type Unit string

const (
	Nanoseconds  Unit = "ns"
	Microseconds Unit = "us"
	Milliseconds Unit = "ms"
	Seconds      Unit = "s"
)

// Duration returns the length of one unit.
func (u Unit) Duration() (time.Duration, bool) {
	switch u {
	case Nanoseconds:
		return time.Nanosecond, true
	case Microseconds:
		return time.Microsecond, true
	case Milliseconds:
		return time.Millisecond, true
	case Seconds:
		return time.Second, true
	default:
		return 0, false
	}
}

// Long returns the spelled out unit name used in reports.
func (u Unit) Long() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	default:
		return string(u)
	}
}

// Config controls how runs are performed and reported.
type Config struct {
	// Input is the path of the sequence file.
	Input string

	// Unit is the unit every elapsed time is reported in.
	Unit Unit

	// MaxPrint limits how many values of a sequence are printed; 0 prints all.
	MaxPrint int

	// Verify checks that every output is sorted after the timed step.
	Verify bool

	// Repeat runs each benchmarked algorithm this many times on fresh copies
	// and keeps the fastest time.
	Repeat int
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Input:  DefaultInput,
		Unit:   Nanoseconds,
		Repeat: 1,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by the SORTBENCH_*
// environment variables. Unparsable values are errors.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvUnit); v != "" {
		cfg.Unit = Unit(v)
	}
	if v := os.Getenv(EnvMaxPrint); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMaxPrint, err)
		}
		cfg.MaxPrint = n
	}
	if v := os.Getenv(EnvVerify); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvVerify, err)
		}
		cfg.Verify = b
	}
	if v := os.Getenv(EnvRepeat); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvRepeat, err)
		}
		cfg.Repeat = n
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := c.Unit.Duration(); !ok {
		return fmt.Errorf("invalid unit %q (want ns, us, ms or s)", c.Unit)
	}
	if c.MaxPrint < 0 {
		return fmt.Errorf("max print must be >= 0, got %d", c.MaxPrint)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be >= 1, got %d", c.Repeat)
	}
	return nil
}
