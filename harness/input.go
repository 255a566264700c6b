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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrInputUnavailable is returned when the input cannot be opened or read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrMalformedInput is returned when the input is not a count followed by
	// exactly that many integers.
	ErrMalformedInput = errors.New("malformed input")
)

// LoadFile reads a sequence from the file at path. See ReadSequence for the
// format.
func LoadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	data, err := ReadSequence(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// ReadSequence parses a count n followed by exactly n integers. Tokens may be
// separated by any whitespace, including newlines.
func ReadSequence(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
		}
		return nil, fmt.Errorf("%w: missing element count", ErrMalformedInput)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: element count %q is not an integer", ErrMalformedInput, sc.Text())
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrMalformedInput, n)
	}

	// Cap the preallocation so a bogus count cannot exhaust memory up front.
	data := make([]int, 0, min(n, 1<<20))
	for sc.Scan() {
		tok := sc.Text()
		if len(data) == n {
			return nil, fmt.Errorf("%w: declared %d values but found more (next token %q)", ErrMalformedInput, n, tok)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %q is not an integer", ErrMalformedInput, len(data)+1, tok)
		}
		data = append(data, v)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: declared %d values but found %d", ErrMalformedInput, n, len(data))
	}
	return data, nil
}

// WriteSequence writes data in the format ReadSequence accepts: the count on
// its own line, then the values separated by spaces.
func WriteSequence(w io.Writer, data []int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(data)))
	bw.WriteByte('\n')
	for i, v := range data {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	if len(data) > 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
