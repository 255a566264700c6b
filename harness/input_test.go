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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"one line", "5 5 3 8 4 2", []int{5, 3, 8, 4, 2}},
		{"count on own line", "3\n1 1 1\n", []int{1, 1, 1}},
		{"one per line", "4\n-1\n0\n7\n2\n", []int{-1, 0, 7, 2}},
		{"mixed whitespace", "  2 \t\n 10\r\n -20  ", []int{10, -20}},
		{"empty sequence", "0\n", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSequence(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadSequenceMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   \n\n"},
		{"count not integer", "five 1 2 3 4 5"},
		{"negative count", "-1 4"},
		{"too few", "4 1 2 3"},
		{"too many", "2 1 2 3"},
		{"value not integer", "3 1 x 3"},
		{"float value", "2 1.5 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSequence(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadSequenceReadError(t *testing.T) {
	_, err := ReadSequence(failingReader{})
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_sort.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n9 -1 4\n"), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{9, -1, 4}, got)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1 2\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), path)
}

func TestWriteSequenceRoundTrip(t *testing.T) {
	for _, data := range [][]int{{}, {42}, {5, -3, 8, 0}} {
		var buf bytes.Buffer
		require.NoError(t, WriteSequence(&buf, data))
		got, err := ReadSequence(&buf)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}
}

func TestWriteSequenceFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSequence(&buf, []int{5, 3, 8}))
	assert.Equal(t, "3\n5 3 8\n", buf.String())
}
