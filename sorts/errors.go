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

import "errors"

var (
	// ErrValueOutOfRange is returned when a distribution sort is given a
	// negative value.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnknownAlgorithm is returned by Lookup for a selector that names no
	// algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
