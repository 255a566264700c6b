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
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Host describes the machine timings were taken on.
type Host struct {
	OS       string
	Arch     string
	CPUs     int
	Features []string
}

// DescribeHost reports the platform and the CPU features that matter when
// comparing timings across machines.
func DescribeHost() Host {
	h := Host{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
		CPUs: runtime.NumCPU(),
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		h.Features = features(map[string]bool{
			"avx":     cpu.X86.HasAVX,
			"avx2":    cpu.X86.HasAVX2,
			"avx512f": cpu.X86.HasAVX512F,
			"bmi2":    cpu.X86.HasBMI2,
			"popcnt":  cpu.X86.HasPOPCNT,
		}, "avx", "avx2", "avx512f", "bmi2", "popcnt")
	case "arm64":
		h.Features = features(map[string]bool{
			"asimd": cpu.ARM64.HasASIMD,
			"sve":   cpu.ARM64.HasSVE,
			"sve2":  cpu.ARM64.HasSVE2,
			"crc32": cpu.ARM64.HasCRC32,
		}, "asimd", "sve", "sve2", "crc32")
	}
	return h
}

// features lists the names in order whose flag is set.
func features(flags map[string]bool, order ...string) []string {
	var out []string
	for _, name := range order {
		if flags[name] {
			out = append(out, name)
		}
	}
	return out
}

func (h Host) String() string {
	s := fmt.Sprintf("%s/%s, %d cpus", h.OS, h.Arch, h.CPUs)
	if len(h.Features) > 0 {
		s += ", " + strings.Join(h.Features, " ")
	}
	return s
}
