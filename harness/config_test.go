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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{EnvInput, EnvUnit, EnvMaxPrint, EnvVerify, EnvRepeat} {
		t.Setenv(k, "")
	}
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvInput, "data.txt")
	t.Setenv(EnvUnit, "ms")
	t.Setenv(EnvMaxPrint, "20")
	t.Setenv(EnvVerify, "true")
	t.Setenv(EnvRepeat, "3")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Input: "data.txt", Unit: Milliseconds, MaxPrint: 20, Verify: true, Repeat: 3}, cfg)
}

func TestConfigFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		EnvMaxPrint: "lots",
		EnvVerify:   "maybe",
		EnvRepeat:   "0",
		EnvUnit:     "fortnights",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := ConfigFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.MaxPrint = -1
	assert.Error(t, cfg.Validate())
}

func TestUnit(t *testing.T) {
	d, ok := Microseconds.Duration()
	assert.True(t, ok)
	assert.Equal(t, time.Microsecond, d)
	assert.Equal(t, "seconds", Seconds.Long())

	_, ok = Unit("h").Duration()
	assert.False(t, ok)
}
