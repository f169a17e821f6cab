// Copyright 2026 The ptop Authors.
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

package cpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtilFractionIgnoresIdleTime(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 800}
	cur := cpuSample{total: 1100, idle: 850}
	require.InDelta(t, 0.5, utilFraction(prev, cur), 1e-9)
}

func TestUtilFractionClampsToZeroOnCounterReset(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 100}
	cur := cpuSample{total: 900, idle: 50}
	require.Zero(t, utilFraction(prev, cur))
}

func TestParseCoreLabel(t *testing.T) {
	core, ok := parseCoreLabel("Core 3")
	require.True(t, ok)
	require.Equal(t, 3, core)

	_, ok = parseCoreLabel("Package id 0")
	require.False(t, ok)
}

func TestReadFreqRangeMHz(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpuinfo_min_freq"), []byte("800000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpuinfo_max_freq"), []byte("4800000\n"), 0o644))

	old := cpufreqRoot
	cpufreqRoot = dir
	defer func() { cpufreqRoot = old }()

	min, max, ok := readFreqRangeMHz()
	require.True(t, ok)
	require.InDelta(t, 800, min, 1e-9)
	require.InDelta(t, 4800, max, 1e-9)
}

func TestReadCoreTempsC(t *testing.T) {
	dir := t.TempDir()
	hwmon0 := filepath.Join(dir, "hwmon0")
	require.NoError(t, os.MkdirAll(hwmon0, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp2_label"), []byte("Core 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp2_input"), []byte("45000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp3_label"), []byte("Core 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp3_input"), []byte("50000\n"), 0o644))

	old := hwmonRoot
	hwmonRoot = dir
	defer func() { hwmonRoot = old }()

	temps, err := readCoreTempsC()
	require.NoError(t, err)
	require.Equal(t, []float64{45, 50}, temps)
}

func TestReadCoreTempsCErrorsWithoutLabels(t *testing.T) {
	dir := t.TempDir()
	old := hwmonRoot
	hwmonRoot = dir
	defer func() { hwmonRoot = old }()

	_, err := readCoreTempsC()
	require.Error(t, err)
}
