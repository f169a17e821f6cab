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

package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadAllSensors(t *testing.T) {
	dir := t.TempDir()
	hwmon0 := filepath.Join(dir, "hwmon0")
	require.NoError(t, os.MkdirAll(hwmon0, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp1_input"), []byte("52000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "temp1_label"), []byte("CPU\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(hwmon0, "fan1_input"), []byte("1200\n"), 0o644))

	old := hwmonRoot
	hwmonRoot = dir
	defer func() { hwmonRoot = old }()

	readings, err := readAllSensors()
	require.NoError(t, err)
	require.Len(t, readings, 2)

	// Inputs are read in sorted path order: fan1_input before temp1_input.
	require.Equal(t, "fan1", readings[0].Label)
	require.Equal(t, "fan", readings[0].Kind)
	require.InDelta(t, 1200, readings[0].Value, 1e-9)

	require.Equal(t, "CPU", readings[1].Label)
	require.Equal(t, "temp", readings[1].Kind)
	require.InDelta(t, 52, readings[1].Value, 1e-9)
}

func TestClassify(t *testing.T) {
	kind, ok := classify("temp2_input")
	require.True(t, ok)
	require.Equal(t, "temp", kind)

	_, ok = classify("curr1_input")
	require.False(t, ok)
}
