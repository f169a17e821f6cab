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

package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPressureParsesSomeAndFull(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memory")
	content := "some avg10=1.50 avg60=0.80 avg300=0.20 total=123\n" +
		"full avg10=0.75 avg60=0.40 avg300=0.10 total=45\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dom, err := ReadPressure(path)
	require.NoError(t, err)
	require.InDelta(t, 1.50, dom.Some10, 1e-9)
	require.InDelta(t, 0.75, dom.Full10, 1e-9)
}

func TestReadPressureMissingFile(t *testing.T) {
	_, err := ReadPressure(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
