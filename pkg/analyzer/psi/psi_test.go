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

package psi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

func TestAnalyzerNameAndBudget(t *testing.T) {
	a := New()
	require.Equal(t, "psi", a.Name())
	require.Greater(t, a.LatencyBudget(), time.Duration(0))
}

func TestWriteSnapshotSetsCapability(t *testing.T) {
	a := New()
	s := snapshot.New(time.Now())
	a.WriteSnapshot(s)
	require.True(t, s.Capabilities.HasPSI)
}
