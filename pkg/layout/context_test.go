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

package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

func TestStateUnknownFieldDefaultsToPending(t *testing.T) {
	ctx := DataContext{Snapshot: snapshot.New(time.Now())}
	require.Equal(t, snapshot.Pending, ctx.state("nonexistent"))
}

func TestStateNilSnapshotDefaultsToPending(t *testing.T) {
	ctx := DataContext{}
	require.Equal(t, snapshot.Pending, ctx.state("cpu"))
}

func TestPSIWorstStatePicksWorstOfThree(t *testing.T) {
	p := snapshot.PSI{
		CPU:    snapshot.ResultReady(snapshot.PSIDomainStats{}),
		Memory: snapshot.ResultError[snapshot.PSIDomainStats](nil),
		IO:     snapshot.ResultReady(snapshot.PSIDomainStats{}),
	}
	require.Equal(t, snapshot.Error, psiWorstState(p))
}

func TestCapabilityLookup(t *testing.T) {
	ctx := DataContext{Capabilities: snapshot.Capabilities{HasPSI: true}}
	require.True(t, ctx.capability("has_psi"))
	require.False(t, ctx.capability("has_nvidia"))
	require.False(t, ctx.capability("unknown"))
}
