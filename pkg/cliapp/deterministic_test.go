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

package cliapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

func TestDeterministicSnapshotIsReproducible(t *testing.T) {
	a := deterministicSnapshot()
	b := deterministicSnapshot()
	require.Equal(t, a.SeqID, b.SeqID)
	require.Equal(t, a.ProducedAt, b.ProducedAt)
	assert.Equal(t, a.CPU.TotalUtilization.UnwrapOr(-1), b.CPU.TotalUtilization.UnwrapOr(-1))
}

func TestDeterministicSnapshotHasNoWallClockTimestamp(t *testing.T) {
	s := deterministicSnapshot()
	assert.Equal(t, time.Unix(0, 0).UTC(), s.ProducedAt)
}

func TestDeterministicSnapshotCPUFieldsInUnitRange(t *testing.T) {
	s := deterministicSnapshot()
	total := s.CPU.TotalUtilization.UnwrapOr(-1)
	require.GreaterOrEqual(t, total, 0.0)
	require.LessOrEqual(t, total, 1.0)

	perCore := s.CPU.PerCore.UnwrapOr(nil)
	require.Len(t, perCore, 8)
	for _, c := range perCore {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
	assert.Equal(t, 8, s.CPU.NumCores)
}

func TestDeterministicSnapshotMemoryIsInternallyConsistent(t *testing.T) {
	s := deterministicSnapshot()
	assert.Less(t, s.Memory.UsedBytes, s.Memory.TotalBytes)
	assert.Greater(t, s.Memory.TotalBytes, uint64(0))
}

func TestDeterministicProcessesIncludePID1(t *testing.T) {
	procs := deterministicProcesses()
	require.NotEmpty(t, procs)
	var sawInit bool
	for _, p := range procs {
		if p.PID == 1 {
			sawInit = true
			assert.Equal(t, "init", p.Command)
			assert.Equal(t, 0, p.PPID)
		}
	}
	assert.True(t, sawInit)
}

func TestDeterministicSnapshotNetworkInterfacePresent(t *testing.T) {
	s := deterministicSnapshot()
	ifaces := s.Network.Interfaces.UnwrapOr(nil)
	require.Len(t, ifaces, 1)
	assert.Equal(t, "eth0", ifaces[0].Name)
}

func TestDeterministicSnapshotKernelInfoReady(t *testing.T) {
	s := deterministicSnapshot()
	info := s.Kernel.UnwrapOr(snapshot.KernelInfo{})
	assert.Equal(t, int64(60), info.Swappiness)
	assert.Equal(t, int64(32768), info.PIDMax)
}
