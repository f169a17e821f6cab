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

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

func sampleProcesses() []snapshot.Process {
	return []snapshot.Process{
		{PID: 1, PPID: 0, Command: "init", CPUPercent: 0.1, RSSBytes: 1000},
		{PID: 2, PPID: 1, Command: "sshd", CPUPercent: 5.0, RSSBytes: 4000},
		{PID: 3, PPID: 2, Command: "bash", CPUPercent: 1.0, RSSBytes: 2000},
		{PID: 4, PPID: 1, Command: "nginx", CPUPercent: 10.0, RSSBytes: 8000},
	}
}

func TestFilterProcessesCaseInsensitiveSubstring(t *testing.T) {
	rows := FilterProcesses(sampleProcesses(), "SSH")
	require.Len(t, rows, 1)
	require.Equal(t, "sshd", rows[0].Command)
}

func TestFilterProcessesEmptyKeepsAll(t *testing.T) {
	rows := FilterProcesses(sampleProcesses(), "")
	require.Len(t, rows, 4)
}

func TestSortProcessesByCPUDescending(t *testing.T) {
	rows := SortProcesses(sampleProcesses(), SortByCPU, true)
	require.Equal(t, "nginx", rows[0].Command)
	require.Equal(t, "init", rows[len(rows)-1].Command)
}

func TestSortProcessesByPIDAscending(t *testing.T) {
	rows := SortProcesses(sampleProcesses(), SortByPID, false)
	require.Equal(t, 1, rows[0].PID)
	require.Equal(t, 4, rows[len(rows)-1].PID)
}

func TestSortKeyNextWrapsAround(t *testing.T) {
	k := SortByCommand
	require.Equal(t, SortByCPU, k.Next())
}

func TestBuildTreeGroupsByPPID(t *testing.T) {
	nodes := BuildTree(sampleProcesses(), SortByPID, false)
	require.Len(t, nodes, 1)
	require.Equal(t, 1, nodes[0].Process.PID)
	require.Len(t, nodes[0].Children, 2) // sshd and nginx
}

func TestFlattenIsDepthFirstParentBeforeChildren(t *testing.T) {
	nodes := BuildTree(sampleProcesses(), SortByPID, false)
	flat := Flatten(nodes)
	require.Equal(t, []int{1, 2, 3, 4}, []int{
		flat[0].Process.PID, flat[1].Process.PID, flat[2].Process.PID, flat[3].Process.PID,
	})
}

func TestBuildTreeSelfParentedTreatedAsRoot(t *testing.T) {
	rows := []snapshot.Process{{PID: 0, PPID: 0, Command: "kthreadd"}}
	nodes := BuildTree(rows, SortByPID, false)
	require.Len(t, nodes, 1)
}
