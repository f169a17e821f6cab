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

// Package layout implements ptop's adaptive panel grid and the
// declarative per-panel display-rule evaluator. Rule expressions are
// deliberately restricted to a small predicate grammar rather than a
// general-purpose expression language: the data context they read is
// a handful of enum-like fields, evaluation must stay under a
// millisecond per frame, and a hand-rolled parser keeps the whole
// evaluator auditable in one file instead of pulling in an
// expression-language dependency to cover a half-dozen comparisons.
package layout

import (
	"github.com/ptop-project/ptop/pkg/snapshot"
)

// DataContext is the read-only view display rules evaluate against:
// the current snapshot's PartialResult states, detected capabilities,
// and terminal geometry. Rule expressions never see snapshot values
// themselves, only the states and capability flags named here.
type DataContext struct {
	Snapshot     *snapshot.Snapshot
	Capabilities snapshot.Capabilities
	TermWidth    int
	TermHeight   int
}

// state looks up the named PartialResult's State() for use by `data.X
// == Pending`-style predicates. Unknown names resolve to Pending so a
// typo'd field hides its panel rather than crashing the renderer.
func (d DataContext) state(field string) snapshot.State {
	if d.Snapshot == nil {
		return snapshot.Pending
	}
	s := d.Snapshot
	switch field {
	case "cpu":
		return s.CPU.TotalUtilization.State()
	case "memory":
		if s.Memory.TotalBytes == 0 {
			return snapshot.Pending
		}
		return snapshot.Ready
	case "disk_mounts":
		return s.Disk.Mounts.State()
	case "disk_io":
		return s.Disk.IO.State()
	case "network":
		return s.Network.Interfaces.State()
	case "connections":
		return s.Connections.State()
	case "processes":
		return s.Processes.State()
	case "gpus":
		return s.GPUs.State()
	case "sensors":
		return s.Sensors.State()
	case "psi":
		return psiWorstState(s.PSI)
	case "battery":
		return s.Battery.State()
	case "treemap":
		return s.Treemap.Entries.State()
	case "kernel":
		return s.Kernel.State()
	default:
		return snapshot.Pending
	}
}

func psiWorstState(p snapshot.PSI) snapshot.State {
	worst := snapshot.Ready
	for _, st := range []snapshot.State{p.CPU.State(), p.Memory.State(), p.IO.State()} {
		if rank(st) > rank(worst) {
			worst = st
		}
	}
	return worst
}

func rank(s snapshot.State) int {
	switch s {
	case snapshot.Ready:
		return 0
	case snapshot.Stale:
		return 1
	case snapshot.Error:
		return 2
	case snapshot.Pending:
		return 3
	default:
		return 3
	}
}

func (d DataContext) capability(name string) bool {
	switch name {
	case "has_nvidia":
		return d.Capabilities.HasNvidia
	case "has_amd_gpu":
		return d.Capabilities.HasAMDGPU
	case "has_psi":
		return d.Capabilities.HasPSI
	case "has_battery":
		return d.Capabilities.HasBattery
	case "has_sensors":
		return d.Capabilities.HasSensors
	default:
		return false
	}
}
