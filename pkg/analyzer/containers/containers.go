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

// Package containers resolves each process's owning systemd unit over
// D-Bus, naming container cgroups (docker-<id>.scope, crio-<id>.scope)
// with the unit name systemd itself uses rather than the raw cgroup
// path. It must be registered after pkg/analyzer/process, since it
// annotates the Snapshot.Processes rows that analyzer already produced
// in the same tick, the same ordering dependency pkg/analyzer/entropy
// has on pkg/analyzer/diskio.
package containers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 3 * time.Second
	defaultBudget   = 200 * time.Millisecond
	dialTimeout     = 500 * time.Millisecond
)

// containerCgroupMarkers identifies cgroup paths created by a container
// runtime's systemd cgroup driver, as opposed to a plain user service.
var containerCgroupMarkers = []string{"docker-", "crio-", "containerd-", "cri-containerd-"}

// Analyzer implements analyzer.Analyzer, resolving container unit names
// for the process table over D-Bus.
type Analyzer struct {
	dial func(ctx context.Context) (systemdConn, error)

	resolved    map[int]string // PID -> resolved unit name, cleared each tick
	pendingPIDs []int          // PIDs seen by WriteSnapshot, queued for the next Collect
}

// systemdConn is the subset of *dbus.Conn this analyzer calls, so tests
// can substitute a fake without a running D-Bus daemon.
type systemdConn interface {
	GetUnitNameByPID(ctx context.Context, pid uint32) (string, error)
	Close()
}

// New constructs a containers analyzer dialing the real system D-Bus.
func New() *Analyzer {
	return &Analyzer{
		dial: func(ctx context.Context) (systemdConn, error) {
			return dbus.NewSystemdConnectionContext(ctx)
		},
	}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "containers" }

// Available implements analyzer.Analyzer. A short-lived probe connection
// confirms D-Bus is reachable; containers on a host without systemd (or
// without permission to its bus) simply go unresolved rather than
// flagging as an analyzer failure every tick.
func (a *Analyzer) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	conn, err := a.dial(ctx)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Interval implements analyzer.Analyzer.
func (a *Analyzer) Interval() time.Duration { return defaultInterval }

// LatencyBudget implements analyzer.Analyzer.
func (a *Analyzer) LatencyBudget() time.Duration { return defaultBudget }

// Collect implements analyzer.Analyzer. It takes no snapshot dependency
// directly; the actual resolution happens in WriteSnapshot once the
// process table for this tick exists, but the D-Bus round trips (one
// per distinct PID) are the expensive part and belong under the
// analyzer's own latency budget, so they run here against the PIDs left
// over from the previous tick's WriteSnapshot.
func (a *Analyzer) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(a.pendingPIDs) == 0 {
		return nil
	}

	conn, err := a.dial(ctx)
	if err != nil {
		return fmt.Errorf("dial systemd D-Bus: %w", err)
	}
	defer conn.Close()

	resolved := make(map[int]string, len(a.pendingPIDs))
	for _, pid := range a.pendingPIDs {
		unit, err := conn.GetUnitNameByPID(ctx, uint32(pid))
		if err != nil {
			continue
		}
		if isContainerUnit(unit) {
			resolved[pid] = unit
		}
	}
	a.resolved = resolved
	a.pendingPIDs = nil
	return nil
}

func isContainerUnit(unit string) bool {
	for _, marker := range containerCgroupMarkers {
		if strings.Contains(unit, marker) {
			return true
		}
	}
	return false
}

// WriteSnapshot implements analyzer.Analyzer. It overwrites Process.Cgroup
// with the resolved systemd unit name for any PID this analyzer has
// already looked up, and records every currently-known PID so the next
// Collect call resolves them.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Processes = snapshot.Map(s.Processes, func(rows []snapshot.Process) []snapshot.Process {
		pids := make([]int, 0, len(rows))
		for i := range rows {
			pids = append(pids, rows[i].PID)
			if unit, ok := a.resolved[rows[i].PID]; ok {
				rows[i].Cgroup = unit
			}
		}
		a.pendingPIDs = pids
		return rows
	})
}
