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

// Package process analyzes /proc/<pid>/{stat,status,cgroup} into a
// per-tick process table with CPU percentage derived from consecutive
// utime+stime samples.
package process

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 1500 * time.Millisecond
	defaultBudget   = 150 * time.Millisecond
)

type cpuSample struct {
	ticks uint64
	at    time.Time
}

// Analyzer implements analyzer.Analyzer for the system-wide process
// table.
type Analyzer struct {
	fs procfs.FS

	clockTicksPerSec float64
	prev             map[int]cpuSample

	rows analyzer.Tracker[[]snapshot.Process]
}

// New constructs a process analyzer reading from the default procfs
// mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs, clockTicksPerSec: 100, prev: map[int]cpuSample{}}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "process" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := a.fs.AllProcs()
	return err == nil
}

// Interval implements analyzer.Analyzer.
func (a *Analyzer) Interval() time.Duration { return defaultInterval }

// LatencyBudget implements analyzer.Analyzer.
func (a *Analyzer) LatencyBudget() time.Duration { return defaultBudget }

// Collect implements analyzer.Analyzer.
func (a *Analyzer) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()

	procs, err := a.fs.AllProcs()
	if err != nil {
		a.rows.Failure()
		return fmt.Errorf("enumerate /proc: %w", err)
	}

	seen := make(map[int]cpuSample, len(procs))
	rows := make([]snapshot.Process, 0, len(procs))
	for _, p := range procs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stat, err := p.Stat()
		if err != nil {
			continue // process exited between AllProcs() and Stat(); skip, not an analyzer failure.
		}

		ticks := uint64(stat.UTime + stat.STime)
		sample := cpuSample{ticks: ticks, at: now}
		seen[p.PID] = sample

		cpuPercent := 0.0
		if prev, ok := a.prev[p.PID]; ok {
			cpuPercent = cpuPercentSince(prev, sample, a.clockTicksPerSec)
		}

		var rssBytes uint64
		if st, err := p.NewStatus(); err == nil {
			rssBytes = st.VmRSS
		}
		cgroup := ""
		if cgs, err := p.Cgroups(); err == nil && len(cgs) > 0 {
			cgroup = cgs[0].Path
		}

		rows = append(rows, snapshot.Process{
			PID:            p.PID,
			PPID:           stat.PPID,
			State:          stat.State,
			CPUPercent:     cpuPercent,
			RSSBytes:       rssBytes,
			Command:        stat.Comm,
			Cgroup:         cgroup,
			OOMScore:       readOOMScore(p.PID),
			Nice:           int(stat.Nice),
			Threads:        stat.NumThreads,
			StartTimeTicks: uint64(stat.Starttime),
		})
	}
	a.prev = seen
	a.rows.Success(rows, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Processes = a.rows.Result(time.Now())
}

// cpuPercentSince derives a CPU utilization percentage from two
// utime+stime samples, converting the tick delta to seconds at
// clockTicksPerSec and dividing by the wall time between the samples.
func cpuPercentSince(prev, cur cpuSample, clockTicksPerSec float64) float64 {
	elapsed := cur.at.Sub(prev.at).Seconds()
	if elapsed <= 0 || cur.ticks < prev.ticks {
		return 0
	}
	return float64(cur.ticks-prev.ticks) / clockTicksPerSec / elapsed * 100
}

// readOOMScore reads /proc/<pid>/oom_score directly; procfs does not
// expose it as a typed field, and it is a single integer not worth
// round-tripping through a second Proc lookup.
func readOOMScore(pid int) int {
	b, err := os.ReadFile(fmt.Sprintf("/proc/%d/oom_score", pid))
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0
	}
	return v
}
