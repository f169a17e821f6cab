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

// Package memory analyzes /proc/meminfo RAM accounting and memory
// pressure-stall figures into per-tick telemetry. Swap and ZRAM
// telemetry is a separate concern owned by pkg/analyzer/swap.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = time.Second
	defaultBudget   = 50 * time.Millisecond
)

// Analyzer implements analyzer.Analyzer for RAM accounting and memory
// pressure-stall telemetry.
type Analyzer struct {
	fs procfs.FS

	psiMemSome analyzer.Tracker[float64]
	psiMemFull analyzer.Tracker[float64]

	total, used, cached, buffered, free, shared uint64
}

// New constructs a memory analyzer reading from the default procfs mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "memory" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := a.fs.Meminfo()
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

	mi, err := a.fs.Meminfo()
	if err != nil {
		return fmt.Errorf("read /proc/meminfo: %w", err)
	}

	a.total = deref(mi.MemTotal) * 1024
	a.free = deref(mi.MemFree) * 1024
	a.cached = deref(mi.Cached) * 1024
	a.buffered = deref(mi.Buffers) * 1024
	a.shared = deref(mi.Shmem) * 1024
	a.used = a.total - a.free - a.cached - a.buffered

	if dom, err := analyzer.ReadPressure(memoryPressurePath); err == nil {
		a.psiMemSome.Success(dom.Some10, now)
		a.psiMemFull.Success(dom.Full10, now)
	} else {
		a.psiMemSome.Failure()
		a.psiMemFull.Failure()
	}

	return nil
}

var memoryPressurePath = "/proc/pressure/memory"

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	s.Memory.TotalBytes = a.total
	s.Memory.UsedBytes = a.used
	s.Memory.CachedBytes = a.cached
	s.Memory.BufferedBytes = a.buffered
	s.Memory.FreeBytes = a.free
	s.Memory.SharedBytes = a.shared
	s.Memory.PSIMemSome = a.psiMemSome.Result(now)
	s.Memory.PSIMemFull = a.psiMemFull.Result(now)
}

func deref(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}
