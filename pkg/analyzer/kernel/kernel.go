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

// Package kernel reports a handful of sysctl values useful for
// interpreting the PSI and memory panels: how aggressively the kernel
// swaps, whether memory overcommit is restricted, and how much of the
// PID namespace is in use. It is a single-row info panel, not a
// time series.
package kernel

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 10 * time.Second
	defaultBudget   = 10 * time.Millisecond
)

var (
	swappinessPath       = "/proc/sys/vm/swappiness"
	overcommitMemoryPath = "/proc/sys/vm/overcommit_memory"
	pidMaxPath           = "/proc/sys/kernel/pid_max"
)

// Analyzer implements analyzer.Analyzer for the sysctl info panel.
type Analyzer struct {
	tracker analyzer.Tracker[snapshot.KernelInfo]
}

// New constructs a kernel sysctl analyzer.
func New() *Analyzer { return &Analyzer{} }

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "kernel" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := os.Stat(swappinessPath)
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

	swappiness, err := readSysctlInt(swappinessPath)
	if err != nil {
		a.tracker.Failure()
		return fmt.Errorf("read vm.swappiness: %w", err)
	}
	overcommit, err := readSysctlInt(overcommitMemoryPath)
	if err != nil {
		a.tracker.Failure()
		return fmt.Errorf("read vm.overcommit_memory: %w", err)
	}
	pidMax, err := readSysctlInt(pidMaxPath)
	if err != nil {
		a.tracker.Failure()
		return fmt.Errorf("read kernel.pid_max: %w", err)
	}

	a.tracker.Success(snapshot.KernelInfo{
		Swappiness:       swappiness,
		OvercommitMemory: overcommit,
		PIDMax:           pidMax,
	}, time.Now())
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Kernel = a.tracker.Result(time.Now())
}

func readSysctlInt(path string) (int64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
}
