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

// Package psi analyzes the kernel's pressure-stall accounting exposed
// under /proc/pressure. Kernels built without CONFIG_PSI report no such
// directory; the analyzer's Available probe catches that up front so
// its fields stay Pending rather than cycling through failed collects.
package psi

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = time.Second
	defaultBudget   = 20 * time.Millisecond

	pressureRoot = "/proc/pressure"
)

// Analyzer implements analyzer.Analyzer for CPU, memory and IO pressure.
type Analyzer struct {
	cpu analyzer.Tracker[snapshot.PSIDomainStats]
	mem analyzer.Tracker[snapshot.PSIDomainStats]
	io  analyzer.Tracker[snapshot.PSIDomainStats]
}

// New constructs a PSI analyzer.
func New() *Analyzer { return &Analyzer{} }

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "psi" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := os.Stat(pressureRoot)
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

	var firstErr error
	collectOne := func(name string, tr *analyzer.Tracker[snapshot.PSIDomainStats]) {
		dom, err := analyzer.ReadPressure(fmt.Sprintf("%s/%s", pressureRoot, name))
		if err != nil {
			tr.Failure()
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		tr.Success(snapshot.PSIDomainStats{Some10: dom.Some10, Full10: dom.Full10}, now)
	}

	collectOne("cpu", &a.cpu)
	collectOne("memory", &a.mem)
	collectOne("io", &a.io)

	return firstErr
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	s.PSI.CPU = a.cpu.Result(now)
	s.PSI.Memory = a.mem.Result(now)
	s.PSI.IO = a.io.Result(now)
	s.Capabilities.HasPSI = true
}
