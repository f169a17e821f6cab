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

// Package entropy analyzes the kernel's random entropy pool occupancy
// from /proc/sys/kernel/random/entropy_avail. The pool is system-wide,
// not per block device, so the estimate is annotated onto every disk I/O
// row rather than given its own Snapshot field; the analyzer therefore
// must be registered after pkg/analyzer/diskio so DiskIO rows already
// exist by the time it runs in the same tick.
package entropy

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
	defaultInterval = 2 * time.Second
	defaultBudget   = 10 * time.Millisecond

	// poolMaxBits is the size of the Linux entropy pool on every kernel
	// since 2.6; entropy_avail never exceeds it.
	poolMaxBits = 4096
)

var entropyAvailPath = "/proc/sys/kernel/random/entropy_avail"

// Analyzer implements analyzer.Analyzer for entropy pool occupancy.
type Analyzer struct {
	ratio analyzer.Tracker[float64]
}

// New constructs an entropy pool analyzer.
func New() *Analyzer { return &Analyzer{} }

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "entropy" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := os.Stat(entropyAvailPath)
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
	b, err := os.ReadFile(entropyAvailPath)
	if err != nil {
		a.ratio.Failure()
		return fmt.Errorf("read %s: %w", entropyAvailPath, err)
	}
	bits, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		a.ratio.Failure()
		return fmt.Errorf("parse %s: %w", entropyAvailPath, err)
	}
	a.ratio.Success(float64(bits)/poolMaxBits, time.Now())
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	ratio := a.ratio.Result(time.Now())
	s.Disk.IO = snapshot.Map(s.Disk.IO, func(rows []snapshot.DiskIO) []snapshot.DiskIO {
		for i := range rows {
			rows[i].EntropyEst = ratio
		}
		return rows
	})
}
