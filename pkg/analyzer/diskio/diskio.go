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

// Package diskio analyzes /proc/diskstats counters into per-device
// read/write throughput and IOPS rates. The EntropyEst field of each row
// is filled in afterwards by pkg/analyzer/entropy, not here.
package diskio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = time.Second
	defaultBudget   = 50 * time.Millisecond

	sectorSize = 512
)

type counterSample struct {
	readSectors, writeSectors uint64
	readOps, writeOps         uint64
	at                        time.Time
}

// Analyzer implements analyzer.Analyzer for block device I/O rates.
type Analyzer struct {
	fs procfs.FS

	prev map[string]counterSample

	io analyzer.Tracker[[]snapshot.DiskIO]
}

// New constructs a disk I/O analyzer reading from the default procfs
// mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs, prev: map[string]counterSample{}}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "diskio" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := a.fs.ProcDiskstats()
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

	stats, err := a.fs.ProcDiskstats()
	if err != nil {
		a.io.Failure()
		return fmt.Errorf("read /proc/diskstats: %w", err)
	}

	out := make([]snapshot.DiskIO, 0, len(stats))
	for _, d := range stats {
		if isPartitionOrVirtual(d.DeviceName) {
			continue
		}
		sample := counterSample{
			readSectors:  d.ReadSectors,
			writeSectors: d.WriteSectors,
			readOps:      d.ReadIOs,
			writeOps:     d.WriteIOs,
			at:           now,
		}
		prev, ok := a.prev[d.DeviceName]
		a.prev[d.DeviceName] = sample
		if !ok {
			continue
		}
		elapsed := sample.at.Sub(prev.at).Seconds()
		if elapsed <= 0 {
			continue
		}
		out = append(out, snapshot.DiskIO{
			Device:       d.DeviceName,
			ReadBytesPS:  float64(sample.readSectors-prev.readSectors) * sectorSize / elapsed,
			WriteBytesPS: float64(sample.writeSectors-prev.writeSectors) * sectorSize / elapsed,
			ReadOpsPS:    float64(sample.readOps-prev.readOps) / elapsed,
			WriteOpsPS:   float64(sample.writeOps-prev.writeOps) / elapsed,
		})
	}
	a.io.Success(out, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Disk.IO = a.io.Result(time.Now())
}

// isPartitionOrVirtual reports whether name looks like a partition (e.g.
// sda1, nvme0n1p2) or a virtual/loop device, both of which would double
// count the whole-device rate already reported for their parent.
func isPartitionOrVirtual(name string) bool {
	if strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram") || strings.HasPrefix(name, "dm-") {
		return true
	}
	if strings.HasPrefix(name, "nvme") {
		return strings.Contains(name, "p")
	}
	// sdXN / vdXN / hdXN: trailing digit on a non-nvme device name.
	if len(name) > 0 {
		last := name[len(name)-1]
		return last >= '0' && last <= '9'
	}
	return false
}
