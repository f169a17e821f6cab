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

// Package diskusage analyzes /proc/mounts and statfs(2) space accounting
// for each real mounted filesystem into per-tick telemetry.
package diskusage

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 5 * time.Second
	defaultBudget   = 100 * time.Millisecond
)

var mountsPath = "/proc/mounts"

// pseudoFSTypes is excluded from the mount table since statfs on them is
// meaningless (cgroup, proc, sysfs and friends report either zero or a
// host-wide synthetic size).
var pseudoFSTypes = map[string]bool{
	"proc": true, "sysfs": true, "cgroup": true, "cgroup2": true,
	"devtmpfs": true, "devpts": true, "tmpfs": false, "overlay": false,
	"securityfs": true, "pstore": true, "debugfs": true, "tracefs": true,
	"mqueue": true, "hugetlbfs": true, "bpf": true, "autofs": true,
	"binfmt_misc": true, "configfs": true, "fusectl": true, "nsfs": true,
}

// Analyzer implements analyzer.Analyzer for filesystem space usage.
type Analyzer struct {
	mounts analyzer.Tracker[[]snapshot.MountUsage]

	statfs func(path string, buf *syscall.Statfs_t) error
}

// New constructs a disk usage analyzer reading from /proc/mounts.
func New() *Analyzer {
	return &Analyzer{statfs: syscall.Statfs}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "diskusage" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	entries, err := readMounts()
	return err == nil && len(entries) > 0
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

	entries, err := readMounts()
	if err != nil {
		a.mounts.Failure()
		return fmt.Errorf("read %s: %w", mountsPath, err)
	}

	usages := make([]snapshot.MountUsage, 0, len(entries))
	for _, e := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var stat syscall.Statfs_t
		if err := a.statfs(e.mountPoint, &stat); err != nil {
			continue
		}
		total := stat.Blocks * uint64(stat.Bsize)
		free := stat.Bfree * uint64(stat.Bsize)
		usages = append(usages, snapshot.MountUsage{
			MountPoint: e.mountPoint,
			Device:     e.device,
			FSType:     e.fsType,
			TotalBytes: total,
			UsedBytes:  total - free,
		})
	}
	a.mounts.Success(usages, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Disk.Mounts = a.mounts.Result(time.Now())
}

type mountEntry struct {
	device, mountPoint, fsType string
}

func readMounts() ([]mountEntry, error) {
	raw, err := os.ReadFile(mountsPath)
	if err != nil {
		return nil, err
	}

	var out []mountEntry
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		device, mountPoint, fsType := fields[0], fields[1], fields[2]
		if excluded, known := pseudoFSTypes[fsType]; known && excluded {
			continue
		}
		if !strings.HasPrefix(device, "/dev/") && fsType != "overlay" && fsType != "tmpfs" {
			continue
		}
		out = append(out, mountEntry{device: device, mountPoint: mountPoint, fsType: fsType})
	}
	return out, nil
}
