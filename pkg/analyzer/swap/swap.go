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

// Package swap analyzes swap space usage, swap-in/out activity and ZRAM
// compression ratio into per-tick telemetry.
package swap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = time.Second
	defaultBudget   = 30 * time.Millisecond
)

type sample struct {
	inPages, outPages uint64
	at                time.Time
}

// Analyzer implements analyzer.Analyzer for swap usage, activity and
// ZRAM compression telemetry.
type Analyzer struct {
	fs procfs.FS

	prev    sample
	hasPrev bool

	zramRatio analyzer.Tracker[float64]

	total, used    uint64
	activityPerSec float64
}

// New constructs a swap analyzer reading from the default procfs mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "swap" }

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
	a.total = deref(mi.SwapTotal) * 1024
	a.used = (deref(mi.SwapTotal) - deref(mi.SwapFree)) * 1024

	if pages, err := readVMStatPswpg(); err == nil {
		s := sample{inPages: pages[0], outPages: pages[1], at: now}
		if a.hasPrev {
			elapsed := s.at.Sub(a.prev.at).Seconds()
			if elapsed > 0 {
				delta := float64((s.inPages - a.prev.inPages) + (s.outPages - a.prev.outPages))
				a.activityPerSec = delta / elapsed
			}
		}
		a.prev = s
		a.hasPrev = true
	}

	if ratio, err := readZRAMRatio(); err == nil {
		a.zramRatio.Success(ratio, now)
	} else {
		a.zramRatio.Failure()
	}

	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	s.Memory.SwapTotalBytes = a.total
	s.Memory.SwapUsedBytes = a.used
	s.Memory.SwapActivityPS = a.activityPerSec
	s.Memory.ZRAMRatio = a.zramRatio.Result(now)
}

func deref(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}

var vmstatPath = "/proc/vmstat"

// readVMStatPswpg returns [pswpin, pswpout] counters from /proc/vmstat.
func readVMStatPswpg() ([2]uint64, error) {
	b, err := os.ReadFile(vmstatPath)
	if err != nil {
		return [2]uint64{}, err
	}
	var out [2]uint64
	found := 0
	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "pswpin":
			if v, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				out[0] = v
				found++
			}
		case "pswpout":
			if v, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				out[1] = v
				found++
			}
		}
	}
	if found != 2 {
		return [2]uint64{}, fmt.Errorf("pswpin/pswpout not found in %s", vmstatPath)
	}
	return out, nil
}

var zramSysRoot = "/sys/block"

// readZRAMRatio scans /sys/block/zram* for orig_data_size and
// compr_data_size and returns the aggregate compression ratio across all
// zram devices. Systems without zram configured return an error.
func readZRAMRatio() (float64, error) {
	matches, err := filepath.Glob(filepath.Join(zramSysRoot, "zram*"))
	if err != nil || len(matches) == 0 {
		return 0, fmt.Errorf("no zram devices found")
	}

	var orig, compressed float64
	for _, dir := range matches {
		o, err1 := readUintFile(filepath.Join(dir, "orig_data_size"))
		c, err2 := readUintFile(filepath.Join(dir, "compr_data_size"))
		if err1 != nil || err2 != nil {
			continue
		}
		orig += float64(o)
		compressed += float64(c)
	}
	if compressed == 0 {
		return 0, fmt.Errorf("zram devices report zero compressed size")
	}
	return orig / compressed, nil
}

func readUintFile(path string) (uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
}
