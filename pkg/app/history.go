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

package app

import (
	"time"

	"github.com/ptop-project/ptop/pkg/ring"
	"github.com/ptop-project/ptop/pkg/snapshot"
	"github.com/ptop-project/ptop/pkg/stats"
)

// historyWindow bounds every sparkline series and trend detector to the
// same number of recent ticks, independent of the collector's refresh
// interval.
const historyWindow = 60

// maxTrendTicks caps how far out a mountETA projection is willing to
// extrapolate; beyond this the fill rate is too slow to be actionable.
const maxTrendTicks = 100000

// history accumulates the bounded-memory time series and streaming
// detectors the panel renderers read from. One instance lives on Model
// and is folded into on every applied snapshot; it is never read from
// any goroutine but the render loop's.
type history struct {
	interval time.Duration

	cpuTotal *ring.Buffer[float64]
	memUsed  *ring.Buffer[float64]
	netRx    *ring.Buffer[float64]
	netTx    *ring.Buffer[float64]
	diskBusy *ring.Buffer[float64]

	perCoreEMA []*stats.EmaTracker

	cpuOverloaded    *stats.ThresholdDetector
	memUnderPressure *stats.ThresholdDetector
	netAnomaly       *stats.AnomalyDetector
	netRxAnomalous   bool

	mountTrend map[string]*stats.TrendDetector
}

// newHistory returns a history whose mountETA projections are expressed
// in real time assuming ticks land every interval.
func newHistory(interval time.Duration) *history {
	if interval <= 0 {
		interval = time.Second
	}
	return &history{
		interval:         interval,
		cpuTotal:         ring.New[float64](historyWindow),
		memUsed:          ring.New[float64](historyWindow),
		netRx:            ring.New[float64](historyWindow),
		netTx:            ring.New[float64](historyWindow),
		diskBusy:         ring.New[float64](historyWindow),
		cpuOverloaded:    stats.NewThresholdDetector(0.85, 0.70),
		memUnderPressure: stats.NewThresholdDetector(0.90, 0.80),
		netAnomaly:       stats.NewAnomalyDetector(20, 3.0),
		mountTrend:       make(map[string]*stats.TrendDetector),
	}
}

// observe folds one tick's snapshot into every series and detector whose
// backing field actually produced a value this tick; Pending/Error
// fields are skipped rather than recorded as a false zero.
func (h *history) observe(s *snapshot.Snapshot) {
	if v, ok := unwrap(s.CPU.TotalUtilization); ok {
		h.cpuTotal.Push(v)
		h.cpuOverloaded.Update(v)
	}
	if cores, ok := unwrap(s.CPU.PerCore); ok {
		h.smoothCores(cores)
	}
	if s.Memory.TotalBytes > 0 {
		ratio := float64(s.Memory.UsedBytes) / float64(s.Memory.TotalBytes)
		h.memUsed.Push(ratio)
		h.memUnderPressure.Update(ratio)
	}
	if ifaces, ok := unwrap(s.Network.Interfaces); ok {
		var rx, tx float64
		for _, ifc := range ifaces {
			rx += ifc.RxBytesPS
			tx += ifc.TxBytesPS
		}
		h.netRx.Push(rx)
		h.netTx.Push(tx)
		anomalous, _ := h.netAnomaly.Update(rx)
		h.netRxAnomalous = anomalous
	}
	if ioList, ok := unwrap(s.Disk.IO); ok {
		var busy float64
		for _, d := range ioList {
			busy += d.ReadBytesPS + d.WriteBytesPS
		}
		h.diskBusy.Push(busy)
	}
	if mounts, ok := unwrap(s.Disk.Mounts); ok {
		for _, mnt := range mounts {
			if mnt.TotalBytes == 0 {
				continue
			}
			t, ok := h.mountTrend[mnt.MountPoint]
			if !ok {
				t = stats.NewTrendDetector(historyWindow)
				h.mountTrend[mnt.MountPoint] = t
			}
			t.Update(float64(mnt.UsedBytes) / float64(mnt.TotalBytes))
		}
	}
}

func (h *history) smoothCores(cores []float64) {
	if len(h.perCoreEMA) < len(cores) {
		grown := make([]*stats.EmaTracker, len(cores))
		copy(grown, h.perCoreEMA)
		for i := range grown {
			if grown[i] == nil {
				grown[i] = stats.NewEmaTracker(0.35)
			}
		}
		h.perCoreEMA = grown
	}
	for i, v := range cores {
		h.perCoreEMA[i].Update(v)
	}
}

// smoothedPerCore returns the EMA-smoothed per-core utilization, or nil
// if no CPU sample has been observed yet.
func (h *history) smoothedPerCore() []float64 {
	if len(h.perCoreEMA) == 0 {
		return nil
	}
	out := make([]float64, len(h.perCoreEMA))
	for i, e := range h.perCoreEMA {
		out[i] = e.Value()
	}
	return out
}

// mountETA projects how long the named mount has left before it fills,
// from its recent usage-ratio trend. It reports ok=false when the trend
// is flat or improving, too slow to matter, or not enough samples have
// been observed yet.
func (h *history) mountETA(mountPoint string, usedRatio float64) (time.Duration, bool) {
	t, ok := h.mountTrend[mountPoint]
	if !ok {
		return 0, false
	}
	slope := t.Slope()
	if slope <= 0 {
		return 0, false
	}
	remaining := 1 - usedRatio
	if remaining <= 0 {
		return 0, false
	}
	ticks := remaining / slope
	if ticks > maxTrendTicks {
		return 0, false
	}
	return time.Duration(ticks * float64(h.interval)), true
}

// unwrap returns a PartialResult's carried value and true for Ready and
// Stale states, or the zero value and false for Pending/Error.
func unwrap[T any](p snapshot.PartialResult[T]) (T, bool) {
	state := p.State()
	if state != snapshot.Ready && state != snapshot.Stale {
		var zero T
		return zero, false
	}
	var zero T
	return p.UnwrapOr(zero), true
}
