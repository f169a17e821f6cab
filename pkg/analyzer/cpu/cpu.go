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

// Package cpu analyzes /proc/stat, /proc/loadavg and the cpufreq/hwmon
// sysfs trees into per-tick CPU utilization, frequency and temperature
// readings.
package cpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 500 * time.Millisecond
	defaultBudget   = 50 * time.Millisecond
)

// cpuSample is one /proc/stat total-ticks reading used to derive
// utilization as the delta between two consecutive samples.
type cpuSample struct {
	total float64
	idle  float64
}

// Analyzer implements analyzer.Analyzer for processor utilization,
// frequency range and per-core temperature.
type Analyzer struct {
	fs procfs.FS

	totalPrev cpuSample
	perCPrev  []cpuSample

	totalUtil analyzer.Tracker[float64]
	perCore   analyzer.Tracker[[]float64]
	perTemp   analyzer.Tracker[[]float64]
	freqMin   analyzer.Tracker[float64]
	freqMax   analyzer.Tracker[float64]

	loadAvg1, loadAvg5, loadAvg15 float64
	uptimeSeconds                 float64
	numCores                      int
	boost                         bool
}

// New constructs a CPU analyzer reading from the default procfs mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "cpu" }

// Available implements analyzer.Analyzer. /proc/stat is present on every
// Linux system ptop targets, so this only fails on a broken procfs mount.
func (a *Analyzer) Available() bool {
	_, err := a.fs.Stat()
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

	stat, err := a.fs.Stat()
	if err != nil {
		a.totalUtil.Failure()
		a.perCore.Failure()
		return fmt.Errorf("read /proc/stat: %w", err)
	}

	total := cpuSample{
		total: sumCPUStat(stat.CPUTotal),
		idle:  stat.CPUTotal.Idle + stat.CPUTotal.Iowait,
	}
	if !a.totalPrev.isZero() {
		a.totalUtil.Success(utilFraction(a.totalPrev, total), now)
	}
	a.totalPrev = total

	ids := make([]int64, 0, len(stat.CPU))
	for id := range stat.CPU {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	a.numCores = len(ids)

	if len(a.perCPrev) != len(ids) {
		a.perCPrev = make([]cpuSample, len(ids))
	}
	perCore := make([]float64, len(ids))
	haveBaseline := true
	for i, id := range ids {
		s := stat.CPU[id]
		sample := cpuSample{total: sumCPUStat(s), idle: s.Idle + s.Iowait}
		if a.perCPrev[i].isZero() {
			haveBaseline = false
		} else {
			perCore[i] = utilFraction(a.perCPrev[i], sample)
		}
		a.perCPrev[i] = sample
	}
	if haveBaseline {
		a.perCore.Success(perCore, now)
	}

	if load, err := a.fs.LoadAvg(); err == nil {
		a.loadAvg1, a.loadAvg5, a.loadAvg15 = load.Load1, load.Load5, load.Load15
	}

	if uptime, err := a.fs.Uptime(); err == nil {
		a.uptimeSeconds = uptime
	}

	if min, max, ok := readFreqRangeMHz(); ok {
		a.freqMin.Success(min, now)
		a.freqMax.Success(max, now)
	} else {
		a.freqMin.Failure()
		a.freqMax.Failure()
	}
	a.boost = readBoostEnabled()

	if temps, err := readCoreTempsC(); err == nil {
		a.perTemp.Success(temps, now)
	} else {
		a.perTemp.Failure()
	}

	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	s.CPU.TotalUtilization = a.totalUtil.Result(now)
	s.CPU.PerCore = a.perCore.Result(now)
	s.CPU.PerCoreTempC = a.perTemp.Result(now)
	s.CPU.FreqMinMHz = a.freqMin.Result(now)
	s.CPU.FreqMaxMHz = a.freqMax.Result(now)
	s.CPU.Boost = a.boost
	s.CPU.LoadAvg1 = a.loadAvg1
	s.CPU.LoadAvg5 = a.loadAvg5
	s.CPU.LoadAvg15 = a.loadAvg15
	s.CPU.UptimeSeconds = a.uptimeSeconds
	s.CPU.NumCores = a.numCores
}

func (c cpuSample) isZero() bool { return c.total == 0 && c.idle == 0 }

func sumCPUStat(s procfs.CPUStat) float64 {
	return s.User + s.Nice + s.System + s.Idle + s.Iowait +
		s.IRQ + s.SoftIRQ + s.Steal + s.Guest + s.GuestNice
}

func utilFraction(prev, cur cpuSample) float64 {
	totalDelta := cur.total - prev.total
	if totalDelta <= 0 {
		return 0
	}
	idleDelta := cur.idle - prev.idle
	util := 1 - idleDelta/totalDelta
	if util < 0 {
		util = 0
	}
	if util > 1 {
		util = 1
	}
	return util
}

// cpufreqRoot and hwmonRoot are package variables rather than constants
// so tests can point them at a temporary fixture tree.
var cpufreqRoot = "/sys/devices/system/cpu/cpu0/cpufreq"

func readFreqRangeMHz() (min, max float64, ok bool) {
	minKHz, err1 := readSysfsInt(filepath.Join(cpufreqRoot, "cpuinfo_min_freq"))
	maxKHz, err2 := readSysfsInt(filepath.Join(cpufreqRoot, "cpuinfo_max_freq"))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return float64(minKHz) / 1000, float64(maxKHz) / 1000, true
}

func readBoostEnabled() bool {
	// intel_pstate exposes the inverted no_turbo knob; acpi-cpufreq and
	// most other drivers expose a plain boost flag. Treat either file
	// missing as boost unsupported, not enabled.
	if v, err := readSysfsInt("/sys/devices/system/cpu/intel_pstate/no_turbo"); err == nil {
		return v == 0
	}
	if v, err := readSysfsInt("/sys/devices/system/cpu/cpufreq/boost"); err == nil {
		return v == 1
	}
	return false
}

func readSysfsInt(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

// readCoreTempsC reads per-core temperatures from the coretemp/k10temp
// hwmon device, matching "Core N" labels to core index N. Systems without
// a labeled coretemp device (containers, ARM boards, VMs) return an
// error, which the caller treats as a transient collect failure rather
// than marking the analyzer unavailable outright.
var hwmonRoot = "/sys/class/hwmon"

func readCoreTempsC() ([]float64, error) {
	entries, err := os.ReadDir(hwmonRoot)
	if err != nil {
		return nil, err
	}

	temps := map[int]float64{}
	for _, entry := range entries {
		dir := filepath.Join(hwmonRoot, entry.Name())
		labels, _ := filepath.Glob(filepath.Join(dir, "temp*_label"))
		for _, labelPath := range labels {
			label, err := os.ReadFile(labelPath)
			if err != nil {
				continue
			}
			core, ok := parseCoreLabel(strings.TrimSpace(string(label)))
			if !ok {
				continue
			}
			inputPath := strings.TrimSuffix(labelPath, "_label") + "_input"
			milliC, err := readSysfsInt(inputPath)
			if err != nil {
				continue
			}
			temps[core] = float64(milliC) / 1000
		}
	}
	if len(temps) == 0 {
		return nil, fmt.Errorf("no labeled coretemp sensors found under %s", hwmonRoot)
	}

	max := 0
	for core := range temps {
		if core > max {
			max = core
		}
	}
	out := make([]float64, max+1)
	for core, v := range temps {
		out[core] = v
	}
	return out, nil
}

func parseCoreLabel(label string) (int, bool) {
	const prefix = "Core "
	if !strings.HasPrefix(label, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(label, prefix)))
	if err != nil {
		return 0, false
	}
	return n, true
}
