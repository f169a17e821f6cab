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

// Package gpu analyzes nvidia-smi's XML query output into GPU
// utilization, memory and process telemetry. A system without a
// discoverable NVIDIA driver has no nvidia-smi binary on PATH, which
// Available detects up front so the analyzer is never registered rather
// than cycling through failed collects on every tick.
package gpu

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 2 * time.Second
	defaultBudget   = 500 * time.Millisecond

	nvidiaSMICommand = "nvidia-smi"
)

// nvSMILog mirrors the subset of `nvidia-smi -q -x` this analyzer reads.
type nvSMILog struct {
	XMLName       xml.Name  `xml:"nvidia_smi_log"`
	DriverVersion string    `xml:"driver_version"`
	GPUs          []nvSMIGPU `xml:"gpu"`
}

type nvSMIGPU struct {
	ProductName   string          `xml:"product_name"`
	UUID          string          `xml:"uuid"`
	FbMemoryUsage nvSMIMemory     `xml:"fb_memory_usage"`
	Utilization   nvSMIUtil       `xml:"utilization"`
	Temperature   nvSMITemp       `xml:"temperature"`
	PowerReadings nvSMIPower      `xml:"gpu_power_readings"`
	Processes     []nvSMIProcess  `xml:"processes>process_info"`
}

type nvSMIMemory struct {
	Total string `xml:"total"`
	Used  string `xml:"used"`
}

type nvSMIUtil struct {
	GPUUtil string `xml:"gpu_util"`
}

type nvSMITemp struct {
	GPUTemp string `xml:"gpu_temp"`
}

type nvSMIPower struct {
	PowerDraw string `xml:"power_draw"`
}

type nvSMIProcess struct {
	PID         int    `xml:"pid"`
	Type        string `xml:"type"`
	ProcessName string `xml:"process_name"`
	UsedMemory  string `xml:"used_memory"`
}

// Analyzer implements analyzer.Analyzer for NVIDIA GPU telemetry.
type Analyzer struct {
	run func(ctx context.Context) ([]byte, error)

	devices analyzer.Tracker[[]snapshot.GPUDevice]
}

// New constructs a GPU analyzer invoking the real nvidia-smi binary.
func New() *Analyzer {
	return &Analyzer{run: runNvidiaSMI}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "gpu" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := exec.LookPath(nvidiaSMICommand)
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

	out, err := a.run(ctx)
	if err != nil {
		a.devices.Failure()
		return fmt.Errorf("run nvidia-smi: %w", err)
	}

	log, err := parseSMILog(out)
	if err != nil {
		a.devices.Failure()
		return fmt.Errorf("parse nvidia-smi output: %w", err)
	}

	devices := make([]snapshot.GPUDevice, 0, len(log.GPUs))
	for i, g := range log.GPUs {
		devices = append(devices, snapshot.GPUDevice{
			Index:       i,
			Name:        g.ProductName,
			UtilPercent: parsePercentField(g.Utilization.GPUUtil),
			VRAMUsed:    parseMebibytes(g.FbMemoryUsage.Used),
			VRAMTotal:   parseMebibytes(g.FbMemoryUsage.Total),
			TempC:       parseLeadingFloat(g.Temperature.GPUTemp),
			PowerWatts:  parseLeadingFloat(g.PowerReadings.PowerDraw),
			Processes:   toGPUProcesses(g.Processes),
		})
	}
	a.devices.Success(devices, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.GPUs = a.devices.Result(time.Now())
	s.Capabilities.HasNvidia = true
}

func runNvidiaSMI(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, nvidiaSMICommand, "-q", "-x")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func parseSMILog(data []byte) (*nvSMILog, error) {
	var log nvSMILog
	if err := xml.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func toGPUProcesses(procs []nvSMIProcess) []snapshot.GPUProcess {
	out := make([]snapshot.GPUProcess, 0, len(procs))
	for _, p := range procs {
		typ := snapshot.GPUProcessCompute
		if strings.Contains(p.Type, "G") {
			typ = snapshot.GPUProcessGraphics
		}
		out = append(out, snapshot.GPUProcess{
			PID:       p.PID,
			Command:   p.ProcessName,
			Type:      typ,
			VRAMBytes: parseMebibytes(p.UsedMemory),
		})
	}
	return out
}

// parsePercentField parses "45 %" into 0.45.
func parsePercentField(s string) float64 {
	return parseLeadingFloat(s) / 100
}

// parseMebibytes parses "81559 MiB" into bytes.
func parseMebibytes(s string) uint64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return uint64(v * 1024 * 1024)
}

// parseLeadingFloat parses the leading numeric token of a unit-suffixed
// reading like "65 C" or "250.00 W".
func parseLeadingFloat(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(fields[0], 64)
	return v
}
