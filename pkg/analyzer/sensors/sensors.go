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

// Package sensors analyzes the hwmon sysfs tree into a flat list of
// temperature, fan and voltage readings, the same tree lm-sensors reads.
package sensors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 2 * time.Second
	defaultBudget   = 50 * time.Millisecond
)

var hwmonRoot = "/sys/class/hwmon"

// kindScale maps a hwmon reading class prefix to its snapshot.Sensor
// Kind, unit and the divisor needed to convert the raw sysfs integer
// into that unit (sysfs reports milli-units for temp/voltage, raw RPM
// for fans).
var kindScale = map[string]struct {
	kind   string
	unit   string
	divide float64
}{
	"temp": {"temp", "C", 1000},
	"fan":  {"fan", "RPM", 1},
	"in":   {"in", "V", 1000},
}

// Analyzer implements analyzer.Analyzer for hwmon sensor readings.
type Analyzer struct {
	readings analyzer.Tracker[[]snapshot.Sensor]
}

// New constructs a sensors analyzer.
func New() *Analyzer { return &Analyzer{} }

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "sensors" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	entries, err := os.ReadDir(hwmonRoot)
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

	readings, err := readAllSensors()
	if err != nil {
		a.readings.Failure()
		return err
	}
	a.readings.Success(readings, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Sensors = a.readings.Result(time.Now())
	s.Capabilities.HasSensors = true
}

func readAllSensors() ([]snapshot.Sensor, error) {
	devices, err := os.ReadDir(hwmonRoot)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", hwmonRoot, err)
	}

	var out []snapshot.Sensor
	for _, dev := range devices {
		dir := filepath.Join(hwmonRoot, dev.Name())
		inputs, _ := filepath.Glob(filepath.Join(dir, "*_input"))
		sort.Strings(inputs)
		for _, inputPath := range inputs {
			kindPrefix, ok := classify(filepath.Base(inputPath))
			if !ok {
				continue
			}
			scale := kindScale[kindPrefix]

			raw, err := readInt(inputPath)
			if err != nil {
				continue
			}

			label := labelFor(inputPath)
			out = append(out, snapshot.Sensor{
				Label: label,
				Kind:  scale.kind,
				Value: float64(raw) / scale.divide,
				Unit:  scale.unit,
			})
		}
	}
	return out, nil
}

func classify(inputFile string) (string, bool) {
	for prefix := range kindScale {
		if strings.HasPrefix(inputFile, prefix) {
			return prefix, true
		}
	}
	return "", false
}

func labelFor(inputPath string) string {
	labelPath := strings.TrimSuffix(inputPath, "_input") + "_label"
	if b, err := os.ReadFile(labelPath); err == nil {
		return strings.TrimSpace(string(b))
	}
	return strings.TrimSuffix(filepath.Base(inputPath), "_input")
}

func readInt(path string) (int64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
}
