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

// Package battery analyzes the first battery power supply under
// /sys/class/power_supply into charge state and runtime estimates.
// Desktops and servers have no BAT* device, so Available gates the
// analyzer out entirely on such hosts.
package battery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 5 * time.Second
	defaultBudget   = 20 * time.Millisecond
)

var powerSupplyRoot = "/sys/class/power_supply"

// Analyzer implements analyzer.Analyzer for battery charge telemetry.
type Analyzer struct {
	tracker analyzer.Tracker[snapshot.Battery]
}

// New constructs a battery analyzer.
func New() *Analyzer { return &Analyzer{} }

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "battery" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, ok := findBatteryDir()
	return ok
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
	dir, ok := findBatteryDir()
	if !ok {
		a.tracker.Failure()
		return fmt.Errorf("no battery power supply found under %s", powerSupplyRoot)
	}

	b, err := readBattery(dir)
	if err != nil {
		a.tracker.Failure()
		return err
	}
	a.tracker.Success(b, time.Now())
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Battery = a.tracker.Result(time.Now())
	s.Capabilities.HasBattery = true
}

func findBatteryDir() (string, bool) {
	entries, err := os.ReadDir(powerSupplyRoot)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "BAT") {
			return filepath.Join(powerSupplyRoot, e.Name()), true
		}
	}
	return "", false
}

func readBattery(dir string) (snapshot.Battery, error) {
	capacity, err := readIntFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return snapshot.Battery{}, fmt.Errorf("read battery capacity: %w", err)
	}
	status, _ := os.ReadFile(filepath.Join(dir, "status"))
	charging := strings.TrimSpace(string(status)) == "Charging"

	energyNowUWh, _ := readIntFile(filepath.Join(dir, "energy_now"))
	energyFullUWh, _ := readIntFile(filepath.Join(dir, "energy_full"))
	powerNowUW, _ := readIntFile(filepath.Join(dir, "power_now"))

	b := snapshot.Battery{
		PercentCharge: float64(capacity),
		Charging:      charging,
	}
	if powerNowUW > 0 {
		if charging {
			remainingUWh := float64(energyFullUWh - energyNowUWh)
			b.TimeToFullMin = remainingUWh / float64(powerNowUW) * 60
		} else {
			b.TimeToEmptyMin = float64(energyNowUWh) / float64(powerNowUW) * 60
		}
	}
	return b, nil
}

func readIntFile(path string) (int64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
}
