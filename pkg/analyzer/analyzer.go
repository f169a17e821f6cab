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

// Package analyzer defines the Analyzer contract and a Registry that
// schedules collects against per-analyzer intervals and latency budgets,
// tracking the Pending/Stale/Error failure semantics from the telemetry
// specification. All of it runs on the single collector goroutine; no
// analyzer method is ever called concurrently with another.
package analyzer

import (
	"context"
	"time"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

// Analyzer reads one telemetry source, enforces a latency budget, and
// writes its slice of the Snapshot.
type Analyzer interface {
	// Name is a unique, stable identifier used in logs and config.
	Name() string
	// Available is a cheap startup probe (file existence, binary in
	// PATH). Called once; analyzers that fail it are dropped for the
	// process lifetime.
	Available() bool
	// Collect performs the read/parse work and updates internal state.
	// Called each tick the scheduler decides is due.
	Collect(ctx context.Context) error
	// Interval is the minimum spacing between collects.
	Interval() time.Duration
	// LatencyBudget is the collect duration above which a budget
	// violation is recorded.
	LatencyBudget() time.Duration
	// WriteSnapshot writes this analyzer's most recent data into s.
	WriteSnapshot(s *snapshot.Snapshot)
}
