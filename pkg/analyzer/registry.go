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

package analyzer

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/ptop-project/ptop/pkg/ring"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

// maxConsecutiveFailures is how many collect failures in a row demote an
// analyzer's fields from Stale to Error.
const maxConsecutiveFailures = 5

// warnLogInterval bounds how often a single analyzer's budget/failure
// warnings hit the log: a persistently slow or broken analyzer would
// otherwise emit one line per tick forever.
const warnLogInterval = 30 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithLogger overrides the registry's logger; the default is slog's
// process-wide default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// entry tracks one analyzer's scheduling and failure state between ticks.
type entry struct {
	Analyzer
	lastRun   time.Time
	failures  int
	lastOK    time.Time
	latencies *ring.LatencyHistogram
	dropped   bool
	warnLimit *rate.Limiter
}

// Registry owns the set of available analyzers and schedules collects
// against their declared intervals, tracking consecutive failures to
// drive the Stale/Error transitions documented on snapshot.PartialResult.
// Every method is intended to be called from a single goroutine; Registry
// does no internal locking.
type Registry struct {
	entries []*entry
	logger  *slog.Logger
}

// NewRegistry probes each analyzer's Available method once, keeping only
// those that pass, and returns a Registry ready to Tick.
func NewRegistry(analyzers []Analyzer, opts ...Option) *Registry {
	r := &Registry{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	for _, a := range analyzers {
		if !a.Available() {
			r.logger.Warn("analyzer unavailable, dropping for process lifetime", "analyzer", a.Name())
			continue
		}
		r.entries = append(r.entries, &entry{
			Analyzer:  a,
			latencies: ring.NewLatencyHistogram(),
			warnLimit: rate.NewLimiter(rate.Every(warnLogInterval), 1),
		})
	}
	return r
}

// Names returns the names of analyzers that passed their availability
// probe, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name()
	}
	return names
}

// Tick runs a collect on every due analyzer, in registration order, and
// writes the results into s. An analyzer is due when now has advanced at
// least Interval() past its last run; the very first tick runs all of
// them. Analyzers are never run concurrently with each other: the
// collector goroutine that calls Tick is already the sole writer of
// every snapshot field, so sequential execution is both simpler and
// sufficient to stay under the per-tick latency budget.
func (r *Registry) Tick(ctx context.Context, now time.Time, s *snapshot.Snapshot) {
	for _, e := range r.entries {
		if e.dropped {
			continue
		}
		if !e.lastRun.IsZero() && now.Sub(e.lastRun) < e.Interval() {
			e.WriteSnapshot(s)
			continue
		}
		r.runOne(ctx, e, now)
		e.WriteSnapshot(s)
	}
}

func (r *Registry) runOne(ctx context.Context, e *entry, now time.Time) {
	budget := e.LatencyBudget()
	cctx := ctx
	var cancel context.CancelFunc
	if budget > 0 {
		cctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	start := now
	err := e.Collect(cctx)
	elapsed := time.Since(start)
	e.latencies.Record(elapsed)
	e.lastRun = now

	if elapsed > budget && budget > 0 && e.warnLimit.Allow() {
		r.logger.Warn("analyzer exceeded latency budget",
			"analyzer", e.Name(), "budget", budget, "took", elapsed)
	}

	if err != nil {
		e.failures++
		if e.warnLimit.Allow() {
			r.logger.Warn("analyzer collect failed",
				"analyzer", e.Name(), "consecutive_failures", e.failures, "error", err)
		}
		return
	}
	e.failures = 0
	e.lastOK = now
}

// Failing reports the names of analyzers currently at or past the
// consecutive-failure threshold that demotes their fields to Error.
func (r *Registry) Failing() []string {
	var names []string
	for _, e := range r.entries {
		if e.failures >= maxConsecutiveFailures {
			names = append(names, e.Name())
		}
	}
	return names
}

// Latencies returns the collect-duration histogram recorded for the named
// analyzer, or nil if no analyzer by that name is registered.
func (r *Registry) Latencies(name string) *ring.LatencyHistogram {
	for _, e := range r.entries {
		if e.Name() == name {
			return e.latencies
		}
	}
	return nil
}
