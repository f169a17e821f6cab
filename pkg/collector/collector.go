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

// Package collector runs the analyzer registry on its own goroutine,
// publishing each tick's Snapshot onto a single-slot channel that the
// render loop drains without blocking the collector. There is no
// queue: a Snapshot the render loop hasn't consumed yet is simply
// overwritten by the next tick, since only the freshest state matters
// to a terminal UI.
package collector

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

// Collector owns an analyzer.Registry and drives it at a fixed tick
// interval on a dedicated goroutine.
type Collector struct {
	registry *analyzer.Registry
	interval time.Duration
	logger   *slog.Logger

	out      chan *snapshot.Snapshot
	shutdown atomic.Bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger overrides the collector's logger; the default is slog's
// process-wide default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) { c.logger = logger }
}

// New constructs a Collector that ticks the given registry every
// interval, publishing onto a capacity-1 channel.
func New(registry *analyzer.Registry, interval time.Duration, opts ...Option) *Collector {
	c := &Collector{
		registry: registry,
		interval: interval,
		logger:   slog.Default(),
		out:      make(chan *snapshot.Snapshot, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the tick loop until ctx is canceled or Stop is called.
// It is meant to be launched with `go c.Run(ctx)`; callers observe
// ticks via TryRecv, not by reading the return value.
func (c *Collector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("collector stopping", "reason", ctx.Err())
			return
		case <-ticker.C:
			if c.shutdown.Load() {
				return
			}
			c.tick(ctx)
		}
	}
}

// Stop requests the collector's loop to exit at the next tick
// boundary, in addition to whatever context cancellation callers use.
func (c *Collector) Stop() {
	c.shutdown.Store(true)
}

func (c *Collector) tick(ctx context.Context) {
	now := time.Now()
	s := snapshot.New(now)
	c.registry.Tick(ctx, now, s)
	c.publish(s)
}

// publish performs a non-blocking overwrite-send: if the channel
// already holds an unconsumed Snapshot, it is drained and replaced
// rather than letting the collector block on a slow renderer.
func (c *Collector) publish(s *snapshot.Snapshot) {
	select {
	case c.out <- s:
	default:
		select {
		case <-c.out:
		default:
		}
		select {
		case c.out <- s:
		default:
		}
	}
}

// TryRecv performs a non-blocking receive of the latest published
// Snapshot, returning (nil, false) if none is pending. It is meant to
// be called once per render-loop frame.
func (c *Collector) TryRecv() (*snapshot.Snapshot, bool) {
	select {
	case s := <-c.out:
		return s, true
	default:
		return nil, false
	}
}

// Registry exposes the underlying registry, e.g. for cliapp's
// --render-once path, which runs one synchronous Tick on it.
func (c *Collector) Registry() *analyzer.Registry { return c.registry }
