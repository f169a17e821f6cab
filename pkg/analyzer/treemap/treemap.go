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

// Package treemap incrementally walks a directory tree, accumulating the
// largest files found into a bounded top-N list. The walk is resumable
// across ticks: each Collect call processes a fixed slice of the pending
// queue rather than the whole tree, so a multi-terabyte home directory
// never blows the analyzer's latency budget on a single tick.
package treemap

import (
	"container/heap"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 500 * time.Millisecond
	defaultBudget   = 30 * time.Millisecond

	maxDepth         = 6
	topN             = 25
	entriesPerCollect = 2000
)

// Analyzer implements analyzer.Analyzer for an incremental largest-files
// scan rooted at Root.
type Analyzer struct {
	Root string

	queue     []queueItem
	processed int
	estimated int
	top       *entryHeap

	entries analyzer.Tracker[[]snapshot.TreemapEntry]
	progress float64
}

type queueItem struct {
	path  string
	depth int
}

// New constructs a treemap analyzer rooted at the given directory.
func New(root string) *Analyzer {
	a := &Analyzer{Root: root, top: &entryHeap{}}
	heap.Init(a.top)
	a.resetScan()
	return a
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "treemap" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	info, err := os.Stat(a.Root)
	return err == nil && info.IsDir()
}

// Interval implements analyzer.Analyzer.
func (a *Analyzer) Interval() time.Duration { return defaultInterval }

// LatencyBudget implements analyzer.Analyzer.
func (a *Analyzer) LatencyBudget() time.Duration { return defaultBudget }

// Collect implements analyzer.Analyzer. Each call drains up to
// entriesPerCollect directory entries from the pending queue; when the
// queue empties the accumulated top-N list is published and a fresh
// scan is queued.
func (a *Analyzer) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	budget := entriesPerCollect
	for budget > 0 && len(a.queue) > 0 {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		item := a.queue[0]
		a.queue = a.queue[1:]
		budget--

		entries, err := os.ReadDir(item.path)
		if err != nil {
			continue
		}
		for _, e := range entries {
			full := filepath.Join(item.path, e.Name())
			a.processed++
			if e.IsDir() {
				if item.depth < maxDepth {
					a.queue = append(a.queue, queueItem{path: full, depth: item.depth + 1})
				}
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			size := uint64(info.Size())
			heap.Push(a.top, snapshot.TreemapEntry{Path: full, Bytes: size})
			if a.top.Len() > topN {
				heap.Pop(a.top)
			}
		}
	}

	if a.processed > a.estimated {
		a.estimated = a.processed
	}
	if a.estimated > 0 {
		a.progress = float64(a.processed) / float64(a.estimated)
	}

	if len(a.queue) == 0 {
		a.entries.Success(a.top.sortedDescending(), time.Now())
		a.progress = 1
		a.resetScan()
	}
	return nil
}

func (a *Analyzer) resetScan() {
	a.queue = []queueItem{{path: a.Root, depth: 0}}
	a.processed = 0
	a.top = &entryHeap{}
	heap.Init(a.top)
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Treemap.Entries = a.entries.Result(time.Now())
	s.Treemap.ScanProgress = a.progress
}

// entryHeap is a min-heap on Bytes, letting Collect keep only the
// topN largest files seen without sorting after every insert.
type entryHeap []snapshot.TreemapEntry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].Bytes < h[j].Bytes }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)         { *h = append(*h, x.(snapshot.TreemapEntry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func (h *entryHeap) sortedDescending() []snapshot.TreemapEntry {
	out := make([]snapshot.TreemapEntry, len(*h))
	copy(out, *h)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Bytes > out[i].Bytes {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
