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

// Package app implements ptop's bubbletea state machine: focus,
// explode, filter, sort, tree view, and the signal-delivery dialog,
// all driven by pure Update transitions over tea.Msg. No transition
// performs blocking I/O; the only syscall in the whole package is the
// non-blocking signal delivery in DialogConfirm.
package app

import (
	"context"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ptop-project/ptop/pkg/collector"
	"github.com/ptop-project/ptop/pkg/config"
	"github.com/ptop-project/ptop/pkg/layout"
	"github.com/ptop-project/ptop/pkg/ring"
	"github.com/ptop-project/ptop/pkg/snapshot"
	"github.com/ptop-project/ptop/pkg/widget"
)

// frameInterval is a prometheus.Histogram recording the wall-clock gap
// between successive applied snapshots, in-process only: ptop never
// serves /metrics (no network server role), but the --show-fps overlay
// reads its matching ring.LatencyHistogram for p50/p95/p99 display.
var frameInterval = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "ptop_frame_interval_seconds",
	Help:    "Wall-clock interval between applied collector snapshots.",
	Buckets: prometheus.DefBuckets,
})

// pollInterval is how often Model asks the collector for a fresh
// snapshot; it is independent of the collector's own tick interval so
// the render loop stays responsive even when collection is slow.
const pollInterval = 16 * time.Millisecond

// snapshotMsg carries a freshly received snapshot into Update.
type snapshotMsg struct{ snapshot *snapshot.Snapshot }

// tickMsg drives the non-blocking poll-the-collector loop.
type tickMsg time.Time

func pollCmd(c *collector.Collector) tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		if s, ok := c.TryRecv(); ok {
			return snapshotMsg{snapshot: s}
		}
		return tickMsg(t)
	})
}

// Model is ptop's bubbletea root model.
type Model struct {
	collector *collector.Collector
	cfg       *config.Config
	grid      *layout.Grid
	ruleSets  map[string]layout.RuleSet

	panelOrder []string // registered panel names, priority order (highest first)
	visibility map[string]bool

	width, height int
	snapshot      *snapshot.Snapshot
	capabilities  snapshot.Capabilities

	focused  string
	exploded string

	filter     string
	filterMode bool

	sortKey  SortKey
	sortDesc bool
	treeView bool

	selectedRow int
	dialog      SignalDialog
	kill        func(pid int, sig syscall.Signal) error

	showHelp       bool
	showFPS        bool
	fps            float64
	frameLatencies *ring.LatencyHistogram
	lastTick       time.Time
	hist           *history

	sensorsTab int // 0=sensors, 1=battery, 2=kernel
	diskTab    int // 0=usage, 1=io

	quitting bool
}

// NewModel builds the initial Model for a running collector and a
// resolved configuration. panels lists every panel name the layout
// should consider, in priority order (highest priority first); every
// panel starts visible unless its config block sets enabled: false.
func NewModel(c *collector.Collector, cfg *config.Config, panels []string) *Model {
	visibility := make(map[string]bool, len(panels))
	ruleSets := make(map[string]layout.RuleSet, len(panels))
	for _, name := range panels {
		visibility[name] = true
		if pc, ok := cfg.Panels[name]; ok {
			if pc.Enabled == "false" {
				visibility[name] = false
			}
			if rs, err := layout.CompileRuleSet(pc.DisplayRules); err == nil {
				ruleSets[name] = rs
			}
		}
	}
	var focused string
	if len(panels) > 0 {
		focused = panels[0]
	}
	return &Model{
		collector:      c,
		cfg:            cfg,
		grid:           layout.NewGrid(),
		ruleSets:       ruleSets,
		panelOrder:     panels,
		visibility:     visibility,
		focused:        focused,
		kill:           defaultKill,
		frameLatencies: ring.NewLatencyHistogram(),
		hist:           newHistory(time.Duration(cfg.RefreshMS) * time.Millisecond),
	}
}

// Init satisfies tea.Model; it starts the non-blocking collector poll.
func (m *Model) Init() tea.Cmd {
	return pollCmd(m.collector)
}

// Update satisfies tea.Model, dispatching on the three message types
// the app ever receives: key input, collector snapshots, and terminal
// resize.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg.snapshot)
		return m, pollCmd(m.collector)

	case tickMsg:
		return m, pollCmd(m.collector)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Resize sets the model's terminal dimensions directly, for callers
// (render-once mode, tests) that never receive a tea.WindowSizeMsg.
func (m *Model) Resize(width, height int) {
	m.width, m.height = width, height
}

// ApplySnapshot feeds a snapshot into the model outside the normal
// tea.Msg pump, for render-once mode and tests that need a frame
// without driving the bubbletea event loop.
func (m *Model) ApplySnapshot(s *snapshot.Snapshot) {
	m.applySnapshot(s)
}

func (m *Model) applySnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	if !m.lastTick.IsZero() {
		dt := now.Sub(m.lastTick)
		if dt > 0 {
			m.fps = 1 / dt.Seconds()
			m.frameLatencies.Record(dt)
			frameInterval.Observe(dt.Seconds())
		}
	}
	m.lastTick = now
	m.snapshot = s
	m.capabilities = s.Capabilities
	m.hist.observe(s)
}

// framePercentile returns the p-th percentile (0..100) of recent
// applied-snapshot intervals, for the --show-fps overlay.
func (m *Model) framePercentile(p float64) time.Duration {
	return m.frameLatencies.Percentile(p)
}

// visiblePanels returns the registered panels currently toggled on and
// not hidden by a Hide display-rule evaluation, highest priority first.
func (m *Model) visiblePanels() []string {
	ctx := layout.DataContext{
		Snapshot:     m.snapshot,
		Capabilities: m.capabilities,
		TermWidth:    m.width,
		TermHeight:   m.height,
	}
	var out []string
	for _, name := range m.panelOrder {
		if !m.visibility[name] {
			continue
		}
		if rs, ok := m.ruleSets[name]; ok {
			action, _ := rs.Evaluate(ctx)
			if action == layout.Hide {
				continue
			}
		}
		out = append(out, name)
	}
	return out
}

// gridLayout computes the panel rectangles for the current frame,
// honoring explode mode.
func (m *Model) gridLayout() map[string]widget.Rect {
	names := m.visiblePanels()
	panels := make([]layout.Panel, len(names))
	for i, n := range names {
		panels[i] = layout.Panel{Name: n, Priority: len(names) - i}
	}
	m.grid.ExplodedPanel = m.exploded
	return m.grid.Layout(panels, m.width, m.height)
}

// focusNext/focusPrev move focus among currently visible panels,
// skipping hidden ones by construction since visiblePanels already
// filters them out.
func (m *Model) focusNext(delta int) {
	names := m.visiblePanels()
	if len(names) == 0 {
		m.focused = ""
		return
	}
	idx := indexOf(names, m.focused)
	if idx < 0 {
		m.focused = names[0]
		return
	}
	idx = (idx + delta + len(names)) % len(names)
	m.focused = names[idx]
}

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}
	return -1
}

// toggleVisibility flips panel i (0-indexed into panelOrder) for the
// '1'..'9' keys, or resets every panel to visible for '0'.
func (m *Model) toggleVisibility(digit int) {
	if digit == 0 {
		for name := range m.visibility {
			m.visibility[name] = true
		}
		return
	}
	idx := digit - 1
	if idx < 0 || idx >= len(m.panelOrder) {
		return
	}
	name := m.panelOrder[idx]
	m.visibility[name] = !m.visibility[name]
}

// currentProcessRows applies the active filter, sort, and tree-view
// flag to the latest snapshot's process list, for both the table
// widget and signal-menu PID selection.
func (m *Model) currentProcessRows() []snapshot.Process {
	if m.snapshot == nil {
		return nil
	}
	rows := m.snapshot.Processes.UnwrapOr(nil)
	rows = FilterProcesses(rows, m.filter)
	if m.treeView {
		flat := Flatten(BuildTree(rows, m.sortKey, m.sortDesc))
		out := make([]snapshot.Process, len(flat))
		for i, n := range flat {
			out[i] = n.Process
		}
		return out
	}
	return SortProcesses(rows, m.sortKey, m.sortDesc)
}

func (m *Model) selectedPID() (int, bool) {
	rows := m.currentProcessRows()
	if m.selectedRow < 0 || m.selectedRow >= len(rows) {
		return 0, false
	}
	return rows[m.selectedRow].PID, true
}

// RunCollector blocks until ctx is canceled, running the collector's
// tick loop. pkg/cliapp's interactive mode starts this on its own
// errgroup goroutine before handing the Model to bubbletea.
func RunCollector(ctx context.Context, c *collector.Collector) {
	c.Run(ctx)
}
