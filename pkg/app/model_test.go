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
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/collector"
	"github.com/ptop-project/ptop/pkg/config"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

func newTestModel(panels []string) *Model {
	c := collector.New(analyzer.NewRegistry(nil), time.Second)
	return NewModel(c, config.Default(), panels)
}

func TestNewModelFocusesFirstPanel(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem", "disk"})
	require.Equal(t, "cpu", m.focused)
}

func TestNewModelRespectsDisabledPanel(t *testing.T) {
	cfg := config.Default()
	cfg.Panels["mem"] = config.PanelConfig{Enabled: "false"}
	c := collector.New(analyzer.NewRegistry(nil), time.Second)
	m := NewModel(c, cfg, []string{"cpu", "mem"})
	require.False(t, m.visibility["mem"])
}

func TestFocusNextCyclesForward(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem", "disk"})
	m.focusNext(1)
	require.Equal(t, "mem", m.focused)
	m.focusNext(1)
	require.Equal(t, "disk", m.focused)
	m.focusNext(1)
	require.Equal(t, "cpu", m.focused)
}

func TestFocusPrevWraps(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem", "disk"})
	m.focusNext(-1)
	require.Equal(t, "disk", m.focused)
}

func TestHandleKeyTabMovesFocus(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem"})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "mem", updated.(*Model).focused)
}

func TestHandleKeyEnterTogglesExplode(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem"})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "cpu", m.exploded)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "", m.exploded)
}

func TestHandleKeyEscCollapsesExplodeBeforeFilter(t *testing.T) {
	m := newTestModel([]string{"cpu"})
	m.exploded = "cpu"
	m.filter = "bash"
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "", m.exploded)
	require.Equal(t, "bash", m.filter)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "", m.filter)
}

func TestHandleKeyDigitTogglesPanelVisibility(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem"})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	require.False(t, m.visibility["cpu"])
}

func TestHandleKeyZeroResetsVisibility(t *testing.T) {
	m := newTestModel([]string{"cpu", "mem"})
	m.visibility["cpu"] = false
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	require.True(t, m.visibility["cpu"])
}

func TestHandleKeyFilterModeAccumulatesRunes(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.filterMode)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ba")})
	require.Equal(t, "ba", m.filter)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "b", m.filter)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.filterMode)
}

func TestSignalFlowOpenMenuAndConfirmDefault(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.snapshot = snapshot.New(time.Now())
	m.snapshot.Processes = snapshot.ResultReady([]snapshot.Process{{PID: 99, Command: "demo"}})
	var killedPID int
	m.kill = func(pid int, sig syscall.Signal) error { killedPID = pid; return nil }

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, DialogMenu, m.dialog.State)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")})
	require.Equal(t, DialogResult, m.dialog.State)
	require.Equal(t, 99, killedPID)
}

func TestQuitSetsQuittingAndReturnsQuitCmd(t *testing.T) {
	m := newTestModel([]string{"cpu"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestApplySnapshotUpdatesFPS(t *testing.T) {
	m := newTestModel([]string{"cpu"})
	s1 := snapshot.New(time.Now())
	m.applySnapshot(s1)
	time.Sleep(2 * time.Millisecond)
	s2 := snapshot.New(time.Now())
	m.applySnapshot(s2)
	require.Greater(t, m.fps, 0.0)
}
