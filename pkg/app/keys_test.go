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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestParseDigitAcceptsSingleDigitOnly(t *testing.T) {
	n, ok := parseDigit("5")
	require.True(t, ok)
	require.Equal(t, 5, n)

	_, ok = parseDigit("12")
	require.False(t, ok)

	_, ok = parseDigit("a")
	require.False(t, ok)
}

func TestHandleKeySortCyclesKey(t *testing.T) {
	m := newTestModel([]string{"process"})
	start := m.sortKey
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.Equal(t, start.Next(), m.sortKey)
}

func TestHandleKeySortReverseToggles(t *testing.T) {
	m := newTestModel([]string{"process"})
	require.False(t, m.sortDesc)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("S")})
	require.True(t, m.sortDesc)
}

func TestHandleKeyTreeViewToggles(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.True(t, m.treeView)
}

func TestHandleKeyHelpToggles(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.showHelp)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.False(t, m.showHelp)
}

func TestHandleDialogMenuEscCancels(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.dialog = openMenu(42)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, DialogNone, m.dialog.State)
}

func TestHandleDialogMenuLetterTransitionsToConfirm(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.dialog = openMenu(42)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("K")})
	require.Equal(t, DialogConfirm, m.dialog.State)
	require.Equal(t, syscall.SIGKILL, m.dialog.Signal)
}

func TestHandleDialogConfirmNCancels(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.dialog = SignalDialog{State: DialogConfirm, PID: 42, Signal: syscall.SIGTERM}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Equal(t, DialogNone, m.dialog.State)
}

func TestHandleDialogConfirmYSendsSignal(t *testing.T) {
	m := newTestModel([]string{"process"})
	var gotPID int
	var gotSig syscall.Signal
	m.kill = func(pid int, sig syscall.Signal) error {
		gotPID, gotSig = pid, sig
		return nil
	}
	m.dialog = SignalDialog{State: DialogConfirm, PID: 42, Signal: syscall.SIGKILL}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")})
	require.Equal(t, DialogResult, m.dialog.State)
	require.Equal(t, 42, gotPID)
	require.Equal(t, syscall.SIGKILL, gotSig)
}

func TestHandleDialogResultAnyKeyDismisses(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.dialog = SignalDialog{State: DialogResult, PID: 42, Outcome: "sent"}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Equal(t, DialogNone, m.dialog.State)
	require.False(t, m.quitting)
}

func TestHandleKeyXWithoutSelectionDoesNotOpenDialog(t *testing.T) {
	m := newTestModel([]string{"process"})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, DialogNone, m.dialog.State)
}

func TestToggleVisibilityOutOfRangeDigitIsNoop(t *testing.T) {
	m := newTestModel([]string{"cpu"})
	m.toggleVisibility(9)
	require.True(t, m.visibility["cpu"])
}
