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
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey implements the key-transition table: every branch is a
// pure state mutation or, for signal delivery, a single non-blocking
// syscall — never a blocking call, so every transition completes well
// under the frame budget.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterMode {
		return m.handleFilterKey(msg)
	}
	if m.dialog.State != DialogNone {
		return m.handleDialogKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "tab", "l":
		m.focusNext(1)
	case "shift+tab", "h":
		m.focusNext(-1)

	case "j", "down":
		m.selectedRow++
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}

	case "enter", "z":
		if m.exploded == m.focused {
			m.exploded = ""
		} else {
			m.exploded = m.focused
		}

	case "esc":
		switch {
		case m.exploded != "":
			m.exploded = ""
		case m.filter != "":
			m.filter = ""
		}

	case "t":
		m.treeView = !m.treeView

	case "s":
		m.sortKey = m.sortKey.Next()
	case "S":
		m.sortDesc = !m.sortDesc

	case "/", "f":
		m.filterMode = true

	case "x":
		if pid, ok := m.selectedPID(); ok {
			m.dialog = openMenu(pid)
		}

	case "?":
		m.showHelp = !m.showHelp

	case "v":
		switch m.focused {
		case "sensors":
			m.sensorsTab = (m.sensorsTab + 1) % 3
		case "disk":
			m.diskTab = (m.diskTab + 1) % 2
		}

	default:
		if digit, ok := parseDigit(msg.String()); ok {
			m.toggleVisibility(digit)
		}
	}
	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.filterMode = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.dialog.State {
	case DialogMenu:
		switch msg.String() {
		case "esc":
			m.dialog = SignalDialog{}
		case "Y":
			// Confirm the menu's pre-selected default (SIGTERM) without
			// requiring an explicit signal choice first.
			m.dialog = m.dialog.confirm(m.kill)
		default:
			runes := msg.Runes
			if len(runes) == 1 {
				if next, ok := m.dialog.choose(runes[0]); ok {
					m.dialog = next
				}
			}
		}
	case DialogConfirm:
		switch msg.String() {
		case "Y":
			m.dialog = m.dialog.confirm(m.kill)
		case "n", "esc":
			m.dialog = SignalDialog{}
		}
	case DialogResult:
		m.dialog = SignalDialog{}
	}
	return m, nil
}

func parseDigit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
