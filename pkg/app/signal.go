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
	"fmt"
	"syscall"
)

// DialogState is which step of the signal-delivery flow is active.
type DialogState int

const (
	// DialogNone means no dialog is open.
	DialogNone DialogState = iota
	// DialogMenu is the signal-choice menu for a selected PID.
	DialogMenu
	// DialogConfirm is the yes/no confirmation before delivery.
	DialogConfirm
	// DialogResult shows the outcome of a delivered signal.
	DialogResult
)

// SignalDialog is the modal overlay state for sending a signal to a
// process, driven entirely by key transitions — never by collector
// ticks.
type SignalDialog struct {
	State   DialogState
	PID     int
	Signal  syscall.Signal
	Outcome string
}

// menuSignals maps the keys available in DialogMenu to the signal they
// choose, per the spec's key table (x opens the menu with SIGTERM as
// the implicit default; these are the explicit alternates).
var menuSignals = map[rune]syscall.Signal{
	'X': syscall.SIGKILL,
	'K': syscall.SIGKILL,
	'H': syscall.SIGHUP,
	'p': syscall.SIGSTOP,
	'c': syscall.SIGCONT,
}

// openMenu transitions into DialogMenu for pid, the 'x' key's action.
func openMenu(pid int) SignalDialog {
	return SignalDialog{State: DialogMenu, PID: pid, Signal: syscall.SIGTERM}
}

// choose transitions DialogMenu -> DialogConfirm with the signal bound
// to key, or leaves the dialog unchanged if key doesn't name one.
func (d SignalDialog) choose(key rune) (SignalDialog, bool) {
	if d.State != DialogMenu {
		return d, false
	}
	sig, ok := menuSignals[key]
	if !ok {
		return d, false
	}
	return SignalDialog{State: DialogConfirm, PID: d.PID, Signal: sig}, true
}

// confirm sends d.Signal to d.PID via a direct, non-blocking syscall —
// permitted on the render thread per the concurrency model, since it
// never waits on the target process — and returns the DialogResult
// state describing the outcome.
func (d SignalDialog) confirm(kill func(pid int, sig syscall.Signal) error) SignalDialog {
	err := kill(d.PID, d.Signal)
	outcome := "sent"
	if err != nil {
		outcome = fmt.Sprintf("failed: %v", err)
	}
	return SignalDialog{State: DialogResult, PID: d.PID, Signal: d.Signal, Outcome: outcome}
}

func defaultKill(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}
