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

// Package connections analyzes /proc/net/{tcp,tcp6} into the active and
// listening socket table, classifying each endpoint's locality.
package connections

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = 2 * time.Second
	defaultBudget   = 100 * time.Millisecond
)

// tcpStateNames mirrors the kernel's enum order in net/tcp_states.h, the
// same order procfs.NetTCPLine.St is reported in.
var tcpStateNames = []string{
	"UNKNOWN", "ESTABLISHED", "SYN_SENT", "SYN_RECV", "FIN_WAIT1",
	"FIN_WAIT2", "TIME_WAIT", "CLOSE", "CLOSE_WAIT", "LAST_ACK",
	"LISTEN", "CLOSING",
}

// Analyzer implements analyzer.Analyzer for the active connection table.
type Analyzer struct {
	fs procfs.FS

	conns analyzer.Tracker[[]snapshot.Connection]
}

// New constructs a connections analyzer reading from the default procfs
// mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "connections" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := a.fs.NetTCP()
	return err == nil
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
	now := time.Now()

	var rows []snapshot.Connection
	tcp4, err := a.fs.NetTCP()
	if err != nil {
		a.conns.Failure()
		return fmt.Errorf("read /proc/net/tcp: %w", err)
	}
	rows = append(rows, toConnections(tcp4)...)

	if tcp6, err := a.fs.NetTCP6(); err == nil {
		rows = append(rows, toConnections(tcp6)...)
	}

	a.conns.Success(rows, now)
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	s.Connections = a.conns.Result(time.Now())
}

// toConnections converts raw socket table rows. /proc/net/tcp carries an
// inode, not a PID; resolving the owning process means walking every
// /proc/<pid>/fd symlink table, which no analyzer in this tree does.
// PID is left at zero here; DESIGN.md records this as an open question.
func toConnections(lines procfs.NetTCP) []snapshot.Connection {
	out := make([]snapshot.Connection, 0, len(lines))
	for _, l := range lines {
		out = append(out, snapshot.Connection{
			LocalAddr:  fmt.Sprintf("%s:%d", l.LocalAddr, l.LocalPort),
			RemoteAddr: fmt.Sprintf("%s:%d", l.RemAddr, l.RemPort),
			State:      stateName(l.St),
			Locality:   classify(l.RemAddr),
		})
	}
	return out
}

func stateName(st uint64) string {
	if int(st) < len(tcpStateNames) {
		return tcpStateNames[st]
	}
	return "UNKNOWN"
}

func classify(addr net.IP) snapshot.ProcessLocality {
	if addr == nil {
		return snapshot.LocalityUnknown
	}
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() {
		return snapshot.LocalityLocal
	}
	if addr.IsUnspecified() {
		return snapshot.LocalityUnknown
	}
	return snapshot.LocalityRemote
}
