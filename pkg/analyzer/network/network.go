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

// Package network analyzes /proc/net/dev interface counters and
// /proc/net/snmp protocol counters into per-tick rates.
package network

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	defaultInterval = time.Second
	defaultBudget   = 50 * time.Millisecond
)

type ifaceCounters struct {
	rxBytes, txBytes, rxErrs, txErrs, rxDrop, txDrop uint64
}

type protoCounters struct {
	tcpRetrans, tcpInSegs, udpIn, icmpIn uint64
}

// Analyzer implements analyzer.Analyzer for network interface rates and
// protocol counters.
type Analyzer struct {
	fs procfs.FS

	prevIface map[string]ifaceCounters
	prevProto protoCounters
	prevAt    time.Time
	hasPrev   bool

	interfaces analyzer.Tracker[[]snapshot.NetIface]
	protocols  analyzer.Tracker[snapshot.Protocol]
}

// New constructs a network analyzer reading from the default procfs
// mount.
func New() *Analyzer {
	fs, _ := procfs.NewDefaultFS()
	return &Analyzer{fs: fs, prevIface: map[string]ifaceCounters{}}
}

// Name implements analyzer.Analyzer.
func (a *Analyzer) Name() string { return "network" }

// Available implements analyzer.Analyzer.
func (a *Analyzer) Available() bool {
	_, err := a.fs.NetDev()
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

	netDev, err := a.fs.NetDev()
	if err != nil {
		a.interfaces.Failure()
		return fmt.Errorf("read /proc/net/dev: %w", err)
	}

	names := make([]string, 0, len(netDev))
	for name := range netDev {
		if name == "lo" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	elapsed := time.Duration(0)
	if a.hasPrev {
		elapsed = now.Sub(a.prevAt)
	}

	rows := make([]snapshot.NetIface, 0, len(names))
	for _, name := range names {
		line := netDev[name]
		cur := ifaceCounters{
			rxBytes: line.RxBytes, txBytes: line.TxBytes,
			rxErrs: line.RxErrors, txErrs: line.TxErrors,
			rxDrop: line.RxDropped, txDrop: line.TxDropped,
		}
		prev, ok := a.prevIface[name]
		a.prevIface[name] = cur
		if !ok || elapsed <= 0 {
			continue
		}
		secs := elapsed.Seconds()
		rows = append(rows, snapshot.NetIface{
			Name:       name,
			RxBytesPS:  rate(cur.rxBytes, prev.rxBytes, secs),
			TxBytesPS:  rate(cur.txBytes, prev.txBytes, secs),
			RxErrorsPS: rate(cur.rxErrs, prev.rxErrs, secs),
			TxErrorsPS: rate(cur.txErrs, prev.txErrs, secs),
			RxDropsPS:  rate(cur.rxDrop, prev.rxDrop, secs),
			TxDropsPS:  rate(cur.txDrop, prev.txDrop, secs),
		})
	}
	if len(rows) > 0 || !a.hasPrev {
		a.interfaces.Success(rows, now)
	}

	if proto, err := readProtocolCounters(); err == nil {
		if a.hasPrev && elapsed > 0 {
			secs := elapsed.Seconds()
			a.protocols.Success(snapshot.Protocol{
				TCPRetransPS: rate(proto.tcpRetrans, a.prevProto.tcpRetrans, secs),
				TCPInSegsPS:  rate(proto.tcpInSegs, a.prevProto.tcpInSegs, secs),
				UDPInPS:      rate(proto.udpIn, a.prevProto.udpIn, secs),
				ICMPInPS:     rate(proto.icmpIn, a.prevProto.icmpIn, secs),
			}, now)
		}
		a.prevProto = proto
	} else {
		a.protocols.Failure()
	}

	a.prevAt = now
	a.hasPrev = true
	return nil
}

// WriteSnapshot implements analyzer.Analyzer.
func (a *Analyzer) WriteSnapshot(s *snapshot.Snapshot) {
	now := time.Now()
	s.Network.Interfaces = a.interfaces.Result(now)
	s.Network.Protocols = a.protocols.Result(now)
}

func rate(cur, prev uint64, secs float64) float64 {
	if secs <= 0 || cur < prev {
		return 0
	}
	return float64(cur-prev) / secs
}

var netSNMPPath = "/proc/net/snmp"

// readProtocolCounters parses the two-line-per-protocol layout of
// /proc/net/snmp: a header line naming fields, followed by a data line
// with matching positional values.
//
//	Tcp: RtoAlgorithm RtoMin ... RetransSegs InSegs ...
//	Tcp: 1 200 ... 42 918273 ...
func readProtocolCounters() (protoCounters, error) {
	b, err := os.ReadFile(netSNMPPath)
	if err != nil {
		return protoCounters{}, fmt.Errorf("read %s: %w", netSNMPPath, err)
	}

	fields := parseSNMPBlocks(string(b))
	return protoCounters{
		tcpRetrans: fields["Tcp"]["RetransSegs"],
		tcpInSegs:  fields["Tcp"]["InSegs"],
		udpIn:      fields["Udp"]["InDatagrams"],
		icmpIn:     fields["Icmp"]["InMsgs"],
	}, nil
}

func parseSNMPBlocks(content string) map[string]map[string]uint64 {
	out := map[string]map[string]uint64{}
	lines := strings.Split(content, "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		header := strings.Fields(lines[i])
		values := strings.Fields(lines[i+1])
		if len(header) == 0 || len(values) != len(header) {
			continue
		}
		proto := strings.TrimSuffix(header[0], ":")
		row := map[string]uint64{}
		for j := 1; j < len(header); j++ {
			v, err := strconv.ParseUint(values[j], 10, 64)
			if err != nil {
				continue
			}
			row[header[j]] = v
		}
		out[proto] = row
	}
	return out
}
