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

package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	require.InDelta(t, 100, rate(1100, 1000, 1.0), 1e-9)
	require.Zero(t, rate(900, 1000, 1.0))
	require.Zero(t, rate(1100, 1000, 0))
}

func TestReadProtocolCounters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snmp")
	content := "Tcp: RtoAlgorithm RtoMin RetransSegs InSegs\n" +
		"Tcp: 1 200 42 918273\n" +
		"Udp: InDatagrams NoPorts\n" +
		"Udp: 555 3\n" +
		"Icmp: InMsgs InErrors\n" +
		"Icmp: 10 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	old := netSNMPPath
	netSNMPPath = path
	defer func() { netSNMPPath = old }()

	proto, err := readProtocolCounters()
	require.NoError(t, err)
	require.Equal(t, uint64(42), proto.tcpRetrans)
	require.Equal(t, uint64(918273), proto.tcpInSegs)
	require.Equal(t, uint64(555), proto.udpIn)
	require.Equal(t, uint64(10), proto.icmpIn)
}
