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

package cliapp

import (
	"time"

	"github.com/google/uuid"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

// deterministicSeqID is fixed so --deterministic runs never differ by
// sequence id alone.
var deterministicSeqID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// deterministicSnapshot builds the fixed synthetic snapshot used by
// --deterministic mode: timestamp-free, identical on every run, so
// --render-once output can be golden-file compared byte for byte.
func deterministicSnapshot() *snapshot.Snapshot {
	perCore := []float64{0.45, 0.32, 0.67, 0.12, 0.89, 0.23, 0.56, 0.78}
	var total float64
	for _, c := range perCore {
		total += c
	}
	total /= float64(len(perCore))

	const gb = 1 << 30
	memTotal := uint64(32.0 * gb)
	memUsed := uint64(18.2 * gb)

	s := &snapshot.Snapshot{
		SeqID:      deterministicSeqID,
		ProducedAt: time.Unix(0, 0).UTC(),
		CPU: snapshot.CPU{
			TotalUtilization: snapshot.ResultReady(total),
			PerCore:          snapshot.ResultReady(perCore),
			PerCoreTempC:     snapshot.ResultReady(make([]float64, len(perCore))),
			FreqMinMHz:       snapshot.ResultReady(800.0),
			FreqMaxMHz:       snapshot.ResultReady(4200.0),
			LoadAvg1:         1.23,
			LoadAvg5:         0.98,
			LoadAvg15:        0.87,
			UptimeSeconds:    3600,
			NumCores:         len(perCore),
		},
		Memory: snapshot.Memory{
			TotalBytes:     memTotal,
			UsedBytes:      memUsed,
			CachedBytes:    uint64(4.0 * gb),
			BufferedBytes:  uint64(1.0 * gb),
			FreeBytes:      memTotal - memUsed - uint64(5.0*gb),
			SwapTotalBytes: uint64(8.0 * gb),
			SwapUsedBytes:  0,
			ZRAMRatio:      snapshot.ResultReady(0.0),
			PSIMemSome:     snapshot.ResultReady(0.0),
			PSIMemFull:     snapshot.ResultReady(0.0),
		},
		Disk: snapshot.Disk{
			Mounts: snapshot.ResultReady([]snapshot.MountUsage{}),
			IO:     snapshot.ResultReady([]snapshot.DiskIO{}),
		},
		Network: snapshot.Network{
			Interfaces: snapshot.ResultReady([]snapshot.NetIface{
				{Name: "eth0", RxBytesPS: 1.2 * (1 << 20), TxBytesPS: 345 * (1 << 10)},
			}),
			Protocols: snapshot.ResultReady(snapshot.Protocol{}),
		},
		Connections: snapshot.ResultReady([]snapshot.Connection{}),
		Processes:   snapshot.ResultReady(deterministicProcesses()),
		GPUs:        snapshot.ResultReady([]snapshot.GPUDevice{}),
		Sensors:     snapshot.ResultReady([]snapshot.Sensor{}),
		PSI: snapshot.PSI{
			CPU:    snapshot.ResultReady(snapshot.PSIDomainStats{}),
			Memory: snapshot.ResultReady(snapshot.PSIDomainStats{}),
			IO:     snapshot.ResultReady(snapshot.PSIDomainStats{}),
		},
		Battery: snapshot.ResultReady(snapshot.Battery{}),
		Kernel:  snapshot.ResultReady(snapshot.KernelInfo{Swappiness: 60, OvercommitMemory: 0, PIDMax: 32768}),
	}
	return s
}

func deterministicProcesses() []snapshot.Process {
	return []snapshot.Process{
		{PID: 1, PPID: 0, Command: "init", CPUPercent: 0.1, RSSBytes: 4 * (1 << 20)},
		{PID: 100, PPID: 1, Command: "ptop", CPUPercent: 2.3, RSSBytes: 32 * (1 << 20)},
		{PID: 200, PPID: 1, Command: "sshd", CPUPercent: 0.0, RSSBytes: 8 * (1 << 20)},
	}
}
