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

// Package snapshot defines the immutable Snapshot value produced by the
// collector goroutine each tick and the PartialResult lifecycle wrapper
// every streaming scalar field uses. A Snapshot is never mutated after
// publication; the main thread only ever replaces its held pointer.
package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// CPU aggregates processor utilization, temperature, frequency and load
// telemetry for one tick.
type CPU struct {
	TotalUtilization PartialResult[float64]
	PerCore          PartialResult[[]float64] // each in [0, 1]
	PerCoreTempC     PartialResult[[]float64]
	FreqMinMHz       PartialResult[float64]
	FreqMaxMHz       PartialResult[float64]
	Boost            bool
	LoadAvg1         float64
	LoadAvg5         float64
	LoadAvg15        float64
	UptimeSeconds    float64
	NumCores         int
}

// Memory aggregates RAM, swap and ZRAM telemetry for one tick.
type Memory struct {
	TotalBytes     uint64
	UsedBytes      uint64
	CachedBytes    uint64
	BufferedBytes  uint64
	FreeBytes      uint64
	SharedBytes    uint64
	SwapTotalBytes uint64
	SwapUsedBytes  uint64
	SwapActivityPS float64 // pages/s in+out
	ZRAMRatio      PartialResult[float64]
	PSIMemSome     PartialResult[float64]
	PSIMemFull     PartialResult[float64]
}

// MountUsage describes space usage for one mounted filesystem.
type MountUsage struct {
	MountPoint string
	Device     string
	FSType     string
	TotalBytes uint64
	UsedBytes  uint64
}

// DiskIO describes read/write rates and queue depth for one block device.
type DiskIO struct {
	Device        string
	ReadBytesPS   float64
	WriteBytesPS  float64
	ReadOpsPS     float64
	WriteOpsPS    float64
	EntropyEst    PartialResult[float64]
}

// Disk aggregates filesystem usage and device I/O for one tick.
type Disk struct {
	Mounts PartialResult[[]MountUsage]
	IO     PartialResult[[]DiskIO]
}

// NetIface describes one network interface's rates and error counters.
type NetIface struct {
	Name        string
	RxBytesPS   float64
	TxBytesPS   float64
	RxErrorsPS  float64
	TxErrorsPS  float64
	RxDropsPS   float64
	TxDropsPS   float64
}

// Protocol aggregates delta protocol counters (TCP/UDP/ICMP) for one tick.
type Protocol struct {
	TCPRetransPS float64
	TCPInSegsPS  float64
	UDPInPS      float64
	ICMPInPS     float64
}

// Network aggregates per-interface rates and protocol counters.
type Network struct {
	Interfaces PartialResult[[]NetIface]
	Protocols  PartialResult[Protocol]
}

// ProcessLocality classifies a connection endpoint.
type ProcessLocality int

const (
	// LocalityUnknown means locality could not be determined.
	LocalityUnknown ProcessLocality = iota
	// LocalityLocal is loopback, RFC 1918 private or link-local.
	LocalityLocal
	// LocalityRemote is any other routable address.
	LocalityRemote
)

// Connection describes one active or listening socket.
type Connection struct {
	LocalAddr  string
	RemoteAddr string
	State      string
	AgeSeconds float64
	PID        int
	Locality   ProcessLocality
}

// Process describes one row of the process table.
type Process struct {
	PID            int
	PPID           int
	State          string
	CPUPercent     float64
	RSSBytes       uint64
	Command        string
	Cgroup         string
	OOMScore       int
	Nice           int
	Threads        int
	StartTimeTicks uint64
}

// GPUProcessType distinguishes GPU workload kinds in the unified process
// schema shared by the NVIDIA and AMD discovery paths.
type GPUProcessType int

const (
	// GPUProcessCompute is a CUDA/ROCm compute workload.
	GPUProcessCompute GPUProcessType = iota
	// GPUProcessGraphics is a graphics/display workload.
	GPUProcessGraphics
)

// GPUProcess describes one process using a GPU device.
type GPUProcess struct {
	PID       int
	Command   string
	Type      GPUProcessType
	VRAMBytes uint64
}

// GPUDevice describes one GPU's utilization and telemetry.
type GPUDevice struct {
	Index        int
	Name         string
	UtilPercent  float64
	VRAMUsed     uint64
	VRAMTotal    uint64
	TempC        float64
	PowerWatts   float64
	Processes    []GPUProcess
}

// Sensor describes one hwmon reading.
type Sensor struct {
	Label string
	Kind  string // "temp", "fan", "in"
	Value float64
	Unit  string
}

// PSIDomainStats holds the some/full avg10 figures for one PSI resource.
type PSIDomainStats struct {
	Some10 float64
	Full10 float64
}

// PSI aggregates /proc/pressure/{cpu,memory,io} readings.
type PSI struct {
	CPU    PartialResult[PSIDomainStats]
	Memory PartialResult[PSIDomainStats]
	IO     PartialResult[PSIDomainStats]
}

// Battery describes charge state and runtime estimate.
type Battery struct {
	PercentCharge  float64
	Charging       bool
	TimeToFullMin  float64
	TimeToEmptyMin float64
}

// TreemapEntry describes one accumulated directory or file in a scan.
type TreemapEntry struct {
	Path  string
	Bytes uint64
}

// Treemap describes the state of a bounded-depth filesystem scan.
type Treemap struct {
	Entries      PartialResult[[]TreemapEntry]
	ScanProgress float64 // 0..1
}

// KernelInfo is a small set of sysctl values relevant to interpreting
// PSI and memory-overcommit readings elsewhere in the Snapshot.
type KernelInfo struct {
	Swappiness      int64
	OvercommitMemory int64
	PIDMax          int64
}

// Snapshot is the immutable bundle of all telemetry produced by one
// collector tick. It is produced wholly on the collector goroutine; the
// main thread only ever reads it.
type Snapshot struct {
	SeqID      uuid.UUID
	ProducedAt time.Time

	CPU         CPU
	Memory      Memory
	Disk        Disk
	Network     Network
	Connections PartialResult[[]Connection]
	Processes   PartialResult[[]Process]
	GPUs        PartialResult[[]GPUDevice]
	Sensors     PartialResult[[]Sensor]
	PSI         PSI
	Battery     PartialResult[Battery]
	Treemap     Treemap
	Kernel      PartialResult[KernelInfo]

	// Capabilities records which optional analyzers are present, so
	// display rules can gate panels without re-probing each frame.
	Capabilities Capabilities
}

// Capabilities records which optional subsystems were detected as
// available at startup.
type Capabilities struct {
	HasNvidia  bool
	HasAMDGPU  bool
	HasPSI     bool
	HasBattery bool
	HasSensors bool
}

// New returns an empty Snapshot with every field Pending, stamped with a
// fresh sequence id and the given production time.
func New(producedAt time.Time) *Snapshot {
	return &Snapshot{
		SeqID:      uuid.New(),
		ProducedAt: producedAt,
		CPU: CPU{
			TotalUtilization: ResultPending[float64](),
			PerCore:          ResultPending[[]float64](),
			PerCoreTempC:     ResultPending[[]float64](),
			FreqMinMHz:       ResultPending[float64](),
			FreqMaxMHz:       ResultPending[float64](),
		},
		Memory: Memory{
			ZRAMRatio:  ResultPending[float64](),
			PSIMemSome: ResultPending[float64](),
			PSIMemFull: ResultPending[float64](),
		},
		Disk: Disk{
			Mounts: ResultPending[[]MountUsage](),
			IO:     ResultPending[[]DiskIO](),
		},
		Network: Network{
			Interfaces: ResultPending[[]NetIface](),
			Protocols:  ResultPending[Protocol](),
		},
		Connections: ResultPending[[]Connection](),
		Processes:   ResultPending[[]Process](),
		GPUs:        ResultPending[[]GPUDevice](),
		Sensors:     ResultPending[[]Sensor](),
		PSI: PSI{
			CPU:    ResultPending[PSIDomainStats](),
			Memory: ResultPending[PSIDomainStats](),
			IO:     ResultPending[PSIDomainStats](),
		},
		Battery: ResultPending[Battery](),
		Treemap: Treemap{
			Entries: ResultPending[[]TreemapEntry](),
		},
		Kernel: ResultPending[KernelInfo](),
	}
}

// Clone returns a shallow copy of the Snapshot. Since a Snapshot is never
// mutated after publication, a shallow copy is sufficient for callers
// that need to hold a reference across an apply boundary.
func (s *Snapshot) Clone() *Snapshot {
	cp := *s
	return &cp
}

// MemoryAccountingOK reports whether used+cached+free is within the ±1%
// tolerance of total mandated by the memory accounting invariant.
func (m Memory) MemoryAccountingOK() bool {
	if m.TotalBytes == 0 {
		return true
	}
	sum := m.UsedBytes + m.CachedBytes + m.FreeBytes
	diff := float64(sum) - float64(m.TotalBytes)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 0.01*float64(m.TotalBytes)
}
