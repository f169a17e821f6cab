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
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ptop-project/ptop/pkg/snapshot"
	"github.com/ptop-project/ptop/pkg/theme"
	"github.com/ptop-project/ptop/pkg/widget"
)

// View satisfies tea.Model. Frame composition order follows the spec
// exactly: panels paint first, then overlays (focus hint is implicit
// in each panel's own border style, filter input, signal dialog, help,
// FPS) paint last so they sit above every panel.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	canvas := widget.NewCanvas(m.width, m.height)
	canvas.Fill(widget.Rect{X: 0, Y: 0, W: m.width, H: m.height}, widget.Cell{Rune: ' ', Style: lipgloss.NewStyle().Background(theme.ToLipgloss(theme.Default.Background))})

	rects := m.gridLayout()
	for name, rect := range rects {
		m.paintPanel(canvas, name, rect)
	}

	if m.exploded != "" {
		hint := "FULLSCREEN — Esc"
		canvas.WriteString(m.width-len(hint)-1, 0, hint, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Warn)))
	}

	if m.filterMode || m.filter != "" {
		m.paintFilterBar(canvas)
	}

	if m.dialog.State != DialogNone {
		m.paintDialog(canvas)
	}

	if m.showHelp {
		m.paintHelp(canvas)
	}

	if m.showFPS {
		stats := fmt.Sprintf("%.0f fps  p50=%s p95=%s p99=%s",
			m.fps,
			m.framePercentile(50).Round(time.Millisecond),
			m.framePercentile(95).Round(time.Millisecond),
			m.framePercentile(99).Round(time.Millisecond))
		canvas.WriteString(0, 0, stats, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted)))
	}

	return canvas.String()
}

func (m *Model) paintPanel(canvas *widget.Canvas, name string, rect widget.Rect) {
	block := widget.NewBlock(name)
	block.Style = lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Border))
	block.FocusStyle = lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.BorderFocus))
	block.Focused = name == m.focused
	block.Layout(rect)
	block.Paint(canvas)

	inner := block.Inner()
	content := canvas.WithClip(inner)

	switch name {
	case "process":
		m.paintProcessTable(content, inner)
	case "cpu":
		m.paintCPUPanel(content, inner)
	case "memory":
		m.paintMemoryPanel(content, inner)
	case "network":
		m.paintNetworkPanel(content, inner)
	case "disk":
		m.paintDiskPanel(content, inner)
	case "gpu":
		m.paintGPUPanel(content, inner)
	case "sensors":
		m.paintSensorsPanel(content, inner)
	case "psi":
		m.paintPSIPanel(content, inner)
	case "connections":
		m.paintConnectionsPanel(content, inner)
	case "files":
		m.paintFilesPanel(content, inner)
	default:
		placeholder := &widget.Paragraph{
			Text:  m.panelSummary(name),
			Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)),
			Wrap:  true,
		}
		placeholder.Layout(inner)
		placeholder.Paint(content)
	}
}

// panelSummary renders a one-line reason for panels with no dedicated
// renderer, e.g. a panel name from a config block that doesn't match any
// of ptop's built-in panels.
func (m *Model) panelSummary(name string) string {
	if m.snapshot == nil {
		return "waiting for first snapshot..."
	}
	return name
}

func (m *Model) paintWaiting(canvas *widget.Canvas, rect widget.Rect) {
	p := &widget.Paragraph{
		Text:  "waiting for first snapshot...",
		Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted)),
		Wrap:  true,
	}
	p.Layout(rect)
	p.Paint(canvas)
}

func (m *Model) paintEmpty(canvas *widget.Canvas, rect widget.Rect, text string) {
	p := &widget.Paragraph{
		Text:  text,
		Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted)),
		Wrap:  true,
	}
	p.Layout(rect)
	p.Paint(canvas)
}

// paintCPUPanel shows overall utilization as a gauge, EMA-smoothed
// per-core bars, and a sparkline of recent total-utilization history.
func (m *Model) paintCPUPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	total, ok := unwrap(m.snapshot.CPU.TotalUtilization)
	if !ok {
		m.paintWaiting(canvas, rect)
		return
	}

	y := rect.Y
	gaugeStyle := lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted))
	label := fmt.Sprintf("%3.0f%%", total*100)
	if m.hist.cpuOverloaded.Over() {
		label += " ⚠"
	}
	gauge := &widget.Gauge{Ratio: total, Label: label, EmptyStyle: gaugeStyle}
	gauge.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
	gauge.Paint(canvas)
	y++

	cores := m.hist.smoothedPerCore()
	if y < rect.Y+rect.H && len(cores) > 0 {
		barH := rect.H - 2
		if barH > len(cores) {
			barH = len(cores)
		}
		if barH > 0 {
			items := make([]widget.BarChartItem, barH)
			for i := 0; i < barH; i++ {
				items[i] = widget.BarChartItem{
					Label: fmt.Sprintf("c%d", i),
					Value: cores[i],
					Style: lipgloss.NewStyle().Foreground(theme.PercentColor(cores[i] * 100)),
				}
			}
			bar := &widget.BarChart{Items: items, MaxValue: 1}
			bar.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: barH})
			bar.Paint(canvas)
			y += barH
		}
	}

	if y < rect.Y+rect.H {
		spark := &widget.Sparkline{Samples: m.hist.cpuTotal.Slice(), Min: 0, Max: 1, Colored: true}
		spark.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		spark.Paint(canvas)
	}
}

// paintMemoryPanel shows a Used|Cached|Free stacked bar, a swap gauge,
// and a sparkline of recent used-ratio history.
func (m *Model) paintMemoryPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil || m.snapshot.Memory.TotalBytes == 0 {
		m.paintWaiting(canvas, rect)
		return
	}
	mem := m.snapshot.Memory
	y := rect.Y

	bar := &widget.StackedBar{
		Segments: []widget.StackedBarSegment{
			{Label: "used", Value: float64(mem.UsedBytes), Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Bad))},
			{Label: "cached", Value: float64(mem.CachedBytes), Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Good))},
			{Label: "free", Value: float64(mem.FreeBytes), Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted))},
		},
		Total: float64(mem.TotalBytes),
	}
	bar.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
	bar.Paint(canvas)
	y++

	if y < rect.Y+rect.H {
		line := fmt.Sprintf("%.1f/%.1fGB", float64(mem.UsedBytes)/(1<<30), float64(mem.TotalBytes)/(1<<30))
		if m.hist.memUnderPressure.Over() {
			line += " under pressure"
		}
		canvas.WriteString(rect.X, y, line, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
		y++
	}

	if mem.SwapTotalBytes > 0 && y < rect.Y+rect.H {
		swapRatio := float64(mem.SwapUsedBytes) / float64(mem.SwapTotalBytes)
		gauge := &widget.Gauge{Ratio: swapRatio, Label: fmt.Sprintf("swap %3.0f%%", swapRatio*100)}
		gauge.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		gauge.Paint(canvas)
		y++
	}

	if y < rect.Y+rect.H {
		spark := &widget.Sparkline{Samples: m.hist.memUsed.Slice(), Min: 0, Max: 1}
		spark.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		spark.Paint(canvas)
	}
}

// paintNetworkPanel lists per-interface rates and plots aggregate RX/TX
// sparklines, flagging a sudden RX spike the anomaly detector caught.
func (m *Model) paintNetworkPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	ifaces, ok := unwrap(m.snapshot.Network.Interfaces)
	if !ok || len(ifaces) == 0 {
		m.paintEmpty(canvas, rect, "no network interfaces")
		return
	}

	y := rect.Y
	for _, ifc := range ifaces {
		if y >= rect.Y+rect.H {
			break
		}
		line := fmt.Sprintf("%-8s rx %8s/s tx %8s/s", ifc.Name, humanRate(ifc.RxBytesPS), humanRate(ifc.TxBytesPS))
		canvas.WriteString(rect.X, y, line, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
		y++
	}

	if y < rect.Y+rect.H {
		rxLabel := "rx    "
		rxStyle := lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground))
		if m.hist.netRxAnomalous {
			rxLabel = "rx ⚠  "
			rxStyle = lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Warn))
		}
		canvas.WriteString(rect.X, y, rxLabel, rxStyle)
		spark := &widget.Sparkline{Samples: m.hist.netRx.Slice(), Colored: true}
		spark.Layout(widget.Rect{X: rect.X + len(rxLabel), Y: y, W: max0(rect.W - len(rxLabel)), H: 1})
		spark.Paint(canvas)
		y++
	}
	if y < rect.Y+rect.H {
		canvas.WriteString(rect.X, y, "tx    ", lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
		spark := &widget.Sparkline{Samples: m.hist.netTx.Slice(), Colored: true}
		spark.Layout(widget.Rect{X: rect.X + 6, Y: y, W: max0(rect.W - 6), H: 1})
		spark.Paint(canvas)
	}
}

// paintDiskPanel switches between the usage and I/O tabs ('v' cycles
// while disk is focused), showing mount fill gauges with a trend-based
// fill ETA, or per-device throughput bars and an aggregate sparkline.
func (m *Model) paintDiskPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	tabs := &widget.Tabs{
		Labels:      []string{"usage", "io"},
		Active:      m.diskTab,
		Style:       lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted)),
		ActiveStyle: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.BorderFocus)).Bold(true),
	}
	tabs.Layout(widget.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: 1})
	tabs.Paint(canvas)

	body := widget.Rect{X: rect.X, Y: rect.Y + 1, W: rect.W, H: rect.H - 1}
	if m.diskTab == 1 {
		m.paintDiskIO(canvas, body)
		return
	}
	m.paintDiskUsage(canvas, body)
}

func (m *Model) paintDiskUsage(canvas *widget.Canvas, rect widget.Rect) {
	mounts, ok := unwrap(m.snapshot.Disk.Mounts)
	if !ok || len(mounts) == 0 {
		m.paintEmpty(canvas, rect, "no mounts detected")
		return
	}
	y := rect.Y
	for _, mnt := range mounts {
		if y >= rect.Y+rect.H || mnt.TotalBytes == 0 {
			continue
		}
		ratio := float64(mnt.UsedBytes) / float64(mnt.TotalBytes)
		label := fmt.Sprintf("%s %3.0f%%", mnt.MountPoint, ratio*100)
		if eta, ok := m.hist.mountETA(mnt.MountPoint, ratio); ok {
			label += fmt.Sprintf(" full in ~%s", eta.Round(time.Minute))
		}
		gauge := &widget.Gauge{Ratio: ratio, Label: label}
		gauge.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		gauge.Paint(canvas)
		y++
	}
}

func (m *Model) paintDiskIO(canvas *widget.Canvas, rect widget.Rect) {
	ioList, ok := unwrap(m.snapshot.Disk.IO)
	if !ok || len(ioList) == 0 {
		m.paintEmpty(canvas, rect, "no I/O stats")
		return
	}
	barH := rect.H - 1
	if barH > len(ioList) {
		barH = len(ioList)
	}
	if barH > 0 {
		items := make([]widget.BarChartItem, barH)
		for i := 0; i < barH; i++ {
			d := ioList[i]
			items[i] = widget.BarChartItem{
				Label: d.Device,
				Value: d.ReadBytesPS + d.WriteBytesPS,
				Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Good)),
			}
		}
		bar := &widget.BarChart{Items: items}
		bar.Layout(widget.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: barH})
		bar.Paint(canvas)
	}
	if rect.H > barH {
		spark := &widget.Sparkline{Samples: m.hist.diskBusy.Slice()}
		spark.Layout(widget.Rect{X: rect.X, Y: rect.Y + barH, W: rect.W, H: 1})
		spark.Paint(canvas)
	}
}

// paintGPUPanel shows one utilization gauge and one VRAM gauge per
// detected device.
func (m *Model) paintGPUPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	gpus, ok := unwrap(m.snapshot.GPUs)
	if !ok || len(gpus) == 0 {
		m.paintEmpty(canvas, rect, "no GPU detected")
		return
	}
	y := rect.Y
	for _, g := range gpus {
		if y >= rect.Y+rect.H {
			break
		}
		gauge := &widget.Gauge{Ratio: g.UtilPercent, Label: fmt.Sprintf("%s %3.0f%%", g.Name, g.UtilPercent*100)}
		gauge.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		gauge.Paint(canvas)
		y++
		if y < rect.Y+rect.H && g.VRAMTotal > 0 {
			ratio := float64(g.VRAMUsed) / float64(g.VRAMTotal)
			vram := &widget.Gauge{Ratio: ratio, Label: fmt.Sprintf("vram %.1f/%.1fGB", float64(g.VRAMUsed)/(1<<30), float64(g.VRAMTotal)/(1<<30))}
			vram.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
			vram.Paint(canvas)
			y++
		}
	}
}

// paintSensorsPanel cycles ('v' while sensors is focused) between hwmon
// readings, battery state, and a handful of PSI-relevant sysctls.
func (m *Model) paintSensorsPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	tabs := &widget.Tabs{
		Labels:      []string{"sensors", "battery", "kernel"},
		Active:      m.sensorsTab,
		Style:       lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Muted)),
		ActiveStyle: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.BorderFocus)).Bold(true),
	}
	tabs.Layout(widget.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: 1})
	tabs.Paint(canvas)

	body := widget.Rect{X: rect.X, Y: rect.Y + 1, W: rect.W, H: rect.H - 1}
	switch m.sensorsTab {
	case 1:
		m.paintBattery(canvas, body)
	case 2:
		m.paintKernel(canvas, body)
	default:
		m.paintSensorList(canvas, body)
	}
}

func (m *Model) paintSensorList(canvas *widget.Canvas, rect widget.Rect) {
	sensors, ok := unwrap(m.snapshot.Sensors)
	if !ok || len(sensors) == 0 {
		m.paintEmpty(canvas, rect, "no sensors detected")
		return
	}
	items := make([]string, len(sensors))
	for i, s := range sensors {
		items[i] = fmt.Sprintf("%-16s %6.1f%s", s.Label, s.Value, s.Unit)
	}
	list := &widget.List{Items: items, Selected: -1, ItemStyle: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground))}
	list.Layout(rect)
	list.Paint(canvas)
}

func (m *Model) paintBattery(canvas *widget.Canvas, rect widget.Rect) {
	b, ok := unwrap(m.snapshot.Battery)
	if !ok {
		m.paintEmpty(canvas, rect, "no battery detected")
		return
	}
	gauge := &widget.Gauge{Ratio: b.PercentCharge / 100}
	gauge.Layout(widget.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: 1})
	gauge.Paint(canvas)

	if rect.H > 1 {
		status, eta := "discharging", b.TimeToEmptyMin
		if b.Charging {
			status, eta = "charging", b.TimeToFullMin
		}
		canvas.WriteString(rect.X, rect.Y+1, fmt.Sprintf("%s, %.0fm remaining", status, eta),
			lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
	}
}

func (m *Model) paintKernel(canvas *widget.Canvas, rect widget.Rect) {
	k, ok := unwrap(m.snapshot.Kernel)
	if !ok {
		m.paintEmpty(canvas, rect, "kernel info unavailable")
		return
	}
	lines := []string{
		fmt.Sprintf("swappiness        %d", k.Swappiness),
		fmt.Sprintf("overcommit_memory %d", k.OvercommitMemory),
		fmt.Sprintf("pid_max           %d", k.PIDMax),
	}
	for i, line := range lines {
		if i >= rect.H {
			break
		}
		canvas.WriteString(rect.X, rect.Y+i, line, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
	}
}

// paintPSIPanel shows one gauge per pressure domain, some/full avg10.
func (m *Model) paintPSIPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	domains := []struct {
		label string
		res   snapshot.PartialResult[snapshot.PSIDomainStats]
	}{
		{"cpu", m.snapshot.PSI.CPU},
		{"mem", m.snapshot.PSI.Memory},
		{"io", m.snapshot.PSI.IO},
	}
	y := rect.Y
	for _, d := range domains {
		if y >= rect.Y+rect.H {
			break
		}
		st, ok := unwrap(d.res)
		if !ok {
			continue
		}
		gauge := &widget.Gauge{
			Ratio: st.Some10 / 100,
			Label: fmt.Sprintf("%-4s some %4.1f%% full %4.1f%%", d.label, st.Some10, st.Full10),
		}
		gauge.Layout(widget.Rect{X: rect.X, Y: y, W: rect.W, H: 1})
		gauge.Paint(canvas)
		y++
	}
	if y == rect.Y {
		m.paintEmpty(canvas, rect, "PSI unavailable on this kernel")
	}
}

// paintConnectionsPanel lists active/listening sockets.
func (m *Model) paintConnectionsPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	conns, ok := unwrap(m.snapshot.Connections)
	if !ok || len(conns) == 0 {
		m.paintEmpty(canvas, rect, "no active connections")
		return
	}
	items := make([]string, len(conns))
	for i, c := range conns {
		items[i] = fmt.Sprintf("%-6s %-21s -> %-21s", c.State, c.LocalAddr, c.RemoteAddr)
	}
	list := &widget.List{Items: items, Selected: -1, ItemStyle: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground))}
	list.Layout(rect)
	list.Paint(canvas)
}

// paintFilesPanel shows the bounded-depth scan's progress and its
// largest entries so far, largest first.
func (m *Model) paintFilesPanel(canvas *widget.Canvas, rect widget.Rect) {
	if m.snapshot == nil {
		m.paintWaiting(canvas, rect)
		return
	}
	tm := m.snapshot.Treemap
	gauge := &widget.Gauge{Ratio: tm.ScanProgress, Label: fmt.Sprintf("scan %3.0f%%", tm.ScanProgress*100)}
	gauge.Layout(widget.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: 1})
	gauge.Paint(canvas)

	entries, ok := unwrap(tm.Entries)
	if !ok || len(entries) == 0 {
		return
	}
	sorted := append([]snapshot.TreemapEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Bytes > sorted[j].Bytes })

	n := rect.H - 1
	if n > len(sorted) {
		n = len(sorted)
	}
	if n <= 0 {
		return
	}
	items := make([]widget.BarChartItem, n)
	for i := 0; i < n; i++ {
		items[i] = widget.BarChartItem{
			Label: sorted[i].Path,
			Value: float64(sorted[i].Bytes),
			Style: lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)),
		}
	}
	bar := &widget.BarChart{Items: items}
	bar.Layout(widget.Rect{X: rect.X, Y: rect.Y + 1, W: rect.W, H: n})
	bar.Paint(canvas)
}

func humanRate(bytesPS float64) string {
	switch {
	case bytesPS >= 1<<20:
		return fmt.Sprintf("%.1fMB", bytesPS/(1<<20))
	case bytesPS >= 1<<10:
		return fmt.Sprintf("%.1fKB", bytesPS/(1<<10))
	default:
		return fmt.Sprintf("%.0fB", bytesPS)
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (m *Model) paintProcessTable(canvas *widget.Canvas, rect widget.Rect) {
	rows := m.currentProcessRows()
	tableRows := make([][]string, len(rows))
	for i, p := range rows {
		tableRows[i] = []string{
			fmt.Sprintf("%d", p.PID),
			fmt.Sprintf("%5.1f", p.CPUPercent),
			fmt.Sprintf("%d", p.RSSBytes/1024/1024),
			p.Cgroup,
			p.Command,
		}
	}
	tbl := &widget.Table{
		Columns: []widget.Column{
			{Title: "PID", Kind: widget.ColumnLength, Value: 8},
			{Title: "CPU%", Kind: widget.ColumnLength, Value: 7},
			{Title: "MEM MB", Kind: widget.ColumnLength, Value: 9},
			{Title: "CGROUP", Kind: widget.ColumnLength, Value: 16},
			{Title: "CMD", Kind: widget.ColumnFill},
		},
		Rows:          tableRows,
		ShowHeader:    true,
		HeaderStyle:   lipgloss.NewStyle().Bold(true),
		RowStyle:      lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		Selected:      m.selectedRow,
	}
	tbl.Layout(rect)
	tbl.Paint(canvas)
}

func (m *Model) paintFilterBar(canvas *widget.Canvas) {
	y := m.height - 1
	text := "/" + m.filter
	canvas.WriteString(0, y, text, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
}

func (m *Model) paintDialog(canvas *widget.Canvas) {
	w, h := 40, 5
	x, y := (m.width-w)/2, (m.height-h)/2
	rect := widget.Rect{X: x, Y: y, W: w, H: h}

	clear := &widget.Clear{Style: lipgloss.NewStyle().Background(theme.ToLipgloss(theme.Default.Background))}
	clear.Layout(rect)
	clear.Paint(canvas)

	block := widget.NewBlock("signal")
	block.Style = lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.BorderFocus))
	block.Layout(rect)
	block.Paint(canvas)

	text := m.dialogText()
	p := &widget.Paragraph{Text: text, Wrap: true, Align: widget.AlignCenter}
	p.Layout(block.Inner())
	p.Paint(canvas.WithClip(block.Inner()))
}

func (m *Model) dialogText() string {
	switch m.dialog.State {
	case DialogMenu:
		return fmt.Sprintf("pid %d: X/K=KILL H=HUP p=STOP c=CONT Y=TERM", m.dialog.PID)
	case DialogConfirm:
		return fmt.Sprintf("send %s to pid %d? Y/n", m.dialog.Signal, m.dialog.PID)
	case DialogResult:
		return fmt.Sprintf("pid %d: %s", m.dialog.PID, m.dialog.Outcome)
	default:
		return ""
	}
}

func (m *Model) paintHelp(canvas *widget.Canvas) {
	w, h := 50, 14
	x, y := (m.width-w)/2, (m.height-h)/2
	rect := widget.Rect{X: x, Y: y, W: w, H: h}

	clear := &widget.Clear{Style: lipgloss.NewStyle().Background(theme.ToLipgloss(theme.Default.Background))}
	clear.Layout(rect)
	clear.Paint(canvas)

	block := widget.NewBlock("help")
	block.Layout(rect)
	block.Paint(canvas)

	lines := []string{
		"tab/h/l   move focus",
		"j/k       move selection",
		"enter/z   explode panel",
		"1-9/0     toggle/reset panels",
		"t         toggle tree view",
		"s/S       cycle sort / reverse",
		"//f       filter processes",
		"x         signal menu",
		"v         cycle disk/sensors tab",
		"?         toggle this help",
		"q         quit",
	}
	inner := block.Inner()
	content := canvas.WithClip(inner)
	for i, line := range lines {
		content.WriteString(inner.X, inner.Y+i, line, lipgloss.NewStyle().Foreground(theme.ToLipgloss(theme.Default.Foreground)))
	}
}
