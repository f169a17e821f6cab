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

package widget

import "github.com/charmbracelet/lipgloss"

// ColumnKind selects how a Column's width is computed.
type ColumnKind int

const (
	// ColumnLength gives the column a fixed cell width.
	ColumnLength ColumnKind = iota
	// ColumnPercentage gives the column a share of the table's width.
	ColumnPercentage
	// ColumnFill splits remaining width evenly among all Fill columns.
	ColumnFill
)

// Column is one Table column's header and width constraint.
type Column struct {
	Title string
	Kind  ColumnKind
	Value int // cell count for ColumnLength, 0-100 for ColumnPercentage
	Align Align
}

// Table is a header + scrollable row viewport, the workhorse widget for
// process lists and similar tabular panels.
type Table struct {
	Columns       []Column
	Rows          [][]string
	ShowHeader    bool
	HeaderStyle   lipgloss.Style
	RowStyle      lipgloss.Style
	SelectedStyle lipgloss.Style
	Selected      int // row index, -1 for none
	ScrollOffset  int // first visible row

	rect Rect
}

func (t *Table) Measure(avail Size) Size { return avail }

func (t *Table) Layout(rect Rect) { t.rect = rect }

// VisibleRows returns how many data rows fit given the header.
func (t *Table) VisibleRows() int {
	h := t.rect.H
	if t.ShowHeader {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Columns))
	remaining := t.rect.W
	fillCount := 0
	for i, col := range t.Columns {
		switch col.Kind {
		case ColumnLength:
			widths[i] = col.Value
			remaining -= col.Value
		case ColumnPercentage:
			w := t.rect.W * col.Value / 100
			widths[i] = w
			remaining -= w
		case ColumnFill:
			fillCount++
		}
	}
	if fillCount > 0 && remaining > 0 {
		each := remaining / fillCount
		extra := remaining % fillCount
		for i, col := range t.Columns {
			if col.Kind == ColumnFill {
				widths[i] = each
				if extra > 0 {
					widths[i]++
					extra--
				}
			}
		}
	}
	return widths
}

func (t *Table) Paint(c *Canvas) {
	if t.rect.W <= 0 || t.rect.H <= 0 || len(t.Columns) == 0 {
		return
	}
	widths := t.columnWidths()
	y := t.rect.Y

	if t.ShowHeader {
		x := t.rect.X
		for i, col := range t.Columns {
			c.WriteString(x, y, truncateToWidth(col.Title, widths[i]), t.HeaderStyle)
			x += widths[i]
		}
		y++
	}

	visible := t.VisibleRows()
	end := t.ScrollOffset + visible
	if end > len(t.Rows) {
		end = len(t.Rows)
	}
	for rowIdx := t.ScrollOffset; rowIdx < end; rowIdx++ {
		row := t.Rows[rowIdx]
		style := t.RowStyle
		if rowIdx == t.Selected {
			style = t.SelectedStyle
		}
		c.Fill(Rect{t.rect.X, y, t.rect.W, 1}, Cell{Rune: ' ', Style: style})
		x := t.rect.X
		for i := range t.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			c.WriteString(x, y, truncateToWidth(cell, widths[i]), style)
			x += widths[i]
		}
		y++
	}
}
