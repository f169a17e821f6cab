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

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestTableColumnWidthsLengthPercentageFill(t *testing.T) {
	tbl := &Table{Columns: []Column{
		{Title: "PID", Kind: ColumnLength, Value: 6},
		{Title: "CPU%", Kind: ColumnPercentage, Value: 20},
		{Title: "CMD", Kind: ColumnFill},
	}}
	tbl.Layout(Rect{0, 0, 40, 5})
	widths := tbl.columnWidths()
	require.Equal(t, 6, widths[0])
	require.Equal(t, 8, widths[1])
	require.Equal(t, 26, widths[2])
}

func TestTableVisibleRowsAccountsForHeader(t *testing.T) {
	tbl := &Table{ShowHeader: true}
	tbl.Layout(Rect{0, 0, 10, 5})
	require.Equal(t, 4, tbl.VisibleRows())
}

func TestTablePaintRespectsScrollOffset(t *testing.T) {
	tbl := &Table{
		Columns: []Column{{Title: "n", Kind: ColumnFill}},
		Rows:    [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		ScrollOffset: 2,
	}
	tbl.Layout(Rect{0, 0, 5, 2})
	c := NewCanvas(5, 2)
	tbl.Paint(c)
	require.Equal(t, 'c', c.cells[0].Rune)
	require.Equal(t, 'd', c.cells[5].Rune)
}

func TestTableSelectedRowGetsSelectedStyle(t *testing.T) {
	selStyle := lipgloss.NewStyle().Reverse(true)
	tbl := &Table{
		Columns:       []Column{{Title: "n", Kind: ColumnFill}},
		Rows:          [][]string{{"a"}, {"b"}},
		Selected:      1,
		SelectedStyle: selStyle,
	}
	tbl.Layout(Rect{0, 0, 5, 2})
	c := NewCanvas(5, 2)
	tbl.Paint(c)
	require.Equal(t, selStyle, c.cells[5].Style)
}
