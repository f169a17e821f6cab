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

// Tabs is a single-row strip of selectable labels, separated by a
// divider rune, used for per-panel view switches (e.g. a disk panel's
// usage/io/treemap tabs).
type Tabs struct {
	Labels        []string
	Active        int
	Divider       rune
	Style         lipgloss.Style
	ActiveStyle   lipgloss.Style

	rect Rect
}

func (t *Tabs) Measure(avail Size) Size { return Size{W: avail.W, H: 1} }

func (t *Tabs) Layout(rect Rect) { t.rect = rect }

func (t *Tabs) Paint(c *Canvas) {
	if t.rect.W <= 0 || t.rect.H <= 0 {
		return
	}
	divider := t.Divider
	if divider == 0 {
		divider = '│'
	}
	x := t.rect.X
	for i, label := range t.Labels {
		style := t.Style
		if i == t.Active {
			style = t.ActiveStyle
		}
		text := " " + label + " "
		c.WriteString(x, t.rect.Y, text, style)
		x += len(text)
		if i < len(t.Labels)-1 {
			c.Set(x, t.rect.Y, Cell{Rune: divider, Style: t.Style})
			x++
		}
	}
}
