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

// List is a vertically scrolling, single-selection line list, used for
// things like the signal-menu dialog and panel pickers.
type List struct {
	Items         []string
	Selected      int
	ScrollOffset  int
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style

	rect Rect
}

func (l *List) Measure(avail Size) Size { return Size{W: avail.W, H: len(l.Items)} }

func (l *List) Layout(rect Rect) { l.rect = rect }

func (l *List) Paint(c *Canvas) {
	if l.rect.W <= 0 || l.rect.H <= 0 {
		return
	}
	end := l.ScrollOffset + l.rect.H
	if end > len(l.Items) {
		end = len(l.Items)
	}
	for i := l.ScrollOffset; i < end; i++ {
		y := l.rect.Y + (i - l.ScrollOffset)
		style := l.ItemStyle
		if i == l.Selected {
			style = l.SelectedStyle
		}
		c.Fill(Rect{l.rect.X, y, l.rect.W, 1}, Cell{Rune: ' ', Style: style})
		c.WriteString(l.rect.X, y, truncateToWidth(l.Items[i], l.rect.W), style)
	}
}

// EnsureVisible adjusts ScrollOffset so Selected is within the viewport.
func (l *List) EnsureVisible() {
	if l.Selected < l.ScrollOffset {
		l.ScrollOffset = l.Selected
	}
	if l.rect.H > 0 && l.Selected >= l.ScrollOffset+l.rect.H {
		l.ScrollOffset = l.Selected - l.rect.H + 1
	}
}
