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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Align is Paragraph's horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Paragraph wraps or truncates a block of text within its rect.
type Paragraph struct {
	Text  string
	Style lipgloss.Style
	Align Align
	Wrap  bool

	rect Rect
}

func (p *Paragraph) Measure(avail Size) Size {
	if !p.Wrap {
		return Size{W: runewidth.StringWidth(p.Text), H: 1}
	}
	lines := wrapText(p.Text, avail.W)
	return Size{W: avail.W, H: len(lines)}
}

func (p *Paragraph) Layout(rect Rect) { p.rect = rect }

func (p *Paragraph) Paint(c *Canvas) {
	if p.rect.W <= 0 || p.rect.H <= 0 {
		return
	}
	var lines []string
	if p.Wrap {
		lines = wrapText(p.Text, p.rect.W)
	} else {
		lines = []string{truncateToWidth(p.Text, p.rect.W)}
	}
	for i, line := range lines {
		if i >= p.rect.H {
			break
		}
		x := p.rect.X
		lw := runewidth.StringWidth(line)
		switch p.Align {
		case AlignCenter:
			x += max(0, (p.rect.W-lw)/2)
		case AlignRight:
			x += max(0, p.rect.W-lw)
		}
		c.WriteString(x, p.rect.Y+i, line, p.Style)
	}
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			if curWidth > 0 && curWidth+1+ww > width {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
			}
			if curWidth > 0 {
				cur.WriteByte(' ')
				curWidth++
			}
			cur.WriteString(w)
			curWidth += ww
		}
		lines = append(lines, cur.String())
	}
	return lines
}

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
