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

// BorderStyle selects which box-drawing set Block uses.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota
	BorderDouble
	BorderSharp
	BorderNone
)

type borderGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var borderGlyphSets = map[BorderStyle]borderGlyphs{
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	BorderSharp:   {'┌', '┐', '└', '┘', '─', '│'},
}

// Block is the panel-chrome atom: an optional titled border around a
// content area. Every panel organism starts by asking a Block for its
// inner rect and painting its own content there.
type Block struct {
	Title       string
	Border      BorderStyle
	Focused     bool
	Style       lipgloss.Style
	FocusStyle  lipgloss.Style

	rect Rect
}

// NewBlock returns a Block with a rounded border and the default theme
// colors; callers override fields directly.
func NewBlock(title string) *Block {
	return &Block{Title: title, Border: BorderRounded}
}

func (b *Block) Measure(avail Size) Size { return avail }

func (b *Block) Layout(rect Rect) { b.rect = rect }

// Inner returns the content rect remaining after the border (or the
// full rect unchanged for BorderNone).
func (b *Block) Inner() Rect {
	if b.Border == BorderNone {
		return b.rect
	}
	return b.rect.Inset(1)
}

func (b *Block) Paint(c *Canvas) {
	style := b.Style
	if b.Focused {
		style = b.FocusStyle
	}
	c.Fill(b.rect, Cell{Rune: ' ', Style: style})

	if b.Border == BorderNone || b.rect.W < 2 || b.rect.H < 2 {
		return
	}
	g := borderGlyphSets[b.Border]
	r := b.rect
	c.Set(r.X, r.Y, Cell{Rune: g.tl, Style: style})
	c.Set(r.X+r.W-1, r.Y, Cell{Rune: g.tr, Style: style})
	c.Set(r.X, r.Y+r.H-1, Cell{Rune: g.bl, Style: style})
	c.Set(r.X+r.W-1, r.Y+r.H-1, Cell{Rune: g.br, Style: style})
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		c.Set(x, r.Y, Cell{Rune: g.h, Style: style})
		c.Set(x, r.Y+r.H-1, Cell{Rune: g.h, Style: style})
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		c.Set(r.X, y, Cell{Rune: g.v, Style: style})
		c.Set(r.X+r.W-1, y, Cell{Rune: g.v, Style: style})
	}

	if b.Title != "" && r.W > 4 {
		title := " " + b.Title + " "
		maxLen := r.W - 2
		if len(title) > maxLen {
			title = title[:maxLen]
		}
		c.WriteString(r.X+1, r.Y, title, style)
	}
}
