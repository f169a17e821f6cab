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

// Package widget implements ptop's terminal rendering primitives: a
// clip-enforcing cell canvas and the widget set built on top of it.
// Every cell write a widget makes goes through Canvas.Set, directly or
// via Fill and WriteString, so every widget draws through the same
// clipping and no-bleed guarantees; molecules and
// organisms compose atomic widgets rather than writing cells directly.
package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rect is an axis-aligned terminal region in character cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n cells on every side, clamping to zero size.
func (r Rect) Inset(n int) Rect {
	w := r.W - 2*n
	h := r.H - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Size is an intrinsic width/height a widget asks for during Measure.
type Size struct {
	W, H int
}

// Cell is one terminal character position: a rune plus the style it's
// painted with.
type Cell struct {
	Rune  rune
	Style lipgloss.Style
}

// Canvas is a row-major cell grid with a clip rectangle. Any Set call
// whose coordinates fall outside the clip rect is silently dropped,
// which is what enforces the "no bleed outside a panel's rect" rule.
type Canvas struct {
	w, h  int
	cells []Cell
	clip  Rect
}

// NewCanvas allocates a w x h canvas, initially clipped to its own
// full bounds and filled with spaces in the default style.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
	c.clip = Rect{0, 0, w, h}
	c.Clear()
	return c
}

// Size returns the canvas's full dimensions.
func (c *Canvas) Size() Size { return Size{c.w, c.h} }

// Clear resets every cell to a space in the default style.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// WithClip returns a shallow copy of the canvas sharing the same
// backing cells but scoped to the intersection of the current clip
// rect and r. Widgets call this before delegating to children so a
// child can never paint outside its assigned rectangle.
func (c *Canvas) WithClip(r Rect) *Canvas {
	clipped := intersect(c.clip, r)
	return &Canvas{w: c.w, h: c.h, cells: c.cells, clip: clipped}
}

func intersect(a, b Rect) Rect {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.W, b.X+b.W)
	y1 := min(a.Y+a.H, b.Y+b.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Set writes one cell at (x, y); a no-op if the position is outside
// the canvas's current clip rectangle.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.clip.Contains(x, y) {
		return
	}
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

// Fill paints every cell of r (clipped) with cell, used to satisfy the
// "fill background before painting content" rule.
func (c *Canvas) Fill(r Rect, cell Cell) {
	area := intersect(c.clip, r)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			c.Set(x, y, cell)
		}
	}
}

// WriteString paints s left-to-right starting at (x, y) in style,
// respecting clipping; a double-width rune occupies one cell and
// advances the cursor by two columns.
func (c *Canvas) WriteString(x, y int, s string, style lipgloss.Style) {
	cx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		c.Set(cx, y, Cell{Rune: r, Style: style})
		cx += w
	}
}

// String renders the canvas to a terminal string, one lipgloss-styled
// line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cell := c.cells[y*c.w+x]
			sb.WriteString(cell.Style.Render(string(cell.Rune)))
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Widget is anything that can measure its intrinsic size, accept a
// layout rectangle, and paint itself onto a Canvas.
type Widget interface {
	Measure(avail Size) Size
	Layout(rect Rect)
	Paint(c *Canvas)
}
