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

// Clear paints a solid background over its rect, used to blank out the
// area behind an overlay (help screen, signal dialog) before the
// overlay's own widgets paint on top.
type Clear struct {
	Style lipgloss.Style

	rect Rect
}

func (cl *Clear) Measure(avail Size) Size { return avail }

func (cl *Clear) Layout(rect Rect) { cl.rect = rect }

func (cl *Clear) Paint(c *Canvas) {
	c.Fill(cl.rect, Cell{Rune: ' ', Style: cl.Style})
}
