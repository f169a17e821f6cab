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

	"github.com/stretchr/testify/require"
)

func TestListEnsureVisibleScrollsDown(t *testing.T) {
	l := &List{Items: []string{"a", "b", "c", "d", "e"}, Selected: 4}
	l.Layout(Rect{0, 0, 10, 2})
	l.EnsureVisible()
	require.Equal(t, 3, l.ScrollOffset)
}

func TestListEnsureVisibleScrollsUp(t *testing.T) {
	l := &List{Items: []string{"a", "b", "c"}, Selected: 0, ScrollOffset: 2}
	l.Layout(Rect{0, 0, 10, 2})
	l.EnsureVisible()
	require.Equal(t, 0, l.ScrollOffset)
}

func TestListPaintWritesVisibleItems(t *testing.T) {
	l := &List{Items: []string{"one", "two", "three"}}
	l.Layout(Rect{0, 0, 5, 2})
	c := NewCanvas(5, 2)
	l.Paint(c)
	require.Equal(t, 'o', c.cells[0].Rune)
	require.Equal(t, 't', c.cells[5].Rune)
}
