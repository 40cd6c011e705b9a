//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"strings"
	"testing"

	gott "github.com/timburks/typewriter/types"
)

type cell struct {
	ch rune
	fg color
}

type fakeCanvas struct {
	cols, rows int
	cells      map[gott.Point]cell
	clears     int
}

func newFakeCanvas(cols, rows int) *fakeCanvas {
	return &fakeCanvas{cols: cols, rows: rows, cells: make(map[gott.Point]cell)}
}

func (c *fakeCanvas) size() (int, int) {
	return c.cols, c.rows
}

func (c *fakeCanvas) clear() {
	c.clears++
	c.cells = make(map[gott.Point]cell)
}

func (c *fakeCanvas) setCell(col, row int, ch rune, fg color) {
	c.cells[gott.Point{Row: row, Col: col}] = cell{ch: ch, fg: fg}
}

func (c *fakeCanvas) line(row, from, to int) string {
	var b strings.Builder
	for col := from; col < to; col++ {
		if cell, ok := c.cells[gott.Point{Row: row, Col: col}]; ok {
			b.WriteRune(cell.ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func TestPaintAtMargin(t *testing.T) {
	c := newFakeCanvas(80, 24)
	p := &painter{margin: DefaultMargin}
	p.paint(c, "ab\ncd", gott.Dirty)
	if s := c.line(1, 2, 4); s != "ab" {
		t.Errorf("Unexpected first line %q", s)
	}
	if s := c.line(2, 2, 4); s != "cd" {
		t.Errorf("Unexpected second line %q", s)
	}
	if _, ok := c.cells[gott.Point{Row: 0, Col: 0}]; ok {
		t.Errorf("Margin cell was drawn")
	}
	if indicator := c.cells[gott.Point{Row: 1, Col: 77}]; indicator.fg != colorDirty {
		t.Errorf("Unexpected indicator %+v", indicator)
	}
	if p.scaled {
		t.Errorf("Small content should not be scaled")
	}
}

func TestPaintSavedIndicator(t *testing.T) {
	c := newFakeCanvas(40, 10)
	p := &painter{margin: DefaultMargin}
	p.paint(c, "x", gott.Saved)
	if indicator := c.cells[gott.Point{Row: 1, Col: 37}]; indicator.fg != colorSaved {
		t.Errorf("Unexpected indicator %+v", indicator)
	}
	if c.clears != 1 {
		t.Errorf("Expected the canvas to be cleared once, got %d", c.clears)
	}
}

func TestPaintScalesDown(t *testing.T) {
	c := newFakeCanvas(11, 6)
	p := &painter{margin: DefaultMargin}
	p.paint(c, "abcdefghij\nklmnopqrst\nuvwxyzABCD\nEFGHIJKLMN", gott.Saved)
	if !p.scaled {
		t.Fatalf("Expected content to be scaled")
	}
	if s := c.line(1, 2, 7); s != "acegi" {
		t.Errorf("Unexpected first scaled line %q", s)
	}
	if s := c.line(2, 2, 7); s != "uwyAC" {
		t.Errorf("Unexpected second scaled line %q", s)
	}
	if indicator := c.cells[gott.Point{Row: 1, Col: 8}]; indicator.ch != '█' {
		t.Errorf("Indicator missing next to scaled content")
	}
	if s := c.line(3, 2, 7); s != "     " {
		t.Errorf("Scaled content overflowed: %q", s)
	}
}

func TestLayoutWideCharacters(t *testing.T) {
	grid := layout("a世b")
	if len(grid) != 1 || len(grid[0]) != 4 || grid[0][2] != 0 || grid[0][3] != 'b' {
		t.Errorf("Unexpected grid %q", grid)
	}
}

func TestLayoutSafetyWrap(t *testing.T) {
	grid := layout(strings.Repeat("z", SafetyWrap+10))
	if len(grid) != 2 || len(grid[0]) != SafetyWrap || len(grid[1]) != 10 {
		t.Errorf("Unexpected grid shape %d rows", len(grid))
	}
}

func TestNewScreenRejectsUnknownBackend(t *testing.T) {
	if _, err := NewScreen("sdl", DefaultMargin); err == nil {
		t.Errorf("Expected an error for an unknown backend")
	}
}
