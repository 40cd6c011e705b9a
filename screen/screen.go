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
	"log"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	gott "github.com/timburks/typewriter/types"
	"github.com/timburks/typewriter/window"
)

// SafetyWrap is the widest line drawn before it is wrapped onto the next line.
const SafetyWrap = 240

// IndicatorInset is the distance of the saved/dirty indicator from the right edge.
const IndicatorInset = 3

// DefaultMargin offsets the text block from the top left corner of the terminal.
var DefaultMargin = gott.Point{Row: 1, Col: 2}

// NewScreen opens the named terminal backend.
func NewScreen(backend string, margin gott.Point) (gott.Display, error) {
	switch backend {
	case "", "termbox":
		s, err := NewTermboxScreen(margin)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "tcell":
		s, err := NewTcellScreen(margin)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Errorf("unknown screen backend %q", backend)
	}
}

type color int

const (
	colorInk color = iota
	colorSaved
	colorDirty
)

// A canvas is a grid of terminal cells drawn on a paper background.
type canvas interface {
	size() (cols, rows int)
	clear()
	setCell(col, row int, ch rune, fg color)
}

// The painter lays out a frame and fits it into a canvas.
type painter struct {
	margin gott.Point
	scaled bool
}

func (p *painter) paint(c canvas, text string, dirty gott.DirtyFlag) {
	cols, rows := c.size()
	c.clear()

	grid := layout(text)
	content := gott.Size{Rows: len(grid), Cols: widest(grid)}
	container := gott.Size{Rows: rows - 2*p.margin.Row, Cols: cols - p.margin.Col - IndicatorInset - 1}
	target := window.FitAt(content, container, p.margin)
	if scaled := window.Scaled(content, target); scaled != p.scaled {
		if scaled {
			log.Printf("Scaling down from %dx%d to %dx%d! The text will look worse!",
				content.Cols, content.Rows, target.Size.Cols, target.Size.Rows)
		}
		p.scaled = scaled
	}
	blit(c, grid, content, target)

	// saved/dirty indicator
	if cols >= IndicatorInset && rows >= 2 {
		fg := colorSaved
		if dirty == gott.Dirty {
			fg = colorDirty
		}
		c.setCell(cols-IndicatorInset, 1, '█', fg)
	}
}

// layout converts text into rows of cells. Wide characters are followed by
// zero cells for the columns they cover; zero-width characters are dropped.
func layout(text string) [][]rune {
	grid := make([][]rune, 0)
	for _, line := range strings.Split(text, "\n") {
		for _, wrapped := range strings.Split(runewidth.Wrap(line, SafetyWrap), "\n") {
			row := make([]rune, 0, len(wrapped))
			for _, r := range wrapped {
				w := runewidth.RuneWidth(r)
				if w == 0 {
					continue
				}
				row = append(row, r)
				for i := 1; i < w; i++ {
					row = append(row, 0)
				}
			}
			grid = append(grid, row)
		}
	}
	return grid
}

func widest(grid [][]rune) int {
	w := 0
	for _, row := range grid {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// blit copies the grid into target, sampling the nearest cell when target is smaller.
func blit(c canvas, grid [][]rune, content gott.Size, target gott.Rect) {
	if target.Size.Rows <= 0 || target.Size.Cols <= 0 {
		return
	}
	for dy := 0; dy < target.Size.Rows; dy++ {
		row := grid[dy*content.Rows/target.Size.Rows]
		for dx := 0; dx < target.Size.Cols; dx++ {
			sx := dx * content.Cols / target.Size.Cols
			if sx >= len(row) || row[sx] == 0 {
				continue
			}
			c.setCell(target.Origin.Col+dx, target.Origin.Row+dy, row[sx], colorInk)
		}
	}
}
