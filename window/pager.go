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
package window

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth = 120 // characters per display line
	DefaultRows  = 30  // display lines shown at once
	CursorMarker = "_"
	GutterWidth  = 4
	TickInterval = 5 // every fifth row carries a number
)

// A Row is one display line. Rows with a zero Number have a blank gutter.
type Row struct {
	Number int
	Text   string
}

func (r Row) String() string {
	if r.Number > 0 {
		return fmt.Sprintf("%*d │ %s", GutterWidth, r.Number, r.Text)
	}
	return strings.Repeat(" ", GutterWidth) + " │ " + r.Text
}

// Reflow hard-wraps each paragraph of text into lines of at most width
// characters. An empty paragraph is one empty line.
func Reflow(text string, width int) []string {
	lines := make([]string, 0)
	for _, paragraph := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimSuffix(paragraph, "\r"))
		if len(runes) == 0 || width <= 0 {
			lines = append(lines, string(runes))
			continue
		}
		for start := 0; start < len(runes); start += width {
			end := start + width
			if end > len(runes) {
				end = len(runes)
			}
			lines = append(lines, string(runes[start:end]))
		}
	}
	return lines
}

// Page returns the last rows display lines of the reflowed document with the
// cursor marker appended. Rows are numbered by their position in the window.
func Page(document string, width, rows int) []Row {
	if rows <= 0 {
		return nil
	}
	lines := Reflow(document+CursorMarker, width)
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	page := make([]Row, len(lines))
	for i, line := range lines {
		page[i].Text = line
		if (i+1)%TickInterval == 0 {
			page[i].Number = i + 1
		}
	}
	return page
}

func Format(rows []Row) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(row.String())
	}
	return b.String()
}

// Frame renders the document as the multi-line string handed to the display.
func Frame(document string, width, rows int) string {
	return Format(Page(document, width, rows))
}
