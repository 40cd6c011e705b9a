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
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	gott "github.com/timburks/typewriter/types"
)

// 256-color palette entries, offset by one as termbox expects in Output256 mode.
const (
	termboxPaper = termbox.Attribute(231 + 1)
	termboxInk   = termbox.Attribute(16 + 1)
	termboxSaved = termbox.Attribute(255 + 1)
	termboxDirty = termbox.Attribute(232 + 1)
)

// The TermboxScreen draws frames with termbox.
type TermboxScreen struct {
	painter
}

func NewTermboxScreen(margin gott.Point) (*TermboxScreen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, errors.Wrap(err, "opening terminal with termbox")
	}
	termbox.SetOutputMode(termbox.Output256)
	return &TermboxScreen{painter: painter{margin: margin}}, nil
}

func (s *TermboxScreen) Close() {
	termbox.Close()
}

func (s *TermboxScreen) Render(text string, dirty gott.DirtyFlag) error {
	s.paint(termboxCanvas{}, text, dirty)
	return errors.Wrap(termbox.Flush(), "flushing termbox")
}

func (s *TermboxScreen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return termboxEvent(event)
}

func (s *TermboxScreen) Interrupt() {
	termbox.Interrupt()
}

type termboxCanvas struct{}

func (termboxCanvas) size() (int, int) {
	return termbox.Size()
}

func (termboxCanvas) clear() {
	termbox.Clear(termboxInk, termboxPaper)
}

func (termboxCanvas) setCell(col, row int, ch rune, fg color) {
	attribute := termboxInk
	switch fg {
	case colorSaved:
		attribute = termboxSaved
	case colorDirty:
		attribute = termboxDirty
	}
	termbox.SetCell(col, row, ch, attribute, termboxPaper)
}

func termboxEvent(event termbox.Event) *gott.Event {
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{Type: gott.EventKey, Key: termboxKey(event)}
	case termbox.EventResize:
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventInterrupt:
		return &gott.Event{Type: gott.EventQuit}
	default:
		return &gott.Event{Type: gott.EventNone}
	}
}

// Terminals report control keys as control characters and shifted keys as
// the characters they produce; both are folded back into keys and modifiers.
func termboxKey(event termbox.Event) gott.KeyEvent {
	var mod gott.Modifier
	if event.Mod&termbox.ModAlt != 0 {
		mod |= gott.ModLeftAlt
	}
	if event.Ch != 0 {
		return gott.KeyForRune(event.Ch, mod)
	}
	switch event.Key {
	case termbox.KeySpace:
		return gott.KeyEvent{Key: gott.KeySpace, Mod: mod}
	case termbox.KeyEnter:
		return gott.KeyEvent{Key: gott.KeyEnter, Mod: mod}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyEvent{Key: gott.KeyBackspace, Mod: mod}
	case termbox.KeyTab:
		return gott.KeyEvent{Key: gott.KeyTab, Mod: mod}
	case termbox.KeyEsc:
		return gott.KeyEvent{Key: gott.KeyEscape, Mod: mod}
	}
	if event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ {
		ch := 'a' + rune(event.Key-termbox.KeyCtrlA)
		return gott.KeyEvent{Key: gott.KeyRune, Ch: ch, Mod: mod | gott.ModLeftCtrl}
	}
	return gott.KeyEvent{Key: gott.KeyUnsupported, Mod: mod}
}
