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
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	gott "github.com/timburks/typewriter/types"
)

var (
	tcellPaper = tcell.NewRGBColor(0xfa, 0xfa, 0xfa)
	tcellInk   = tcell.NewRGBColor(0x00, 0x00, 0x00)
	tcellSaved = tcell.NewRGBColor(0xf0, 0xf0, 0xf0)
	tcellDirty = tcell.NewRGBColor(0x0a, 0x0a, 0x0a)
)

// The TcellScreen draws frames with tcell, which reports modifier keys
// more precisely than termbox on terminals that support it.
type TcellScreen struct {
	painter
	screen tcell.Screen
}

func NewTcellScreen(margin gott.Point) (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating tcell screen")
	}
	if err = s.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing tcell screen")
	}
	return newTcellScreen(s, margin), nil
}

func newTcellScreen(s tcell.Screen, margin gott.Point) *TcellScreen {
	s.SetStyle(tcell.StyleDefault.Foreground(tcellInk).Background(tcellPaper))
	return &TcellScreen{painter: painter{margin: margin}, screen: s}
}

func (s *TcellScreen) Close() {
	s.screen.Fini()
}

func (s *TcellScreen) Render(text string, dirty gott.DirtyFlag) error {
	s.paint(tcellCanvas{screen: s.screen}, text, dirty)
	s.screen.Show()
	return nil
}

func (s *TcellScreen) GetNextEvent() *gott.Event {
	event := s.screen.PollEvent()
	if _, ok := event.(*tcell.EventResize); ok {
		s.screen.Sync()
	}
	return tcellEvent(event)
}

func (s *TcellScreen) Interrupt() {
	s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

type tcellCanvas struct {
	screen tcell.Screen
}

func (c tcellCanvas) size() (int, int) {
	return c.screen.Size()
}

func (c tcellCanvas) clear() {
	c.screen.Fill(' ', tcell.StyleDefault.Foreground(tcellInk).Background(tcellPaper))
}

func (c tcellCanvas) setCell(col, row int, ch rune, fg color) {
	ink := tcellInk
	switch fg {
	case colorSaved:
		ink = tcellSaved
	case colorDirty:
		ink = tcellDirty
	}
	c.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(ink).Background(tcellPaper))
}

func tcellEvent(event tcell.Event) *gott.Event {
	switch event := event.(type) {
	case *tcell.EventKey:
		return &gott.Event{Type: gott.EventKey, Key: tcellKey(event)}
	case *tcell.EventResize:
		return &gott.Event{Type: gott.EventResize}
	case *tcell.EventInterrupt:
		return &gott.Event{Type: gott.EventQuit}
	case nil:
		// the screen has been finalized
		return &gott.Event{Type: gott.EventQuit}
	default:
		return &gott.Event{Type: gott.EventNone}
	}
}

func tcellModifiers(m tcell.ModMask) gott.Modifier {
	var mod gott.Modifier
	if m&tcell.ModShift != 0 {
		mod |= gott.ModLeftShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= gott.ModLeftCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= gott.ModLeftAlt
	}
	return mod
}

func tcellKey(event *tcell.EventKey) gott.KeyEvent {
	mod := tcellModifiers(event.Modifiers())
	key := event.Key()
	switch key {
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			return gott.KeyEvent{Key: gott.KeySpace, Mod: mod}
		}
		return gott.KeyForRune(event.Rune(), mod)
	case tcell.KeyEnter:
		return gott.KeyEvent{Key: gott.KeyEnter, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return gott.KeyEvent{Key: gott.KeyBackspace, Mod: mod}
	case tcell.KeyTab:
		return gott.KeyEvent{Key: gott.KeyTab, Mod: mod}
	case tcell.KeyEscape:
		return gott.KeyEvent{Key: gott.KeyEscape, Mod: mod}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		ch := 'a' + rune(key-tcell.KeyCtrlA)
		return gott.KeyEvent{Key: gott.KeyRune, Ch: ch, Mod: mod | gott.ModLeftCtrl}
	}
	return gott.KeyEvent{Key: gott.KeyUnsupported, Mod: mod}
}
