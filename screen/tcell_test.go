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
	"testing"

	"github.com/gdamore/tcell/v2"

	gott "github.com/timburks/typewriter/types"
)

func TestTcellKeys(t *testing.T) {
	cases := []struct {
		event    *tcell.EventKey
		expected gott.KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), gott.KeyEvent{Key: gott.KeyRune, Ch: 'a'}},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), gott.KeyEvent{Key: gott.KeyRune, Ch: 'a', Mod: gott.ModLeftShift}},
		{tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), gott.KeyEvent{Key: gott.KeyRune, Ch: '/', Mod: gott.ModLeftShift}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), gott.KeyEvent{Key: gott.KeySpace}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), gott.KeyEvent{Key: gott.KeyEnter}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), gott.KeyEvent{Key: gott.KeyBackspace}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), gott.KeyEvent{Key: gott.KeyEscape}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), gott.KeyEvent{Key: gott.KeyUnsupported}},
	}
	for _, c := range cases {
		event := tcellEvent(c.event)
		if event.Type != gott.EventKey || event.Key != c.expected {
			t.Errorf("tcellEvent(%+v) = %+v, expected %+v", c.event, event, c.expected)
		}
	}
}

func TestTcellControlKeys(t *testing.T) {
	for _, ch := range "soq" {
		k := tcell.KeyCtrlA + tcell.Key(ch-'a')
		event := tcellEvent(tcell.NewEventKey(k, ch, tcell.ModCtrl))
		if event.Key.Key != gott.KeyRune || event.Key.Ch != ch || !event.Key.Mod.Controlled() {
			t.Errorf("Ctrl-%c converted to %+v", ch, event.Key)
		}
	}
}

func TestTcellEventTypes(t *testing.T) {
	if event := tcellEvent(tcell.NewEventResize(80, 24)); event.Type != gott.EventResize {
		t.Errorf("Unexpected resize event %+v", event)
	}
	if event := tcellEvent(tcell.NewEventInterrupt(nil)); event.Type != gott.EventQuit {
		t.Errorf("Unexpected interrupt event %+v", event)
	}
	if event := tcellEvent(nil); event.Type != gott.EventQuit {
		t.Errorf("Unexpected nil event %+v", event)
	}
}
