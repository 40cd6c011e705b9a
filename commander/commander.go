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
package commander

import (
	"log"

	gott "github.com/timburks/typewriter/types"
)

// A Clicker makes a sound for every typed character.
type Clicker interface {
	Click()
}

// The Commander converts user input into operations on the Editor.
type Commander struct {
	editor  gott.Editor
	clicker Clicker
	running bool
	debug   bool // debug mode logs every event
}

func NewCommander(e gott.Editor) *Commander {
	return &Commander{editor: e, running: true}
}

func (c *Commander) SetClicker(clicker Clicker) {
	c.clicker = clicker
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if event == nil {
		return nil
	}
	if c.debug {
		log.Printf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event.Key)
	case gott.EventQuit:
		c.quit(false)
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(ev gott.KeyEvent) error {
	e := c.editor
	input := Translate(ev)
	switch input.Action {
	case ActionInsert:
		e.Append(input.Text)
		if c.clicker != nil {
			c.clicker.Click()
		}
	case ActionBackspace:
		e.PopLast()
	case ActionNewline:
		if e.State() == gott.NoFile {
			e.ConfirmOpen()
		} else {
			e.Append("\n")
		}
	case ActionCommand:
		c.PerformCommand(input.Command)
	}
	return nil
}

func (c *Commander) PerformCommand(command int) {
	e := c.editor
	switch command {
	case CommandSave:
		e.Save()
	case CommandOpenNew:
		e.CloseAndReset()
	case CommandQuitAndSave:
		c.quit(false)
	case CommandQuitDiscard:
		c.quit(true)
	}
}

func (c *Commander) quit(discard bool) {
	c.editor.Quit(discard)
	c.running = false
}
