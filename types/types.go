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
package types

// Event types
const (
	EventNone   = 0
	EventKey    = 1
	EventResize = 2
	EventQuit   = 3
)

// Session states
const (
	NoFile   = 0
	OpenFile = 1
)

// DirtyFlag records whether the document differs from what was last saved.
type DirtyFlag int

const (
	Saved DirtyFlag = iota
	Dirty
)

func (d DirtyFlag) String() string {
	if d == Dirty {
		return "dirty"
	}
	return "saved"
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// An Event is a single input from the event pump.
type Event struct {
	Type int
	Key  KeyEvent
}

// A Display is the render boundary: it receives the pager output and the
// dirty flag once per frame and produces input events.
type Display interface {
	Render(text string, dirty DirtyFlag) error
	GetNextEvent() *Event
	Interrupt()
	Close()
}

// Editor is the set of document and session operations driven by the commander.
type Editor interface {
	Text() string
	Dirty() DirtyFlag
	State() int
	Path() string

	Append(s string)
	PopLast()

	ConfirmOpen()
	Save()
	CloseAndReset()
	Quit(discard bool)
}
