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
package editor

import (
	"log"

	gott "github.com/timburks/typewriter/types"
)

// The Editor owns the document and the session and implements every
// transition a keystroke can cause. Storage failures are logged and
// otherwise ignored; the dirty flag is the only signal the user sees.
type Editor struct {
	buffer  *Buffer
	session *Session
}

// NewEditor starts with no file open and the open prompt as the document.
func NewEditor(storage *Storage) *Editor {
	e := &Editor{session: NewSession(storage)}
	e.buffer = NewBuffer(e.session.PromptText())
	return e
}

func (e *Editor) Text() string {
	return e.buffer.Text()
}

func (e *Editor) Dirty() gott.DirtyFlag {
	return e.buffer.Dirty()
}

func (e *Editor) State() int {
	return e.session.State().Kind
}

// Path returns the bound path, or "" when no file is open.
func (e *Editor) Path() string {
	return e.session.State().Path
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetSession() *Session {
	return e.session
}

func (e *Editor) Append(s string) {
	e.buffer.Append(s)
}

func (e *Editor) PopLast() {
	e.buffer.PopLast()
}

// ConfirmOpen opens the file named on the prompt line.
func (e *Editor) ConfirmOpen() {
	e.buffer.Replace(e.session.ConfirmOpen(e.buffer.Text()))
	e.buffer.MarkSaved()
}

func (e *Editor) Save() {
	if err := e.session.Save(e.buffer.Text()); err != nil {
		log.Printf("saving %s: %v", e.Path(), err)
	}
	e.buffer.MarkSaved()
}

// CloseAndReset saves and unbinds the open file, then shows the open prompt.
func (e *Editor) CloseAndReset() {
	path := e.Path()
	if err := e.session.Close(e.buffer.Text()); err != nil {
		log.Printf("saving %s: %v", path, err)
	}
	e.buffer.Replace(e.session.PromptText())
	e.buffer.MarkSaved()
}

// Quit saves the open file unless discard is set.
func (e *Editor) Quit(discard bool) {
	if discard {
		return
	}
	if err := e.session.Save(e.buffer.Text()); err != nil {
		log.Printf("saving %s: %v", e.Path(), err)
	}
}
