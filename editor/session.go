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
	"fmt"
	"log"
	"strings"

	gott "github.com/timburks/typewriter/types"
)

// PromptPrefix starts the line where a filename is typed.
const PromptPrefix = "Open File: "

// A State is either NoFile or OpenFile with the path the document is bound to.
type State struct {
	Kind int
	Path string
}

func (s State) IsOpen() bool {
	return s.Kind == gott.OpenFile
}

func (s State) String() string {
	if s.IsOpen() {
		return fmt.Sprintf("OpenFile(%s)", s.Path)
	}
	return "NoFile"
}

// A Session tracks which file, if any, the document is bound to.
type Session struct {
	storage *Storage
	state   State
}

func NewSession(storage *Storage) *Session {
	return &Session{storage: storage, state: State{Kind: gott.NoFile}}
}

func (s *Session) State() State {
	return s.state
}

// PromptText lists the stored text files and ends with the open prompt.
func (s *Session) PromptText() string {
	var b strings.Builder
	names, err := s.storage.List()
	if err != nil {
		log.Printf("listing %s: %v", s.storage.Dir(), err)
	}
	for _, name := range names {
		b.WriteString(" * ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString(PromptPrefix)
	return b.String()
}

// PromptName extracts the typed filename from a prompt transcript. If the last
// line does not start with the prompt prefix, the whole document is the name.
func PromptName(document string) string {
	last := document[strings.LastIndex(document, "\n")+1:]
	if strings.HasPrefix(last, PromptPrefix) {
		return strings.TrimPrefix(last, PromptPrefix)
	}
	return document
}

// ConfirmOpen binds the session to the file named in the prompt transcript
// and returns the file's contents. A file that cannot be read opens as an
// empty document; the session is bound to its path either way.
func (s *Session) ConfirmOpen(document string) string {
	path := s.storage.Resolve(PromptName(document))
	text, err := s.storage.Read(path)
	if err != nil {
		log.Printf("opening %s: %v", path, err)
		text = ""
	}
	s.state = State{Kind: gott.OpenFile, Path: path}
	return text
}

// Save writes the document to the bound file. With no file open it does nothing.
func (s *Session) Save(document string) error {
	if !s.state.IsOpen() {
		return nil
	}
	return s.storage.Write(s.state.Path, document)
}

// Close saves the document if a file is open and unbinds the session.
func (s *Session) Close(document string) error {
	err := s.Save(document)
	s.state = State{Kind: gott.NoFile}
	return err
}
