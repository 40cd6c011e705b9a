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
	"unicode/utf8"

	gott "github.com/timburks/typewriter/types"
)

// A Buffer is the document plus a flag recording whether it has been saved.
type Buffer struct {
	text  string
	dirty gott.DirtyFlag
}

func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, dirty: gott.Saved}
}

func (b *Buffer) Text() string {
	return b.text
}

func (b *Buffer) Dirty() gott.DirtyFlag {
	return b.dirty
}

func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Append adds s to the end of the document.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	b.text += s
	b.dirty = gott.Dirty
}

// PopLast removes the last character; on an empty document it does nothing.
func (b *Buffer) PopLast() {
	if b.IsEmpty() {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
	b.dirty = gott.Dirty
}

// Replace swaps in a whole new document.
func (b *Buffer) Replace(s string) {
	b.text = s
	b.dirty = gott.Dirty
}

func (b *Buffer) MarkSaved() {
	b.dirty = gott.Saved
}
