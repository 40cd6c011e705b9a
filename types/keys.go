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

import "unicode"

// Key identifies a key. Single-character keys are reported as KeyRune
// with the base (unshifted, lower-case) character in KeyEvent.Ch.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeySpace
	KeyUnderscore
	KeyTab
	KeyEscape
	KeyUnsupported
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint16

const (
	ModLeftShift Modifier = 1 << iota
	ModRightShift
	ModLeftCtrl
	ModRightCtrl
	ModLeftAlt
	ModRightAlt

	ModShift = ModLeftShift | ModRightShift
	ModCtrl  = ModLeftCtrl | ModRightCtrl
	ModAlt   = ModLeftAlt | ModRightAlt
)

// Shifted reports whether either shift key is held.
func (m Modifier) Shifted() bool {
	return m&ModShift != 0
}

// Controlled reports whether either control key is held.
func (m Modifier) Controlled() bool {
	return m&ModCtrl != 0
}

// A KeyEvent is a key-down event.
type KeyEvent struct {
	Key    Key
	Ch     rune
	Mod    Modifier
	Repeat bool
}

// ShiftMap maps an unshifted symbol key to the symbol it produces with shift held.
var ShiftMap = map[rune]rune{
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	'\\': '|',
	';':  ':',
	'\'': '"',
	',':  '<',
	'.':  '>',
	'/':  '?',
	'`':  '~',
}

var unshiftMap = func() map[rune]rune {
	m := make(map[rune]rune, len(ShiftMap))
	for k, v := range ShiftMap {
		m[v] = k
	}
	return m
}()

// KeyForRune reports the key event a terminal character corresponds to.
// Terminals deliver the already-shifted character, so upper-case letters and
// shifted symbols are folded back to their base key with ModLeftShift set.
func KeyForRune(ch rune, mod Modifier) KeyEvent {
	if base, ok := unshiftMap[ch]; ok {
		return KeyEvent{Key: KeyRune, Ch: base, Mod: mod | ModLeftShift}
	}
	if unicode.IsUpper(ch) {
		return KeyEvent{Key: KeyRune, Ch: unicode.ToLower(ch), Mod: mod | ModLeftShift}
	}
	return KeyEvent{Key: KeyRune, Ch: ch, Mod: mod}
}
