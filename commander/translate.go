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
	"unicode"

	gott "github.com/timburks/typewriter/types"
)

// Actions produced by Translate
const (
	ActionNone      = 0
	ActionInsert    = 1
	ActionBackspace = 2
	ActionNewline   = 3
	ActionCommand   = 4
)

// Commands bound to control keys
const (
	CommandNone        = 0
	CommandSave        = 1
	CommandOpenNew     = 2
	CommandQuitAndSave = 3
	CommandQuitDiscard = 4
)

var commandKeys = map[rune]int{
	's': CommandSave,
	'o': CommandOpenNew,
	'q': CommandQuitAndSave,
}

// An Input is the logical meaning of a key event.
type Input struct {
	Action  int
	Text    string // for ActionInsert
	Command int    // for ActionCommand
}

// Translate maps a key event to an input. Repeated key-down events never
// type a character, but commands and structural edits still fire on repeat.
func Translate(ev gott.KeyEvent) Input {
	switch ev.Key {
	case gott.KeyRune:
		ch := unicode.ToLower(ev.Ch)
		if ev.Mod.Controlled() {
			if command, ok := commandKeys[ch]; ok {
				if command == CommandQuitAndSave && ev.Mod.Shifted() {
					command = CommandQuitDiscard
				}
				return Input{Action: ActionCommand, Command: command}
			}
		}
		if ev.Repeat {
			return Input{}
		}
		return Input{Action: ActionInsert, Text: string(emit(ch, ev.Mod))}
	case gott.KeyBackspace:
		return Input{Action: ActionBackspace}
	case gott.KeyEnter:
		return Input{Action: ActionNewline}
	case gott.KeySpace:
		return Input{Action: ActionInsert, Text: " "}
	case gott.KeyUnderscore:
		return Input{Action: ActionInsert, Text: "_"}
	}
	return Input{}
}

func emit(ch rune, mod gott.Modifier) rune {
	if !mod.Shifted() {
		return ch
	}
	if shifted, ok := gott.ShiftMap[ch]; ok {
		return shifted
	}
	return unicode.ToUpper(ch)
}
