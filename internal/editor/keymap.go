/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

// Key names a key press. Printable keys use their character; see KeyEscape for the rest.
type Key string

// KeyEscape is the Escape key.
const KeyEscape Key = "Escape"

// Command is what a key asks the editor to do.
type Command int

const (
	CmdNone Command = iota
	CmdRadiusUp
	CmdRadiusDown
	CmdStrengthUp
	CmdStrengthDown
	CmdUndo
	CmdSaveAndQuit
	CmdQuit
)

var keymap = map[Key]Command{
	"+":       CmdRadiusUp,
	"=":       CmdRadiusUp,
	"-":       CmdRadiusDown,
	"]":       CmdStrengthUp,
	"[":       CmdStrengthDown,
	"u":       CmdUndo,
	"q":       CmdSaveAndQuit,
	KeyEscape: CmdQuit,
}

// CommandFor returns the command bound to k, or CmdNone.
func CommandFor(k Key) Command { return keymap[k] }

func (c Command) String() string {
	switch c {
	case CmdRadiusUp:
		return "radius-up"
	case CmdRadiusDown:
		return "radius-down"
	case CmdStrengthUp:
		return "strength-up"
	case CmdStrengthDown:
		return "strength-down"
	case CmdUndo:
		return "undo"
	case CmdSaveAndQuit:
		return "save-and-quit"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// Controls is the one-line help shown in the window title.
const Controls = "click: blur  +/-: radius  ]/[: strength  u: undo  q: save & quit  Esc: quit"
