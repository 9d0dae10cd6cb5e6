/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */
package editor

import "testing"

func TestKeymapBindings(t *testing.T) {
	cases := map[Key]Command{
		"+":       CmdRadiusUp,
		"=":       CmdRadiusUp,
		"-":       CmdRadiusDown,
		"]":       CmdStrengthUp,
		"[":       CmdStrengthDown,
		"u":       CmdUndo,
		"q":       CmdSaveAndQuit,
		KeyEscape: CmdQuit,
		"U":       CmdNone,
		"Q":       CmdNone,
		"x":       CmdNone,
		"":        CmdNone,
	}
	for k, want := range cases {
		if got := CommandFor(k); got != want {
			t.Errorf("CommandFor(%q) = %v, want %v", k, got, want)
		}
	}
}
