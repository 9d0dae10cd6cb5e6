//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"log/slog"

	"fyne.io/fyne/v2/app"

	"clickblur/internal/editor"
	applog "clickblur/internal/log"
)

// Run opens a fixed-size window showing ed and blocks until the session ends.
// The returned error is the save error, if any; it is nil after Escape.
func Run(ed *editor.Editor) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("image", ed.Path()))

	fyneApp := app.NewWithID("clickblur")
	w := fyneApp.NewWindow(ed.Title())
	view := NewImageCanvas(ed)
	view.OnQuit = fyneApp.Quit

	w.SetPadded(false)
	w.SetContent(view)
	view.SetPixelScale(w.Canvas().Scale())
	w.Resize(view.MinSize())
	w.SetFixedSize(true)
	w.Canvas().SetOnTypedRune(view.TypedRune)
	w.Canvas().SetOnTypedKey(view.TypedKey)
	// closing the window counts as Escape
	w.SetCloseIntercept(view.Close)
	w.CenterOnScreen()

	w.ShowAndRun()

	if !ed.Done() {
		ed.Quit()
	}
	l.Info("UI closed", slog.Bool("saved", ed.Result().Saved))
	return view.Err()
}
