/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package editor is the interactive click-to-blur state machine. It owns the
// working image, the single undo snapshot, the brush and the cursor, and is driven
// by pointer and key events from the UI. It never touches a display itself, so it
// can be exercised headless.
package editor

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"clickblur/internal/brush"
	"clickblur/internal/config"
	"clickblur/internal/imagefile"
	applog "clickblur/internal/log"
	"clickblur/internal/undo"
)

// Action tells the UI what to do after an event was handled.
type Action int

const (
	// ActionNone means the event was ignored.
	ActionNone Action = iota
	// ActionRedraw means the preview changed.
	ActionRedraw
	// ActionQuit means the session is over; see Result.
	ActionQuit
)

// Result describes how a finished session ended.
type Result struct {
	Saved bool
	Path  string
}

// Options configures a new Editor.
type Options struct {
	Screen       image.Point
	Brush        brush.Brush
	JPEGQuality  int
	OutlineWidth float64
	ShowHUD      bool
	Logger       *slog.Logger
}

// OptionsFromConfig builds editor options from the user configuration.
func OptionsFromConfig(cfg config.AppConfig) Options {
	b := cfg.Brush
	return Options{
		Screen: image.Pt(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		Brush: brush.New(b.Radius, b.Strength, brush.Limits{
			RadiusStep:   b.RadiusStep,
			StrengthStep: b.StrengthStep,
			MinRadius:    b.MinRadius,
			MinStrength:  b.MinStrength,
		}),
		JPEGQuality:  cfg.Output.JPEGQuality,
		OutlineWidth: cfg.Preview.OutlineWidth,
		ShowHUD:      cfg.Preview.ShowHUD,
	}
}

// Editor is the single owner of the image buffers. Handlers run to completion
// one at a time on the UI goroutine; there is no locking.
type Editor struct {
	path    string
	format  string
	palette color.Palette

	current *image.RGBA
	backup  undo.Slot

	brush     brush.Brush
	cursor    image.Point
	hasCursor bool
	view      Viewport

	jpegQuality  int
	outlineWidth float64
	showHUD      bool

	done   bool
	result Result
	log    *slog.Logger
}

// New loads the image at path. A missing or undecodable file yields *imagefile.LoadError.
func New(path string, opts Options) (*Editor, error) {
	src, err := imagefile.Load(path)
	if err != nil {
		return nil, err
	}
	return newEditor(src, opts), nil
}

func newEditor(src *imagefile.Source, opts Options) *Editor {
	if opts.Brush.Radius == 0 {
		opts.Brush = brush.New(30, 15, brush.DefaultLimits())
	}
	if opts.OutlineWidth <= 0 {
		opts.OutlineWidth = 2
	}
	l := opts.Logger
	if l == nil {
		l = applog.WithComponent("editor")
	}
	size := src.Image.Bounds().Size()
	e := &Editor{
		path:         src.Path,
		format:       src.Format,
		palette:      src.Palette,
		current:      src.Image,
		brush:        opts.Brush,
		view:         NewViewport(size, opts.Screen),
		jpegQuality:  opts.JPEGQuality,
		outlineWidth: opts.OutlineWidth,
		showHUD:      opts.ShowHUD,
		log:          l,
	}
	e.log.Info("image loaded",
		slog.String("path", src.Path),
		slog.String("format", src.Format),
		slog.Int("width", size.X),
		slog.Int("height", size.Y),
		slog.Float64("scale", e.view.Scale),
	)
	return e
}

// MoveCursor records the pointer position, given in display coordinates.
func (e *Editor) MoveCursor(dx, dy float64) Action {
	if e.done {
		return ActionNone
	}
	e.cursor = e.view.ToImage(dx, dy)
	e.hasCursor = true
	return ActionRedraw
}

// LeaveCursor hides the preview circle when the pointer leaves the image.
func (e *Editor) LeaveCursor() Action {
	if e.done || !e.hasCursor {
		return ActionNone
	}
	e.hasCursor = false
	return ActionRedraw
}

// Click blurs the circle under a left click given in display coordinates.
// The state before the blur becomes the undo snapshot. A click whose region
// misses the image entirely changes nothing.
func (e *Editor) Click(dx, dy float64) Action {
	if e.done {
		return ActionNone
	}
	c := e.view.ToImage(dx, dy)
	e.cursor, e.hasCursor = c, true
	if brush.Region(e.current.Bounds(), c, e.brush.Radius).Empty() {
		return ActionRedraw
	}
	e.backup.Capture(e.current)
	region := brush.Apply(e.current, c, e.brush.Radius, e.brush.Strength)
	e.log.Debug("blur applied",
		slog.Int("x", c.X), slog.Int("y", c.Y),
		slog.Int("radius", e.brush.Radius), slog.Int("strength", e.brush.Strength),
		slog.String("region", region.String()),
		slog.Int("undo_bytes", e.backup.Bytes()),
	)
	return ActionRedraw
}

// HandleKey runs the command bound to k. Unbound keys are ignored.
// For the save command the returned error is a *imagefile.SaveError; the session
// ends either way.
func (e *Editor) HandleKey(k Key) (Action, error) {
	if e.done {
		return ActionNone, nil
	}
	cmd := CommandFor(k)
	switch cmd {
	case CmdRadiusUp:
		e.brush.Grow()
	case CmdRadiusDown:
		e.brush.Shrink()
	case CmdStrengthUp:
		e.brush.Stronger()
	case CmdStrengthDown:
		e.brush.Weaker()
	case CmdUndo:
		e.Undo()
		return ActionRedraw, nil
	case CmdSaveAndQuit:
		return ActionQuit, e.SaveAndQuit()
	case CmdQuit:
		e.Quit()
		return ActionQuit, nil
	default:
		return ActionNone, nil
	}
	e.log.Info("brush", slog.String("cmd", cmd.String()), slog.Int("radius", e.brush.Radius), slog.Int("strength", e.brush.Strength))
	return ActionRedraw, nil
}

// Undo restores the image from before the last click. Without a snapshot it does nothing.
func (e *Editor) Undo() bool {
	snap, ok := e.backup.Restore()
	if !ok {
		e.log.Info("nothing to undo")
		return false
	}
	e.current = snap.Image
	e.log.Info("undo", slog.Duration("age", time.Since(snap.TS)))
	return true
}

// SaveAndQuit writes the current image to OutputPath and ends the session.
func (e *Editor) SaveAndQuit() error {
	out := e.OutputPath()
	e.done = true
	if err := imagefile.Save(out, e.current, e.format, imagefile.Options{
		JPEGQuality: e.jpegQuality,
		Palette:     e.palette,
	}); err != nil {
		e.log.Error("save failed", slog.String("path", out), slog.Any("err", err))
		return err
	}
	e.result = Result{Saved: true, Path: out}
	e.log.Info("saved", slog.String("path", out))
	return nil
}

// Quit ends the session without writing anything.
func (e *Editor) Quit() {
	if e.done {
		return
	}
	e.done = true
	e.result = Result{}
	e.log.Info("exited without saving")
}

// Done reports whether the session has ended.
func (e *Editor) Done() bool { return e.done }

// Result reports how the session ended.
func (e *Editor) Result() Result { return e.result }

// Path is the input image path.
func (e *Editor) Path() string { return e.path }

// Title is the window caption: the file name followed by the key help.
func (e *Editor) Title() string { return filepath.Base(e.path) + " - " + Controls }

// OutputPath is where SaveAndQuit writes.
func (e *Editor) OutputPath() string { return imagefile.OutputPath(e.path) }

// Image returns the working buffer. Callers must not modify it.
func (e *Editor) Image() *image.RGBA { return e.current }

// Brush returns the current brush.
func (e *Editor) Brush() brush.Brush { return e.brush }

// Cursor returns the last pointer position in image coordinates.
func (e *Editor) Cursor() (image.Point, bool) { return e.cursor, e.hasCursor }

// Viewport returns the display mapping computed at load time.
func (e *Editor) Viewport() Viewport { return e.view }

// CanUndo reports whether a snapshot is available.
func (e *Editor) CanUndo() bool { return e.backup.Available() }
