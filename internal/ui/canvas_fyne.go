//go:build fyne

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

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"clickblur/internal/editor"
	applog "clickblur/internal/log"
)

// ImageCanvas shows the editor preview and feeds pointer and key events back to it.
// Positions are mapped from widget units to display pixels by the ratio of the
// widget size to the frame size, so the canvas scale factor does not matter.
type ImageCanvas struct {
	widget.BaseWidget

	ed     *editor.Editor
	raster *canvas.Image
	err    error
	log    *slog.Logger
	// pixelScale is device pixels per Fyne unit.
	pixelScale float32

	// OnQuit is called once the editor session ends.
	OnQuit func()
}

var (
	_ fyne.Tappable       = (*ImageCanvas)(nil)
	_ desktop.Hoverable   = (*ImageCanvas)(nil)
	_ fyne.WidgetRenderer = (*imageCanvasRenderer)(nil)
)

func NewImageCanvas(ed *editor.Editor) *ImageCanvas {
	ic := &ImageCanvas{ed: ed, log: applog.WithComponent("ui"), pixelScale: 1}
	ic.raster = canvas.NewImageFromImage(ed.Frame())
	ic.raster.FillMode = canvas.ImageFillStretch
	ic.raster.ScaleMode = canvas.ImageScalePixels
	ic.ExtendBaseWidget(ic)
	return ic
}

// CreateRenderer returns a renderer that stretches the frame over the widget.
func (ic *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &imageCanvasRenderer{ic: ic, objects: []fyne.CanvasObject{ic.raster}}
}

// SetPixelScale sets the canvas scale so that one display pixel is one device pixel.
func (ic *ImageCanvas) SetPixelScale(s float32) {
	if s <= 0 {
		s = 1
	}
	ic.pixelScale = s
	ic.Refresh()
}

// MinSize is the display size of the image in Fyne units.
func (ic *ImageCanvas) MinSize() fyne.Size {
	d := ic.ed.Viewport().DisplaySize
	return fyne.NewSize(float32(d.X)/ic.pixelScale, float32(d.Y)/ic.pixelScale)
}

// Err is the save error, if the session ended with one.
func (ic *ImageCanvas) Err() error { return ic.err }

// toDisplay converts a widget position to display pixel coordinates.
func (ic *ImageCanvas) toDisplay(pos fyne.Position) (float64, float64) {
	d := ic.ed.Viewport().DisplaySize
	sz := ic.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return float64(pos.X), float64(pos.Y)
	}
	return float64(pos.X) * float64(d.X) / float64(sz.Width), float64(pos.Y) * float64(d.Y) / float64(sz.Height)
}

func (ic *ImageCanvas) Tapped(e *fyne.PointEvent) {
	ic.dispatch(ic.ed.Click(ic.toDisplay(e.Position)))
}

func (ic *ImageCanvas) MouseIn(e *desktop.MouseEvent) {
	ic.dispatch(ic.ed.MoveCursor(ic.toDisplay(e.Position)))
}

func (ic *ImageCanvas) MouseMoved(e *desktop.MouseEvent) {
	ic.dispatch(ic.ed.MoveCursor(ic.toDisplay(e.Position)))
}

func (ic *ImageCanvas) MouseOut() { ic.dispatch(ic.ed.LeaveCursor()) }

// TypedRune and TypedKey are installed as the window's key handlers.
func (ic *ImageCanvas) TypedRune(r rune) { ic.key(editor.Key(string(r))) }

func (ic *ImageCanvas) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		ic.key(editor.KeyEscape)
	}
}

// Close ends the session the way Escape does. It is used for the window close button.
func (ic *ImageCanvas) Close() {
	ic.log.Debug("window close requested")
	if ic.ed.Done() {
		ic.dispatch(editor.ActionQuit)
		return
	}
	ic.key(editor.KeyEscape)
}

func (ic *ImageCanvas) key(k editor.Key) {
	a, err := ic.ed.HandleKey(k)
	if err != nil {
		ic.err = err
	}
	ic.dispatch(a)
}

func (ic *ImageCanvas) dispatch(a editor.Action) {
	switch a {
	case editor.ActionRedraw:
		ic.raster.Image = ic.ed.Frame()
		ic.raster.Refresh()
	case editor.ActionQuit:
		if ic.OnQuit != nil {
			ic.OnQuit()
		}
	}
}

type imageCanvasRenderer struct {
	ic      *ImageCanvas
	objects []fyne.CanvasObject
}

func (r *imageCanvasRenderer) Destroy()                     {}
func (r *imageCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *imageCanvasRenderer) MinSize() fyne.Size           { return r.ic.MinSize() }
func (r *imageCanvasRenderer) Refresh()                     { canvas.Refresh(r.ic.raster) }

func (r *imageCanvasRenderer) Layout(size fyne.Size) {
	r.ic.raster.Move(fyne.NewPos(0, 0))
	r.ic.raster.Resize(size)
}
