//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based UI components. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"clickblur/internal/config"
	"clickblur/internal/editor"
)

func newTestCanvas(t *testing.T, w, h int) (*ImageCanvas, *editor.Editor, string) {
	t.Helper()
	test.NewTempApp(t)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_ = f.Close()

	opts := editor.OptionsFromConfig(config.Defaults())
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ed, err := editor.New(path, opts)
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	ic := NewImageCanvas(ed)
	ic.Resize(ic.MinSize())
	return ic, ed, dir
}

func TestImageCanvas_MinSizeIsDisplaySize(t *testing.T) {
	ic, _, _ := newTestCanvas(t, 120, 80)
	if sz := ic.MinSize(); sz.Width != 120 || sz.Height != 80 {
		t.Fatalf("MinSize = %v, want 120x80", sz)
	}
	r := test.WidgetRenderer(ic)
	if len(r.Objects()) != 1 {
		t.Fatalf("expected a single raster object, got %d", len(r.Objects()))
	}
}

func TestImageCanvas_MinSizeFollowsPixelScale(t *testing.T) {
	ic, ed, _ := newTestCanvas(t, 120, 80)
	ic.SetPixelScale(2)
	if sz := ic.MinSize(); sz.Width != 60 || sz.Height != 40 {
		t.Fatalf("MinSize at scale 2 = %v, want 60x40", sz)
	}
	ic.Resize(ic.MinSize())
	test.TapAt(ic, fyne.NewPos(30, 20))
	if p, ok := ed.Cursor(); !ok || p != image.Pt(60, 40) {
		t.Fatalf("tap at widget center hit %v, want image (60,40)", p)
	}
}

func TestImageCanvas_MapsWidgetToDisplay(t *testing.T) {
	ic, _, _ := newTestCanvas(t, 100, 50)
	ic.Resize(fyne.NewSize(200, 100))
	x, y := ic.toDisplay(fyne.NewPos(40, 20))
	if x != 20 || y != 10 {
		t.Fatalf("toDisplay = (%v,%v), want (20,10)", x, y)
	}
}

func TestImageCanvas_TapBlurs(t *testing.T) {
	ic, ed, _ := newTestCanvas(t, 100, 100)
	before := append([]byte(nil), ed.Image().Pix...)
	test.TapAt(ic, fyne.NewPos(50, 50))
	if !ed.CanUndo() {
		t.Fatalf("tap should leave an undo snapshot")
	}
	same := true
	for i := range before {
		if before[i] != ed.Image().Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("tap did not blur anything")
	}
}

func TestImageCanvas_HoverShowsAndHidesCursor(t *testing.T) {
	ic, ed, _ := newTestCanvas(t, 100, 100)
	ic.MouseIn(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	ic.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 40)}})
	if p, ok := ed.Cursor(); !ok || p != image.Pt(30, 40) {
		t.Fatalf("cursor = %v %v, want (30,40)", p, ok)
	}
	ic.MouseOut()
	if _, ok := ed.Cursor(); ok {
		t.Fatalf("cursor should be hidden after MouseOut")
	}
}

func TestImageCanvas_BrushKeys(t *testing.T) {
	ic, ed, _ := newTestCanvas(t, 40, 40)
	ic.TypedRune('+')
	ic.TypedRune(']')
	if b := ed.Brush(); b.Radius != 35 || b.Strength != 21 {
		t.Fatalf("brush = %+v", b)
	}
}

func TestImageCanvas_EscapeQuitsWithoutSaving(t *testing.T) {
	ic, ed, dir := newTestCanvas(t, 40, 40)
	quit := 0
	ic.OnQuit = func() { quit++ }
	ic.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if quit != 1 || !ed.Done() || ic.Err() != nil {
		t.Fatalf("quit=%d done=%v err=%v", quit, ed.Done(), ic.Err())
	}
	if _, err := os.Stat(filepath.Join(dir, "shot_blurred.png")); !os.IsNotExist(err) {
		t.Fatalf("Escape must not write output")
	}
}

func TestImageCanvas_QSaves(t *testing.T) {
	ic, ed, dir := newTestCanvas(t, 40, 40)
	quit := 0
	ic.OnQuit = func() { quit++ }
	test.TapAt(ic, fyne.NewPos(20, 20))
	ic.TypedRune('q')
	if quit != 1 || ic.Err() != nil || !ed.Result().Saved {
		t.Fatalf("quit=%d err=%v result=%+v", quit, ic.Err(), ed.Result())
	}
	if _, err := os.Stat(filepath.Join(dir, "shot_blurred.png")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestImageCanvas_CloseActsLikeEscape(t *testing.T) {
	ic, ed, _ := newTestCanvas(t, 40, 40)
	quit := 0
	ic.OnQuit = func() { quit++ }
	ic.Close()
	if quit != 1 || !ed.Done() || ed.Result().Saved {
		t.Fatalf("close: quit=%d done=%v result=%+v", quit, ed.Done(), ed.Result())
	}
}
