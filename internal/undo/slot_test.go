/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"time"
)

func TestCaptureRestore(t *testing.T) {
	var s Slot
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	s.Capture(img)
	if !s.Available() || s.Bytes() != len(img.Pix) {
		t.Fatalf("expected a snapshot of %d bytes, got available=%v bytes=%d", len(img.Pix), s.Available(), s.Bytes())
	}

	// later edits must not leak into the snapshot
	img.SetRGBA(1, 1, color.RGBA{0, 0, 0, 255})

	snap, ok := s.Restore()
	if !ok {
		t.Fatalf("Restore() reported nothing to restore")
	}
	if got := snap.Image.RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("snapshot pixel = %v, want captured value", got)
	}
	if snap.Image == img {
		t.Fatalf("snapshot must be a copy, not the live buffer")
	}
}

func TestRestoreTwiceIsNoop(t *testing.T) {
	var s Slot
	s.Capture(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if _, ok := s.Restore(); !ok {
		t.Fatalf("first Restore() should succeed")
	}
	if _, ok := s.Restore(); ok {
		t.Fatalf("second Restore() should report false")
	}
	if s.Available() || s.Bytes() != 0 {
		t.Fatalf("slot should be empty after restore")
	}
}

func TestCaptureOverwritesPrevious(t *testing.T) {
	t0 := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := Slot{now: func() time.Time { return t0 }}
	first := image.NewRGBA(image.Rect(0, 0, 2, 2))
	first.Pix[0] = 1
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))
	second.Pix[0] = 2

	s.Capture(first)
	s.Capture(second)
	snap, ok := s.Restore()
	if !ok {
		t.Fatalf("Restore() failed")
	}
	if !bytes.Equal(snap.Image.Pix, second.Pix) {
		t.Fatalf("slot should hold only the most recent capture")
	}
	if !snap.TS.Equal(t0) {
		t.Fatalf("TS = %v, want %v", snap.TS, t0)
	}
	if _, ok := s.Restore(); ok {
		t.Fatalf("older capture must not be recoverable")
	}
}
