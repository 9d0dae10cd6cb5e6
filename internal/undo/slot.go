/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps the image state from immediately before the last edit.
// Depth is exactly one: capturing again overwrites, restoring empties the slot.
package undo

import (
	"image"
	"time"

	"github.com/anthonynsimon/bild/clone"
)

// Snapshot is a private copy of an image buffer. TS is when it was captured.
type Snapshot struct {
	Image *image.RGBA
	TS    time.Time
}

// Slot holds at most one Snapshot. The zero value is an empty slot.
// It is not safe for concurrent use; the editor owns it from a single goroutine.
type Slot struct {
	snap *Snapshot
	now  func() time.Time
}

// Capture stores a deep copy of img, replacing any previous snapshot.
func (s *Slot) Capture(img *image.RGBA) {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	s.snap = &Snapshot{Image: clone.AsRGBA(img), TS: now()}
}

// Restore hands back the stored snapshot and empties the slot.
// The second call in a row reports false.
func (s *Slot) Restore() (Snapshot, bool) {
	if s.snap == nil {
		return Snapshot{}, false
	}
	snap := *s.snap
	s.snap = nil
	return snap, true
}

// Available reports whether Restore would succeed.
func (s *Slot) Available() bool { return s.snap != nil }

// Bytes returns the pixel memory held by the slot, for diagnostics.
func (s *Slot) Bytes() int {
	if s.snap == nil || s.snap.Image == nil {
		return 0
	}
	return len(s.snap.Image.Pix)
}
