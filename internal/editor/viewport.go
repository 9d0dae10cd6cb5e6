/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"image"
	"math"
)

// Viewport maps between the on-screen display surface and original image pixels.
// Images larger than the screen are shown downscaled; they are never upscaled.
type Viewport struct {
	// Scale is display pixels per image pixel, in (0, 1].
	Scale       float64
	ImageSize   image.Point
	DisplaySize image.Point
}

// FitScale returns min(1, screenW/imageW, screenH/imageH).
func FitScale(imageSize, screen image.Point) float64 {
	s := 1.0
	if imageSize.X > 0 && screen.X > 0 {
		s = math.Min(s, float64(screen.X)/float64(imageSize.X))
	}
	if imageSize.Y > 0 && screen.Y > 0 {
		s = math.Min(s, float64(screen.Y)/float64(imageSize.Y))
	}
	return s
}

// NewViewport fits an image of the given size into screen.
func NewViewport(imageSize, screen image.Point) Viewport {
	s := FitScale(imageSize, screen)
	d := image.Pt(
		max(1, min(int(float64(imageSize.X)*s), imageSize.X)),
		max(1, min(int(float64(imageSize.Y)*s), imageSize.Y)),
	)
	if screen.X > 0 {
		d.X = min(d.X, screen.X)
	}
	if screen.Y > 0 {
		d.Y = min(d.Y, screen.Y)
	}
	return Viewport{Scale: s, ImageSize: imageSize, DisplaySize: d}
}

// ToImage converts a display position to the image pixel under it.
func (v Viewport) ToImage(dx, dy float64) image.Point {
	return image.Pt(int(math.Floor(dx/v.Scale)), int(math.Floor(dy/v.Scale)))
}

// ToDisplay converts an image pixel to its display position.
func (v Viewport) ToDisplay(p image.Point) (float64, float64) {
	return float64(p.X) * v.Scale, float64(p.Y) * v.Scale
}
