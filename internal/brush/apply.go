/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package brush

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
)

// Region returns the square enclosing the circle of radius r around c, clipped to bounds.
// Both edges are inclusive of c±r, so the result can be empty only when c lies far outside bounds.
func Region(bounds image.Rectangle, c image.Point, r int) image.Rectangle {
	return image.Rect(c.X-r, c.Y-r, c.X+r+1, c.Y+r+1).Intersect(bounds)
}

// Inside reports whether p lies within Euclidean distance r of c.
func Inside(p, c image.Point, r int) bool {
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= r*r
}

// Mask builds the single-channel circular mask for region: 0xff inside the circle, 0 outside.
// The mask shares region's coordinate space.
func Mask(region image.Rectangle, c image.Point, r int) *image.Alpha {
	m := image.NewAlpha(region)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if Inside(image.Pt(x, y), c, r) {
				m.Pix[m.PixOffset(x, y)] = 0xff
			}
		}
	}
	return m
}

// Apply blurs the pixels of img within radius of c using a kernel of the given size,
// leaving every pixel outside the circle untouched. Even kernel sizes are rounded up.
// It returns the bounding region that was written, which is empty when nothing changed.
func Apply(img *image.RGBA, c image.Point, radius, kernel int) image.Rectangle {
	region := Region(img.Bounds(), c, radius)
	if region.Empty() {
		return region
	}
	kernel = ForceOdd(max(kernel, 1))

	// Blur a zero-origin copy of the region only; edges extend, they do not wrap.
	roi := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(roi, roi.Bounds(), img, region.Min, draw.Src)
	blurred := blur.Gaussian(roi, float64(kernel-1)/2)

	// Replace, not composite: translucent pixels must take the blurred value as is.
	mask := Mask(region, c, radius)
	off := blurred.Bounds().Min.Sub(region.Min)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if mask.Pix[mask.PixOffset(x, y)] == 0 {
				continue
			}
			px := blurred.RGBAAt(x+off.X, y+off.Y)
			// The convolution truncates, so opaque input can come back at 254.
			if img.Pix[img.PixOffset(x, y)+3] == 0xff {
				px.A = 0xff
			}
			img.SetRGBA(x, y, px)
		}
	}
	return region
}
