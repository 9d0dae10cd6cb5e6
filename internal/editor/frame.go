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

	"github.com/anthonynsimon/bild/clone"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Frame renders the preview at display size: the working image, the brush
// outline at the cursor and the brush readout. The working image is not modified.
func (e *Editor) Frame() *image.RGBA {
	var frame *image.RGBA
	if e.view.Scale >= 1 {
		frame = clone.AsRGBA(e.current)
	} else {
		frame = image.NewRGBA(image.Rectangle{Max: e.view.DisplaySize})
		xdraw.ApproxBiLinear.Scale(frame, frame.Bounds(), e.current, e.current.Bounds(), xdraw.Src, nil)
	}

	dc := gg.NewContextForRGBA(frame)
	dc.SetRGB255(0, 255, 0)
	if e.hasCursor {
		x, y := e.view.ToDisplay(e.cursor)
		dc.DrawCircle(x, y, float64(e.brush.Radius)*e.view.Scale)
		dc.SetLineWidth(e.outlineWidth)
		dc.Stroke()
	}
	if e.showHUD {
		dc.DrawString(e.brush.String(), 10, 20)
	}
	return frame
}
