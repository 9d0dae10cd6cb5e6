/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package imagefile

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/tiff"
)

// Format names match those reported by image.Decode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

var extFormats = map[string]string{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".jpe":  FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatForPath returns the format named by path's extension, if it is a supported one.
func FormatForPath(path string) (string, bool) {
	f, ok := extFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Supported reports whether format can be written back.
func Supported(format string) bool {
	_, ok := encoderFor(format, Options{})
	return ok
}

func encoderFor(format string, opts Options) (imgio.Encoder, bool) {
	jpegQuality := opts.JPEGQuality
	switch format {
	case FormatPNG:
		return imgio.PNGEncoder(), true
	case FormatJPEG:
		if jpegQuality < 1 || jpegQuality > 100 {
			jpegQuality = DefaultJPEGQuality
		}
		return imgio.JPEGEncoder(jpegQuality), true
	case FormatBMP:
		return imgio.BMPEncoder(), true
	case FormatGIF:
		return func(w io.Writer, img image.Image) error {
			if len(opts.Palette) > 0 {
				img = toPaletted(img, opts.Palette)
			}
			return gif.Encode(w, img, nil)
		}, true
	case FormatTIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, true
	}
	return nil, false
}

// toPaletted maps img onto pal by nearest colour, without dithering.
// Pixels that already hold a palette colour keep it exactly.
func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, pal)
	draw.Draw(pm, b, img, b.Min, draw.Src)
	return pm
}
