/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anthonynsimon/bild/clone"
)

// OutputSuffix is inserted between the input's base name and its extension.
const OutputSuffix = "_blurred"

// DefaultJPEGQuality is used when no valid quality is configured.
const DefaultJPEGQuality = 95

// Source is a decoded input image converted to an editable RGBA buffer.
type Source struct {
	Path   string
	Format string
	Image  *image.RGBA
	// Palette is the colour table of a GIF input, nil otherwise.
	Palette color.Palette
}

// Options tune the encoder used by Save.
type Options struct {
	JPEGQuality int
	// Palette, when set, is the colour table for GIF output. Pixels are mapped
	// to their nearest entry instead of being requantized.
	Palette color.Palette
}

// Load decodes the image at path. Any failure is reported as *LoadError.
func Load(path string) (*Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &LoadError{Path: path, Err: errors.New("path is empty")}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if st.IsDir() {
		return nil, &LoadError{Path: path, Err: errors.New("is a directory")}
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if !Supported(format) {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("unsupported format %q", format)}
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, &LoadError{Path: path, Err: errors.New("image has no pixels")}
	}
	src := &Source{Path: path, Format: format, Image: clone.AsRGBA(img)}
	if p, ok := img.(*image.Paletted); ok && format == FormatGIF {
		src.Palette = append(color.Palette(nil), p.Palette...)
	}
	return src, nil
}

// OutputPath maps dir/name.ext to dir/name_blurred.ext.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + OutputSuffix + ext
}

// Save encodes img in the format named by path's extension, falling back to
// fallbackFormat when the extension is unknown, and writes it transactionally.
// Any failure is reported as *SaveError.
func Save(path string, img image.Image, fallbackFormat string, opts Options) error {
	format, ok := FormatForPath(path)
	if !ok {
		format = fallbackFormat
	}
	enc, ok := encoderFor(format, opts)
	if !ok {
		return &SaveError{Path: path, Err: fmt.Errorf("no encoder for format %q", format)}
	}
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("encode %s: %w", format, err)}
	}

	// Transactional write: to temp file in same directory, then rename over target
	dir := filepath.Dir(path)
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, buf.Bytes()); err != nil {
		_ = os.Remove(temp)
		return &SaveError{Path: path, Err: fmt.Errorf("write temp file: %w", err)}
	}
	// On Windows, replace by removing destination first if needed
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(path); err == nil {
			_ = os.Remove(path)
		}
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return &SaveError{Path: path, Err: fmt.Errorf("replace output: %w", err)}
	}
	return nil
}

// writeFileSync writes data to a file and flushes it to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
