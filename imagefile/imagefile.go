// seehuhn.de/go/shapefit - approximate images with geometric shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package imagefile reads target images and writes approximations.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP.
// Output formats are chosen by file name extension; in addition to the
// raster formats, ".pdf" writes the image as vector graphics.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/shapefit"
)

// JPEGQuality is the quality setting used for JPEG output.
const JPEGQuality = 95

// Load reads an image file. If maxSize is positive, the image is scaled
// down so that neither side exceeds maxSize pixels.
// Errors wrap [shapefit.ErrDecode].
func Load(fname string, maxSize int) (*shapefit.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shapefit.ErrDecode, err)
	}
	defer f.Close()

	img, err := Decode(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// Decode reads an image in any supported format from r.
// See [Load] for the meaning of maxSize.
func Decode(r io.Reader, maxSize int) (*shapefit.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shapefit.ErrDecode, err)
	}
	if b := src.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: empty image", shapefit.ErrDecode)
	}
	return shapefit.FromImage(Scale(src, maxSize)), nil
}

// Scale returns src scaled down so that neither side exceeds maxSize,
// keeping the aspect ratio. Images which are small enough, and all images
// if maxSize is not positive, are returned unchanged.
func Scale(src image.Image, maxSize int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || max(w, h) <= maxSize {
		return src
	}

	var nw, nh int
	if w >= h {
		nw, nh = maxSize, max(1, h*maxSize/w)
	} else {
		nw, nh = max(1, w*maxSize/h), maxSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// errUnknownFormat is returned for unsupported output file extensions.
var errUnknownFormat = errors.New("unsupported output format")

// Save writes img to a file. The format is chosen by the file name
// extension. Errors wrap [shapefit.ErrWrite].
func Save(fname string, img *shapefit.Image) error {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		if err := writePDF(fname, img); err != nil {
			return fmt.Errorf("%w: %s: %w", shapefit.ErrWrite, fname, err)
		}
		return nil
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("%w: %w", shapefit.ErrWrite, err)
	}
	err = Encode(f, ext, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// Encode writes img to w in the raster format identified by the file name
// extension ext, for example ".png". Errors wrap [shapefit.ErrWrite].
func Encode(w io.Writer, ext string, img *shapefit.Image) error {
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".gif":
		err = gif.Encode(w, img, nil)
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("%w %q", errUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", shapefit.ErrWrite, err)
	}
	return nil
}
