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

package shapefit

import "errors"

// Errors reported by the image input and output code. I/O functions wrap
// the underlying cause, so that callers can test with [errors.Is].
var (
	// ErrDecode indicates that the target image could not be read or
	// interpreted as a raster image.
	ErrDecode = errors.New("cannot decode image")

	// ErrWrite indicates that an output image could not be written.
	ErrWrite = errors.New("cannot write image")

	// ErrNoShape indicates that the search found no shape covering a
	// pixel of the image. This happens for kinds which cannot produce a
	// visible shape at the image size, for example triangles on an image
	// one pixel high.
	ErrNoShape = errors.New("no shape covers the image")
)
