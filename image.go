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

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB is an opaque 8-bit colour. It implements [color.Color].
type RGB struct {
	R, G, B uint8
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGBModel converts colours to [RGB], dropping any alpha channel.
var RGBModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Image is an RGB raster. Pixels are stored in row-major order with three
// bytes (red, green, blue) per pixel and no padding between rows.
// The image origin is (0, 0).
type Image struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewImage allocates a black width×height image.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, 3*width*height),
		Width:  width,
		Height: height,
	}
}

// NewUniform allocates a width×height image filled with c.
func NewUniform(width, height int, c RGB) *Image {
	img := NewImage(width, height)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
	}
	return img
}

// FromImage converts src into a new RGB image. The alpha channel of src
// is discarded.
func FromImage(src image.Image) *Image {
	if img, ok := src.(*Image); ok {
		return img.Clone()
	}
	b := src.Bounds()
	tmp, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		tmp = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(tmp, tmp.Bounds(), src, b.Min, draw.Src)
	}

	img := NewImage(b.Dx(), b.Dy())
	for y := range img.Height {
		row := tmp.Pix[y*tmp.Stride:]
		out := img.Pix[3*y*img.Width:]
		for x := range img.Width {
			copy(out[3*x:3*x+3], row[4*x:4*x+3])
		}
	}
	return img
}

func (img *Image) offset(x, y int) int {
	return 3 * (y*img.Width + x)
}

// RGBAt returns the colour of the pixel at (x, y).
func (img *Image) RGBAt(x, y int) RGB {
	i := img.offset(x, y)
	return RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// SetRGB changes the colour of the pixel at (x, y).
func (img *Image) SetRGB(x, y int, c RGB) {
	i := img.offset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return RGBModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return RGB{}
	}
	return img.RGBAt(x, y)
}

// SameSize reports whether img and other have the same dimensions.
func (img *Image) SameSize(other *Image) bool {
	return img.Width == other.Width && img.Height == other.Height
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	return &Image{
		Pix:    append([]uint8(nil), img.Pix...),
		Width:  img.Width,
		Height: img.Height,
	}
}

// CopyFrom overwrites all pixels of img with the pixels of src.
// Both images must have the same size.
func (img *Image) CopyFrom(src *Image) {
	if !img.SameSize(src) {
		panic("shapefit: image size mismatch")
	}
	copy(img.Pix, src.Pix)
}

// copySpans copies the pixels covered by spans from src into img.
func (img *Image) copySpans(src *Image, spans []Span) {
	for _, s := range spans {
		x1, x2, ok := s.clip(img.Width, img.Height)
		if !ok {
			continue
		}
		i, j := img.offset(x1, s.Y), img.offset(x2, s.Y)+3
		copy(img.Pix[i:j], src.Pix[i:j])
	}
}

// MeanColor returns the per-channel mean of all pixels, rounded down.
// The mean of an empty image is black.
func (img *Image) MeanColor() RGB {
	n := uint64(img.Width * img.Height)
	if n == 0 {
		return RGB{}
	}
	var r, g, b uint64
	for i := 0; i < len(img.Pix); i += 3 {
		r += uint64(img.Pix[i])
		g += uint64(img.Pix[i+1])
		b += uint64(img.Pix[i+2])
	}
	return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}
