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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 5, 6, 7))
	src.SetNRGBA(3, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(5, 6, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	img := FromImage(src)
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size %dx%d", img.Width, img.Height)
	}
	if got := img.RGBAt(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("pixel (0, 0) is %v", got)
	}
	// alpha is dropped, not premultiplied
	if got := img.RGBAt(2, 1); got != (RGB{200, 100, 50}) {
		t.Errorf("pixel (2, 1) is %v", got)
	}
}

func TestImageInterface(t *testing.T) {
	img := NewUniform(3, 2, RGB{7, 8, 9})
	img.SetRGB(2, 1, RGB{255, 0, 128})

	var _ image.Image = img
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds %v", img.Bounds())
	}
	r, g, b, a := img.At(2, 1).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("At(2, 1).RGBA() = %x %x %x %x", r, g, b, a)
	}
	if img.At(5, 5) != (RGB{}) {
		t.Error("pixel outside bounds is not black")
	}

	back := FromImage(imageOnly{img})
	if !slices.Equal(back.Pix, img.Pix) {
		t.Error("conversion through image.Image changed pixels")
	}
}

// imageOnly hides the concrete type of an image.
type imageOnly struct {
	image.Image
}

func TestMeanColor(t *testing.T) {
	img := NewImage(2, 2)
	img.SetRGB(0, 0, RGB{255, 0, 3})
	img.SetRGB(1, 1, RGB{255, 8, 0})
	if got := img.MeanColor(); got != (RGB{127, 2, 0}) {
		t.Errorf("mean %v", got)
	}
	if got := NewImage(0, 0).MeanColor(); got != (RGB{}) {
		t.Errorf("mean of empty image %v", got)
	}
}

func TestSpanOrder(t *testing.T) {
	spans := NewEllipse(5, 5, 3, 4, DefaultAlpha).Spans()
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, CompareSpans)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Y >= sorted[i].Y {
			t.Fatalf("not sorted: %v", sorted)
		}
	}
	if CompareSpans(Span{X1: 0, X2: 1, Y: 3}, Span{X1: 5, X2: 9, Y: 3}) != 0 {
		t.Error("spans in one row compare unequal")
	}
}

func TestFullImage(t *testing.T) {
	spans := FullImage(7, 3)
	if len(spans) != 3 {
		t.Fatalf("%d spans", len(spans))
	}
	if countPixels(spans, 7, 3) != 21 {
		t.Errorf("%d pixels", countPixels(spans, 7, 3))
	}
}

// compareImages returns an error if the two images differ. On failure a
// diff image is written to the debug directory.
func compareImages(name string, expected, actual *Image) error {
	if !expected.SameSize(actual) {
		return fmt.Errorf("size %dx%d, want %dx%d",
			actual.Width, actual.Height, expected.Width, expected.Height)
	}
	diffCount := 0
	for i := range expected.Pix {
		if expected.Pix[i] != actual.Pix[i] {
			diffCount++
		}
	}
	if diffCount > 0 {
		writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d channel values differ", diffCount)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *Image) {
	os.MkdirAll("debug", 0755)

	w, h := expected.Width, expected.Height
	img := image.NewRGBA(image.Rect(0, 0, 2*w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, expected.RGBAt(x, y)) // expected on the left
			img.Set(x+w, y, actual.RGBAt(x, y)) // actual on the right
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
