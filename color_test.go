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
	"math"
	"testing"
)

func TestCompositeRoundTrip(t *testing.T) {
	// Drawing C over S and solving for the required colour of the result
	// must give back C, up to the rounding of the composited pixel.
	spans := []Span{{X1: 0, X2: 0, Y: 0}}
	for _, alpha := range []uint8{32, 64, 128, 200, 255} {
		tol := int(math.Ceil(0.5*255/float64(alpha))) + 1
		for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {10, 128, 250}, {200, 3, 77}} {
			for _, s := range []RGB{{0, 0, 0}, {255, 255, 255}, {90, 160, 30}} {
				source := NewUniform(1, 1, s)
				target := source.Clone()
				Draw(target, spans, c, alpha)

				got := BestColor(spans, alpha, source, target)
				if absDiff(got.R, c.R) > tol || absDiff(got.G, c.G) > tol || absDiff(got.B, c.B) > tol {
					t.Errorf("alpha=%d, S=%v, C=%v: recovered %v", alpha, s, c, got)
				}
			}
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestDrawClampsWhite(t *testing.T) {
	canvas := NewUniform(3, 2, RGB{12, 200, 99})
	canvas.SetRGB(1, 1, RGB{0, 0, 0})
	Draw(canvas, FullImage(3, 2), RGB{255, 255, 255}, 255)
	for i, v := range canvas.Pix {
		if v != 255 {
			t.Fatalf("Pix[%d] = %d", i, v)
		}
	}
}

func TestDrawHalfAlpha(t *testing.T) {
	canvas := NewUniform(1, 1, RGB{0, 100, 255})
	Draw(canvas, FullImage(1, 1), RGB{255, 100, 0}, 255)
	if got := canvas.RGBAt(0, 0); got != (RGB{255, 100, 0}) {
		t.Errorf("opaque draw gave %v", got)
	}

	canvas = NewUniform(1, 1, RGB{0, 100, 255})
	Draw(canvas, FullImage(1, 1), RGB{255, 100, 0}, 128)
	// 255·128/255 + 0 = 128; 100; 255·127/255 = 127
	if got := canvas.RGBAt(0, 0); got != (RGB{128, 100, 127}) {
		t.Errorf("half-transparent draw gave %v", got)
	}
}

func TestDrawZeroAlpha(t *testing.T) {
	canvas := NewUniform(4, 4, RGB{1, 2, 3})
	before := canvas.Clone()
	Draw(canvas, FullImage(4, 4), RGB{200, 200, 200}, 0)
	if RMSError(canvas, before) != 0 {
		t.Error("alpha 0 changed the canvas")
	}
}

func TestDrawClipping(t *testing.T) {
	canvas := NewImage(5, 3)
	spans := []Span{
		{X1: -10, X2: 1, Y: 0}, // clipped on the left
		{X1: 3, X2: 40, Y: 1},  // clipped on the right
		{X1: 0, X2: 4, Y: -1},  // above
		{X1: 0, X2: 4, Y: 3},   // below
		{X1: -9, X2: -2, Y: 2}, // left of the image
		{X1: 7, X2: 9, Y: 2},   // right of the image
	}
	Draw(canvas, spans, RGB{255, 255, 255}, 255)

	want := []string{
		"##...",
		"...##",
		".....",
	}
	for y, row := range want {
		for x, ch := range row {
			got := canvas.RGBAt(x, y).R == 255
			if got != (ch == '#') {
				t.Errorf("pixel (%d, %d): set=%t", x, y, got)
			}
		}
	}
}

func TestBestColorIgnoresOutside(t *testing.T) {
	source := NewUniform(4, 4, RGB{0, 0, 0})
	target := NewUniform(4, 4, RGB{100, 50, 25})
	spans := []Span{
		{X1: -3, X2: 10, Y: 2},
		{X1: 0, X2: 3, Y: 17},
	}
	if got := BestColor(spans, 255, source, target); got != (RGB{100, 50, 25}) {
		t.Errorf("got %v", got)
	}
}

func TestBestColorClamps(t *testing.T) {
	// reaching a white target from black at low alpha needs a colour far
	// above 255
	source := NewUniform(2, 2, RGB{0, 0, 0})
	target := NewUniform(2, 2, RGB{255, 255, 255})
	if got := BestColor(FullImage(2, 2), 50, source, target); got != (RGB{255, 255, 255}) {
		t.Errorf("got %v", got)
	}
	// and the opposite direction needs a negative colour
	if got := BestColor(FullImage(2, 2), 50, target, source); got != (RGB{0, 0, 0}) {
		t.Errorf("got %v", got)
	}
}

func TestBestColorPanics(t *testing.T) {
	img := NewImage(4, 4)
	cases := []struct {
		name  string
		spans []Span
		alpha uint8
	}{
		{"empty", nil, 128},
		{"outside", []Span{{X1: 0, X2: 3, Y: 4}}, 128},
		{"alpha zero", FullImage(4, 4), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			BestColor(c.spans, c.alpha, img, img)
		})
	}
}
