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

import "math"

// BestColor returns the fill colour which, composited over source with
// the given alpha, brings the pixels covered by spans closest to target
// in the least-squares sense.
//
// For every covered pixel the colour C with alpha·C + (1-alpha)·S = T is
// computed. These per-pixel colours are averaged and the result is
// rounded and clamped to [0, 255]. Rows outside the image are ignored
// and spans are clipped horizontally.
//
// BestColor panics if alpha is zero or if the spans do not cover any
// pixel of the image. Both indicate a bug in the caller.
func BestColor(spans []Span, alpha uint8, source, target *Image) RGB {
	if alpha == 0 {
		panic("shapefit: no best colour for alpha 0")
	}
	if !source.SameSize(target) {
		panic("shapefit: image size mismatch")
	}

	a := float64(alpha) / 255
	keep := 1 - a
	var sumR, sumG, sumB float64
	count := 0
	for _, s := range spans {
		x1, x2, ok := s.clip(source.Width, source.Height)
		if !ok {
			continue
		}
		i := source.offset(x1, s.Y)
		end := source.offset(x2, s.Y) + 3
		for ; i < end; i += 3 {
			sumR += (float64(target.Pix[i]) - keep*float64(source.Pix[i])) / a
			sumG += (float64(target.Pix[i+1]) - keep*float64(source.Pix[i+1])) / a
			sumB += (float64(target.Pix[i+2]) - keep*float64(source.Pix[i+2])) / a
		}
		count += x2 - x1 + 1
	}
	if count == 0 {
		panic("shapefit: spans cover no pixels")
	}

	n := float64(count)
	return RGB{
		R: clampByte(sumR / n),
		G: clampByte(sumG / n),
		B: clampByte(sumB / n),
	}
}

// Draw composites c with the given alpha into canvas, over all pixels
// covered by spans. Each channel becomes round(c·alpha + old·(1-alpha)),
// clamped to [0, 255]. Rows outside the canvas are skipped and spans are
// clipped horizontally. An alpha of zero leaves the canvas unchanged.
func Draw(canvas *Image, spans []Span, c RGB, alpha uint8) {
	if alpha == 0 {
		return
	}
	a := float64(alpha) / 255
	keep := 1 - a
	cr := float64(c.R) * a
	cg := float64(c.G) * a
	cb := float64(c.B) * a
	for _, s := range spans {
		x1, x2, ok := s.clip(canvas.Width, canvas.Height)
		if !ok {
			continue
		}
		i := canvas.offset(x1, s.Y)
		end := canvas.offset(x2, s.Y) + 3
		pix := canvas.Pix
		for ; i < end; i += 3 {
			pix[i] = clampByte(cr + keep*float64(pix[i]))
			pix[i+1] = clampByte(cg + keep*float64(pix[i+1]))
			pix[i+2] = clampByte(cb + keep*float64(pix[i+2]))
		}
	}
}

// clampByte rounds v to the nearest integer and clamps it to [0, 255].
func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
