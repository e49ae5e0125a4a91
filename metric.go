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

// RMSError returns the root-mean-square difference between two images,
// taken over all pixels and all three channels:
//
//	sqrt(sum((a-b)²) / (3·width·height))
//
// The images must have the same size; RMSError panics otherwise.
func RMSError(a, b *Image) float64 {
	if !a.SameSize(b) {
		panic("shapefit: image size mismatch")
	}
	n := len(a.Pix)
	if n == 0 {
		return 0
	}
	var sum uint64
	for i, va := range a.Pix {
		d := int64(va) - int64(b.Pix[i])
		sum += uint64(d * d)
	}
	return math.Sqrt(float64(sum) / float64(n))
}

// PartialError updates an RMS error after a region of an image has
// changed. prev is the error between before and target. The pixels of
// before and after may only differ under spans. The result is the error
// between after and target.
//
// Only the pixels under spans are visited. The spans must not overlap;
// every shape kind in this package produces disjoint spans.
func PartialError(prev float64, spans []Span, before, after, target *Image) float64 {
	if !before.SameSize(target) || !after.SameSize(target) {
		panic("shapefit: image size mismatch")
	}
	n := float64(len(target.Pix))
	if n == 0 {
		return 0
	}

	var delta int64
	for _, s := range spans {
		x1, x2, ok := s.clip(target.Width, target.Height)
		if !ok {
			continue
		}
		i := target.offset(x1, s.Y)
		end := target.offset(x2, s.Y) + 3
		for ; i < end; i++ {
			t := int64(target.Pix[i])
			db := t - int64(before.Pix[i])
			da := t - int64(after.Pix[i])
			delta += da*da - db*db
		}
	}

	sq := prev*prev*n + float64(delta)
	if sq <= 0 {
		return 0
	}
	return math.Sqrt(sq / n)
}
