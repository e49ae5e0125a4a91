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

// Search finds a shape which reduces the difference between a canvas and
// a target image. Current is never modified; candidate shapes are drawn
// onto a private copy.
//
// The fields must not be changed while a search is running. If Current
// is modified between searches, Reset must be called.
//
// A Search is not safe for concurrent use.
type Search struct {
	// Current is the canvas the shapes are drawn onto.
	Current *Image

	// Target is the image to approximate. It must have the same size as
	// Current.
	Target *Image

	// Rand is the only source of randomness.
	Rand Rand

	// Alpha is the opacity of random shapes. Zero means DefaultAlpha.
	Alpha uint8

	// Incremental enables scoring candidates by visiting only the pixels
	// under the candidate. The result agrees with the full computation up
	// to rounding errors.
	Incremental bool

	// OnImprove, if not nil, is called by Climb for every accepted
	// mutation.
	OnImprove func(s Shape, err float64)

	scratch   *Image  // copy of Current, reused across evaluations
	baseErr   float64 // RMSError(Current, Target), for incremental scoring
	baseValid bool
}

// Reset discards cached state derived from Current.
func (s *Search) Reset() {
	s.scratch = nil
	s.baseValid = false
}

func (s *Search) alpha() uint8 {
	if s.Alpha == 0 {
		return DefaultAlpha
	}
	return s.Alpha
}

// FitError returns the error which would result from drawing sh onto
// Current at its best colour. Shapes without any pixel inside the image
// have error +Inf.
func (s *Search) FitError(sh Shape) float64 {
	spans := sh.Spans()
	if !covers(spans, s.Current.Width, s.Current.Height) {
		return math.Inf(1)
	}
	c := BestColor(spans, sh.Alpha(), s.Current, s.Target)

	if !s.Incremental {
		if s.scratch == nil {
			s.scratch = NewImage(s.Current.Width, s.Current.Height)
		}
		s.scratch.CopyFrom(s.Current)
		Draw(s.scratch, spans, c, sh.Alpha())
		return RMSError(s.scratch, s.Target)
	}

	// In incremental mode scratch equals Current between calls.
	if s.scratch == nil {
		s.scratch = s.Current.Clone()
	}
	if !s.baseValid {
		s.baseErr = RMSError(s.Current, s.Target)
		s.baseValid = true
	}
	Draw(s.scratch, spans, c, sh.Alpha())
	err := PartialError(s.baseErr, spans, s.Current, s.scratch, s.Target)
	s.scratch.copySpans(s.Current, spans)
	return err
}

// BestOfRandom draws n random shapes of the given kind and returns the
// one with the lowest fit error. At least one shape is drawn. On ties the
// earlier shape is kept.
func (s *Search) BestOfRandom(kind *Kind, n int) (Shape, float64) {
	w, h := s.Current.Width, s.Current.Height
	best := kind.Random(w, h, s.alpha(), s.Rand)
	bestErr := s.FitError(best)
	for i := 1; i < n; i++ {
		cand := kind.Random(w, h, s.alpha(), s.Rand)
		candErr := s.FitError(cand)
		if candErr < bestErr {
			best, bestErr = cand, candErr
		}
	}
	Logger().Debug("best random shape", "shape", best, "error", bestErr)
	return best, bestErr
}

// Climb improves sh by hill climbing. In every iteration a clone of the
// current shape is mutated once. The mutant replaces the current shape if
// its error is strictly smaller. Climbing stops after maxAge consecutive
// iterations without improvement.
//
// sh is not modified. err must be the fit error of sh.
func (s *Search) Climb(sh Shape, err float64, maxAge int) (Shape, float64) {
	w, h := s.Current.Width, s.Current.Height
	steps := 0
	for age := 0; age < maxAge; {
		cand := sh.Clone()
		cand.Mutate(w, h, s.Rand)
		candErr := s.FitError(cand)
		if candErr < err {
			sh, err = cand, candErr
			age = 0
			if s.OnImprove != nil {
				s.OnImprove(sh, err)
			}
		} else {
			age++
		}
		steps++
	}
	Logger().Debug("hill climb", "steps", steps, "shape", sh, "error", err)
	return sh, err
}

// BestOfClimbs runs BestOfRandom followed by Climb restarts times and
// returns the best result. Every restart begins with fresh random shapes.
// At least one restart is run.
func (s *Search) BestOfClimbs(kind *Kind, restarts, maxAge, n int) (Shape, float64) {
	var best Shape
	bestErr := math.Inf(1)
	for i := range max(restarts, 1) {
		start, startErr := s.BestOfRandom(kind, n)
		cand, candErr := s.Climb(start, startErr, maxAge)
		if i == 0 || candErr < bestErr {
			best, bestErr = cand, candErr
		}
	}
	Logger().Debug("best hill climb", "shape", best, "error", bestErr)
	return best, bestErr
}
