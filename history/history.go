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

// Package history saves the shapes of a session to disk and replays them.
//
// A checkpoint stores, for every committed shape, the kind name, the
// geometric parameters, the opacity and the colour. Replaying a
// checkpoint onto a fresh model with the same background reproduces the
// canvas exactly.
package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"seehuhn.de/go/shapefit"
)

// schemaVersion is increased whenever the layout of Checkpoint changes.
const schemaVersion uint16 = 1

// Record describes one committed shape.
type Record struct {
	Kind   string
	Params []int
	Alpha  uint8
	Color  [3]uint8

	// Error is the RMS error after the shape was committed.
	Error float64
}

// Checkpoint is the saved state of a session.
type Checkpoint struct {
	Schema uint16

	Width      int
	Height     int
	Background [3]uint8

	Records []Record
}

var (
	errSchema = errors.New("unsupported checkpoint version")
	errSize   = errors.New("checkpoint size does not match the target")
)

// FromModel returns a checkpoint holding the shapes committed to m.
func FromModel(m *shapefit.Model) *Checkpoint {
	bg := m.Background()
	target := m.Target()
	cp := &Checkpoint{
		Schema:     schemaVersion,
		Width:      target.Width,
		Height:     target.Height,
		Background: [3]uint8{bg.R, bg.G, bg.B},
	}

	shapes := m.Shapes()
	colors := m.Colors()
	errs := m.Errors()
	cp.Records = make([]Record, len(shapes))
	for i, s := range shapes {
		c := colors[i]
		cp.Records[i] = Record{
			Kind:   s.Kind().Name,
			Params: s.Params(),
			Alpha:  s.Alpha(),
			Color:  [3]uint8{c.R, c.G, c.B},
			Error:  errs[i+1],
		}
	}
	return cp
}

// Write encodes cp to w.
func Write(w io.Writer, cp *Checkpoint) error {
	if err := msgpack.NewEncoder(w).Encode(cp); err != nil {
		return fmt.Errorf("%w: %w", shapefit.ErrWrite, err)
	}
	return nil
}

// Read decodes a checkpoint written by [Write].
func Read(r io.Reader) (*Checkpoint, error) {
	cp := &Checkpoint{}
	if err := msgpack.NewDecoder(r).Decode(cp); err != nil {
		return nil, fmt.Errorf("%w: %w", shapefit.ErrDecode, err)
	}
	if cp.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: %w %d", shapefit.ErrDecode, errSchema, cp.Schema)
	}
	return cp, nil
}

// Save writes the shapes of m to the named file. The file is replaced
// atomically, so that an interrupted write leaves the previous
// checkpoint intact.
func Save(fname string, m *shapefit.Model) (err error) {
	f, err := os.CreateTemp(filepath.Dir(fname), "tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", shapefit.ErrWrite, err)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	err = Write(f, FromModel(m))
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %w", shapefit.ErrWrite, closeErr)
	}
	if err != nil {
		return err
	}
	if err = os.Rename(f.Name(), fname); err != nil {
		return fmt.Errorf("%w: %w", shapefit.ErrWrite, err)
	}
	return nil
}

// Load reads a checkpoint from the named file.
func Load(fname string) (*Checkpoint, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shapefit.ErrDecode, err)
	}
	defer f.Close()

	cp, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cp, nil
}

// Restore starts a new model for target from the checkpoint, and replays
// all recorded shapes.
func (cp *Checkpoint) Restore(target *shapefit.Image, rnd shapefit.Rand) (*shapefit.Model, error) {
	if target.Width != cp.Width || target.Height != cp.Height {
		return nil, fmt.Errorf("%w: %w: %dx%d vs. %dx%d", shapefit.ErrDecode, errSize,
			cp.Width, cp.Height, target.Width, target.Height)
	}
	bg := shapefit.RGB{R: cp.Background[0], G: cp.Background[1], B: cp.Background[2]}
	m := shapefit.NewModelWithBackground(target, bg, rnd)
	if err := Replay(m, cp.Records); err != nil {
		return nil, err
	}
	return m, nil
}

// Replay commits the recorded shapes to m, in order.
// Shapes are constructed through the kind registry, so all kinds used
// in the records must be registered.
func Replay(m *shapefit.Model, recs []Record) error {
	for i, rec := range recs {
		kind, ok := shapefit.LookupKind(rec.Kind)
		if !ok {
			return fmt.Errorf("%w: record %d: unknown shape kind %q",
				shapefit.ErrDecode, i, rec.Kind)
		}
		s, err := kind.New(rec.Params, rec.Alpha)
		if err != nil {
			return fmt.Errorf("%w: record %d: %w", shapefit.ErrDecode, i, err)
		}
		c := shapefit.RGB{R: rec.Color[0], G: rec.Color[1], B: rec.Color[2]}
		m.Commit(s, c)
	}
	return nil
}
