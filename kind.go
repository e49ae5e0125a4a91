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
	"maps"
	"slices"
	"sync"
)

// DefaultAlpha is the opacity of randomly generated shapes.
const DefaultAlpha = 128

// Kind describes a family of shapes, for example ellipses.
// Kinds are registered by name using [RegisterKind].
type Kind struct {
	// Name identifies the kind. It is stored in checkpoints and used on
	// the command line.
	Name string

	// NumParams is the length of the parameter slice returned by
	// Shape.Params and accepted by New.
	NumParams int

	// Random returns a shape with uniformly distributed parameters,
	// suitable for a width×height image.
	Random func(width, height int, alpha uint8, rnd Rand) Shape

	// New constructs a shape from its parameters.
	New func(params []int, alpha uint8) (Shape, error)
}

func (k *Kind) String() string {
	return k.Name
}

// checkParams validates the constraints common to all New functions.
func checkParams(name string, numParams int, params []int, alpha uint8) error {
	if len(params) != numParams {
		return fmt.Errorf("%s: expected %d parameters, got %d", name, numParams, len(params))
	}
	if alpha == 0 {
		return fmt.Errorf("%s: alpha must be positive", name)
	}
	return nil
}

var (
	kindsMu sync.RWMutex
	kinds   = map[string]*Kind{}
)

// RegisterKind makes a shape kind available via [LookupKind].
// It panics if a kind with the same name is already registered.
func RegisterKind(k *Kind) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	if _, dup := kinds[k.Name]; dup {
		panic("shapefit: duplicate shape kind " + k.Name)
	}
	kinds[k.Name] = k
}

// LookupKind returns the registered kind with the given name.
func LookupKind(name string) (*Kind, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	k, ok := kinds[name]
	return k, ok
}

// Kinds returns the names of all registered kinds in sorted order.
func Kinds() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	return slices.Sorted(maps.Keys(kinds))
}

func init() {
	RegisterKind(EllipseKind)
	RegisterKind(TriangleKind)
	RegisterKind(RotatedEllipseKind)
}
