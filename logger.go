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
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler is a slog.Handler that drops all records. Enabled reports
// false, so callers skip formatting altogether.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger used by shapefit and its sub-packages.
// By default nothing is logged. Passing nil restores the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: search progress (random sampling, climbing)
//   - [slog.LevelInfo]: one record per committed shape
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
