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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"seehuhn.de/go/shapefit"
)

var (
	titleColor = color.New(color.FgYellow, color.Bold)
	stepColor  = color.New(color.FgBlue, color.Bold)
	errorColor = color.New(color.FgGreen)
	fileColor  = color.New(color.FgCyan)
)

// setupOutput applies the global --color and --verbose flags.
func setupOutput(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (must be auto, on or off)", colorFlag)
	}

	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		shapefit.SetLogger(slog.New(h))
	}
	return nil
}

// progress prints one line per committed shape.
type progress struct {
	w     io.Writer
	total int
}

func (p *progress) step(n int, s shapefit.Shape, c shapefit.RGB, err float64) {
	fmt.Fprintf(p.w, "%s  error %s  %v #%02x%02x%02x\n",
		stepColor.Sprintf("%*d/%d", len(fmt.Sprint(p.total)), n, p.total),
		errorColor.Sprintf("%8.4f", err),
		s, c.R, c.G, c.B)
}

func (p *progress) wrote(fname string) {
	fmt.Fprintf(p.w, "wrote %s\n", fileColor.Sprint(fname))
}
