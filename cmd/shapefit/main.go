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

// Command shapefit approximates an image by a sequence of semi-transparent
// shapes.
//
// Usage:
//
//	shapefit run [flags] input.jpg
//	shapefit kinds
//	shapefit version
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "shapefit",
	Short:         "Approximate images with geometric shapes",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the progress of the search")

	// An interrupted run stops after the current step and still writes
	// the final image.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
