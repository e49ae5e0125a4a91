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

	"github.com/spf13/cobra"

	"seehuhn.de/go/shapefit"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the available shape kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupOutput(cmd); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, name := range shapefit.Kinds() {
			kind, _ := shapefit.LookupKind(name)
			fmt.Fprintf(out, "%-16s %d parameters\n", titleColor.Sprint(name), kind.NumParams)
		}
		return nil
	},
}
