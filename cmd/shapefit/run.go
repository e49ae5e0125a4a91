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
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/shapefit"
	"seehuhn.de/go/shapefit/history"
	"seehuhn.de/go/shapefit/imagefile"
)

var flagConfig = defaultConfig()

func init() {
	addFlags(runCmd.Flags(), &flagConfig)
}

var runCmd = &cobra.Command{
	Use:   "run [flags] <input>",
	Short: "Approximate an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupOutput(cmd); err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd.Flags(), flagConfig)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cmd, args[0], &cfg)
	},
}

func run(ctx context.Context, cmd *cobra.Command, input string, cfg *runConfig) error {
	p, err := cfg.validate()
	if err != nil {
		return err
	}

	target, err := imagefile.Load(input, cfg.Resize)
	if err != nil {
		return err
	}

	var seed uint64
	if p.seed != nil {
		seed = *p.seed
	} else {
		seed = rand.Uint64()
	}
	shapefit.Logger().Info("starting", "input", input,
		"width", target.Width, "height", target.Height, "seed", seed)
	rnd := rand.New(rand.NewPCG(seed, seed))

	m, err := newModel(cfg, p, target, rnd)
	if err != nil {
		return err
	}
	m.Alpha = p.alpha
	m.Incremental = cfg.Incremental

	out := &progress{w: cmd.OutOrStdout(), total: m.NumShapes() + p.shapes}
	for range p.shapes {
		if ctx.Err() != nil {
			break
		}
		s, e, err := m.Step(p.kind, p.restarts, p.maxAge, p.random)
		if err != nil {
			return err
		}
		n := m.NumShapes()
		out.step(n, s, m.Colors()[n-1], e)

		if cfg.Every > 0 && n%cfg.Every == 0 {
			if err := writeSnapshot(ctx, cfg, m, n, out); err != nil {
				return err
			}
		}
	}

	if cfg.Final != "" {
		if err := imagefile.Save(cfg.Final, m.Current()); err != nil {
			return err
		}
		out.wrote(cfg.Final)
	}
	if cfg.Checkpoint != "" {
		if err := history.Save(cfg.Checkpoint, m); err != nil {
			return err
		}
	}
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		fmt.Fprintf(cmd.ErrOrStderr(), "interrupted after %d shapes\n", m.NumShapes())
	}
	return nil
}

// newModel starts a fresh model, or restores one from the checkpoint if
// resuming was requested and the checkpoint exists.
func newModel(cfg *runConfig, p *runParams, target *shapefit.Image, rnd shapefit.Rand) (*shapefit.Model, error) {
	if cfg.Resume {
		cp, err := history.Load(cfg.Checkpoint)
		switch {
		case err == nil:
			return cp.Restore(target, rnd)
		case errors.Is(err, os.ErrNotExist):
			shapefit.Logger().Warn("no checkpoint, starting afresh", "file", cfg.Checkpoint)
		default:
			return nil, err
		}
	}
	if p.background != nil {
		return shapefit.NewModelWithBackground(target, *p.background, rnd), nil
	}
	return shapefit.NewModel(target, rnd), nil
}

// writeSnapshot writes the current state of m to all configured outputs.
// The model must not be modified until writeSnapshot returns.
func writeSnapshot(ctx context.Context, cfg *runConfig, m *shapefit.Model, step int, out *progress) error {
	var names []string
	g, _ := errgroup.WithContext(ctx)
	if cfg.Out != "" {
		fname := snapshotName(cfg.Out, step)
		names = append(names, fname)
		g.Go(func() error {
			return imagefile.Save(fname, m.Current())
		})
	}
	if cfg.PDF != "" {
		fname := snapshotName(cfg.PDF, step)
		names = append(names, fname)
		g.Go(func() error {
			return imagefile.Save(fname, m.Current())
		})
	}
	if cfg.Checkpoint != "" {
		names = append(names, cfg.Checkpoint)
		g.Go(func() error {
			return history.Save(cfg.Checkpoint, m)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, fname := range names {
		out.wrote(fname)
	}
	return nil
}
